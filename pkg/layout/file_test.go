package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
)

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	return path
}

func TestLoadFile_Preset(t *testing.T) {
	path := writeLayout(t, `
definition: blb_col_2
configuration:
  container: container
  container_wrapper_bg_color_class: bg-dark
  section_classes: g-0
  regions_classes:
    blb_region_col_1: col-8
    removed_region: col-4
regions:
  blb_region_col_1: "<p>Main</p>"
`)

	file, def, err := layout.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.ID != "blb_col_2" || len(def.Regions) != 2 {
		t.Fatalf("unexpected definition %+v", def)
	}
	want := layout.Configuration{
		Container:                    layout.ContainerFixed,
		ContainerWrapperBgColorClass: "bg-dark",
		SectionClasses:               "g-0",
		RegionsClasses: map[string]string{
			"blb_region_col_1": "col-8",
			"blb_region_col_2": "",
		},
	}
	if diff := cmp.Diff(want, file.Configuration); diff != "" {
		t.Fatalf("configuration mismatch (-want +got):\n%s", diff)
	}
	if file.Regions["blb_region_col_1"] != "<p>Main</p>" {
		t.Fatalf("unexpected regions %v", file.Regions)
	}
}

func TestLoadFile_InlineDefinitionRoundTrip(t *testing.T) {
	path := writeLayout(t, `
definition:
  id: hero
  label: Hero
  regions:
    - name: main
      label: Main
configuration:
  container: container-fluid
`)

	file, def, err := layout.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.ID != "hero" || def.RegionLabel("main") != "Main" {
		t.Fatalf("unexpected definition %+v", def)
	}

	file.Configuration.SectionClasses = "py-3"
	if err := layout.SaveFile(path, file); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, _, err := layout.LoadFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(file.Configuration, reloaded.Configuration); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown preset":    "definition: blb_col_20\n",
		"invalid container": "definition: blb_col_1\nconfiguration:\n  container: container-xl\n",
		"unknown key":       "definition: blb_col_1\nextra: true\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := layout.LoadFile(writeLayout(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
