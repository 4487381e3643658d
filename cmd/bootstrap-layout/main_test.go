package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const heroLayout = `definition: blb_col_2
configuration:
  container: container
  container_wrapper_bg_color_class: bg-warning
  container_wrapper_bg_media: "10"
  section_classes: no-gutters
  regions_classes:
    blb_region_col_1: col-8
regions:
  blb_region_col_1: "<p>Hello</p><script>alert(1)</script>"
`

const catalogYAML = `media:
  - id: "10"
    bundle: image
    url: /files/hero.jpg
`

type fixture struct {
	dir       string
	configDir string
	layout    string
	media     string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:       dir,
		configDir: filepath.Join(dir, "config"),
		layout:    filepath.Join(dir, "hero.yaml"),
		media:     filepath.Join(dir, "media.yaml"),
	}
	if err := os.WriteFile(f.layout, []byte(heroLayout), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if err := os.WriteFile(f.media, []byte(catalogYAML), 0o644); err != nil {
		t.Fatalf("write media: %v", err)
	}
	return f
}

func (f fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-dir", f.configDir}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRenderCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "render", "--layout", f.layout, "--media", f.media, "--sanitize")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`<div class="bg-warning" style="background-image: url(/files/hero.jpg);`,
		`<div class="row no-gutters" data-layout="blb_col_2">`,
		`<div class="col-8" data-region="blb_region_col_1"><p>Hello</p></div>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "<script>alert") {
		t.Fatalf("region content should be sanitized:\n%s", out)
	}
}

func TestRenderCommandKeepsHostContentByDefault(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "render", "--layout", f.layout)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<p>Hello</p><script>alert(1)</script>") {
		t.Fatalf("host content should be emitted untouched:\n%s", out)
	}
}

func TestRenderCommandJSONBuild(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "render", "--layout", f.layout, "--json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"layout_id": "blb_col_2"`) {
		t.Fatalf("expected build JSON, got:\n%s", out)
	}
}

func TestConfigureCommand(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "configure", "--layout", f.layout,
		"--set", "container_type=container-fluid",
		"--set", "background.container_wrapper_bg_color_class=_none",
		"--set", "regions.blb_region_col_2_classes=col-4",
	)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}

	data, err := os.ReadFile(f.layout)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	saved := string(data)
	for _, fragment := range []string{
		"container: container-fluid",
		`container_wrapper_bg_color_class: ""`,
		"blb_region_col_2: col-4",
		"definition: blb_col_2",
	} {
		if !strings.Contains(saved, fragment) {
			t.Fatalf("expected %q in saved layout:\n%s", fragment, saved)
		}
	}
}

func TestConfigureCommandRejectsUnknownField(t *testing.T) {
	f := newFixture(t)
	if _, err := f.run(t, "configure", "--layout", f.layout, "--set", "nope=1"); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := f.run(t, "configure", "--layout", f.layout); err == nil {
		t.Fatalf("expected error without --set or --interactive")
	}
}

func TestSettingsCommands(t *testing.T) {
	f := newFixture(t)
	if _, err := f.run(t, "settings", "set", "--hide-section-settings=true"); err != nil {
		t.Fatalf("settings set: %v", err)
	}
	out, err := f.run(t, "settings", "show")
	if err != nil {
		t.Fatalf("settings show: %v", err)
	}
	if !strings.Contains(out, "hide_section_settings: true") {
		t.Fatalf("expected hidden settings, got:\n%s", out)
	}

	out, err = f.run(t, "form", "--layout", f.layout)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if !strings.Contains(out, `"fields": null`) && !strings.Contains(out, `"fields": []`) {
		t.Fatalf("expected empty form while settings are hidden, got:\n%s", out)
	}

	colors := filepath.Join(f.dir, "colors.txt")
	if err := os.WriteFile(colors, []byte("bg-primary|Primary\nbroken\n"), 0o644); err != nil {
		t.Fatalf("write colors: %v", err)
	}
	if _, err := f.run(t, "settings", "set", "--background-colors-file", colors); err == nil {
		t.Fatalf("expected malformed colour list to be rejected")
	}
}

func TestSchemaCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "schema", "--layout", f.layout)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	for _, fragment := range []string{`"openapi": "3.0.3"`, `"/forms/layout_settings"`, `"container-fluid"`} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in schema:\n%s", fragment, out)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	if !strings.Contains(out, "blb_col_12") {
		t.Fatalf("expected every preset listed, got:\n%s", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	f := newFixture(t)
	if _, err := f.run(t, "--log-level", "loud", "presets"); err == nil {
		t.Fatalf("expected invalid log level error")
	}
}
