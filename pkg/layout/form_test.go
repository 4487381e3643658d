package layout_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/settings"
	"github.com/goliatone/go-bootstrap-layout/pkg/styles"
	"github.com/goliatone/go-bootstrap-layout/pkg/testsupport"
)

func testSettings() settings.Settings {
	return settings.Settings{BackgroundColors: testsupport.BackgroundColorsV1}
}

func TestBuildConfigurationForm_HiddenSettings(t *testing.T) {
	plugin := layout.New(testsupport.TwoRegionDefinition(), layout.Configuration{})
	s := testSettings()
	s.HideSectionSettings = true

	form, err := plugin.BuildConfigurationForm(s)
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(form.Fields))
	}
	if diff := cmp.Diff([]string{layout.LibraryBase}, form.Attachments); diff != "" {
		t.Fatalf("attachments mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfigurationForm_Defaults(t *testing.T) {
	plugin := layout.New(testsupport.TwoRegionDefinition(), layout.Configuration{
		Container:                    layout.ContainerFluid,
		ContainerWrapperBgColorClass: "bg-dark",
		ContainerWrapperBgMedia:      testsupport.VideoMediaID,
		ContainerWrapperClasses:      "py-5",
		SectionClasses:               "g-0",
		RegionsClasses:               map[string]string{"top": "col"},
	})

	form, err := plugin.BuildConfigurationForm(testSettings())
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	want := model.Values{
		layout.FieldHasContainer:            true,
		layout.FieldContainerType:           "container-fluid",
		layout.PathBgColorClass:             "bg-dark",
		layout.PathBgMedia:                  "20",
		layout.FieldContainerWrapperClasses: "py-5",
		layout.FieldSectionClasses:          "g-0",
		layout.RegionPath("top"):            "col",
		layout.RegionPath("bottom"):         "",
	}
	if diff := cmp.Diff(want, model.Defaults(form)); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	colors, ok := form.Field(layout.PathBgColorClass)
	if !ok {
		t.Fatalf("missing color field")
	}
	wantOptions := []string{styles.NoneValue, "bg-primary", "bg-warning", "bg-dark"}
	if diff := cmp.Diff(wantOptions, colors.OptionValues()); diff != "" {
		t.Fatalf("color options mismatch (-want +got):\n%s", diff)
	}

	bg, _ := form.Field(layout.FieldBackground)
	if bg.VisibleWhen != "has_container == true" {
		t.Fatalf("background group should depend on has_container, got %q", bg.VisibleWhen)
	}
	mediaField, _ := form.Field(layout.PathBgMedia)
	if mediaField.Metadata["allowedBundles"] != "image,video_file" {
		t.Fatalf("unexpected allowed bundles %q", mediaField.Metadata["allowedBundles"])
	}
	regions, _ := form.Field(layout.FieldRegions)
	if !regions.Open || len(regions.Nested) != 2 {
		t.Fatalf("regions group should be open with one field per region, got %+v", regions)
	}
}

func TestBuildConfigurationForm_EmptyConfiguration(t *testing.T) {
	plugin := layout.New(testsupport.TwoRegionDefinition(), layout.Configuration{})
	form, err := plugin.BuildConfigurationForm(testSettings())
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	defaults := model.Defaults(form)
	if defaults.Bool(layout.FieldHasContainer) {
		t.Fatalf("has_container should default to false")
	}
	if got := defaults.String(layout.FieldContainerType); got != "container" {
		t.Fatalf("container type should default to container, got %q", got)
	}
	if got := defaults.String(layout.PathBgColorClass); got != styles.NoneValue {
		t.Fatalf("colour should default to %q, got %q", styles.NoneValue, got)
	}
}

func TestBuildConfigurationForm_MalformedColors(t *testing.T) {
	plugin := layout.New(testsupport.TwoRegionDefinition(), layout.Configuration{})
	_, err := plugin.BuildConfigurationForm(settings.Settings{BackgroundColors: "bg-primary|Primary\nbroken"})
	if !errors.Is(err, styles.ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
}

func TestBuildConfigurationForm_Decorators(t *testing.T) {
	plugin := layout.New(testsupport.TwoRegionDefinition(), layout.Configuration{},
		layout.WithFormDecorators(model.DecoratorFunc(func(form *model.FormModel) error {
			form.Attach("theme/extra")
			return nil
		})),
	)
	form, err := plugin.BuildConfigurationForm(testSettings())
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if diff := cmp.Diff([]string{layout.LibraryBase, "theme/extra"}, form.Attachments); diff != "" {
		t.Fatalf("attachments mismatch (-want +got):\n%s", diff)
	}
}
