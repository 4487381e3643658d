package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizerTranslatesLabelsAndOptions(t *testing.T) {
	form := model.FormModel{
		Title: "Sample",
		Fields: []model.Field{
			{Name: "has_container", Label: "Add Container"},
			{Name: "container_type", Label: "Container type", Options: []model.Option{
				{Value: "container", Label: "Container"},
				{Value: "container-fluid", Label: "Container fluid"},
			}},
			{Name: "regions", Label: "Columns Settings", Nested: []model.Field{
				{Name: "a_classes", Label: "Col 1 classes"},
			}},
		},
	}

	localizer := render.Localizer{
		Locale: "es",
		Translator: stubTranslator{
			"Add Container":    "Añadir contenedor",
			"Container":        "Contenedor",
			"Columns Settings": "Columnas",
		},
	}
	if err := localizer.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	got := []string{
		form.Fields[0].Label,
		form.Fields[1].Label,
		form.Fields[1].Options[0].Label,
		form.Fields[1].Options[1].Label,
		form.Fields[2].Label,
		form.Fields[2].Nested[0].Label,
	}
	want := []string{
		"Añadir contenedor",
		"Container type",
		"Contenedor",
		"Container fluid",
		"Columnas",
		"Col 1 classes",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalizeFormModelMissingHandler(t *testing.T) {
	form := model.FormModel{Fields: []model.Field{{Name: "a", Label: "Row classes"}}}
	var calls []string
	render.LocalizeFormModel(&form, "fr", nil, func(locale, key string, err error) string {
		if !errors.Is(err, render.ErrMissingTranslator) {
			t.Fatalf("expected ErrMissingTranslator, got %v", err)
		}
		calls = append(calls, locale+":"+key)
		return "[" + key + "]"
	})
	if form.Fields[0].Label != "[Row classes]" {
		t.Fatalf("expected handler output, got %q", form.Fields[0].Label)
	}
	if diff := cmp.Diff([]string{"fr:Row classes"}, calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}
