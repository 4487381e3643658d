package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-bootstrap-layout/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}")},
		"classes.tpl":    {Data: []byte(`<div class="{{ classes|classlist:"row" }}"></div>`)},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplateWritesToWriters(t *testing.T) {
	engine := newEngine(t)
	var out strings.Builder
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada" || out.String() != "Hello Ada" {
		t.Fatalf("unexpected output %q / %q", got, out.String())
	}
}

func TestEngineClassListFilter(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("classes", map[string]any{"classes": []string{"no-gutters", "py-3"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<div class="row no-gutters py-3"></div>`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	got, err = engine.RenderTemplate("classes", map[string]any{})
	if err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if want := `<div class="row"></div>`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEngineGlobalContextAndStructData(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{"settings": map[string]any{"env": "staging"}}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	got, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("got %q", got)
	}

	type person struct {
		Name string `json:"name"`
	}
	got, err = engine.RenderString("{{ name|upper }}", person{Name: "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ADA" {
		t.Fatalf("got %q", got)
	}
}

func TestEngineRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}
