package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, layout.Build, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))
	registry.MustRegister(namedRenderer("json"))

	if err := registry.Register(namedRenderer("html")); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	fallback, err := registry.Get("")
	if err != nil || fallback.Name() != "html" {
		t.Fatalf("expected first renderer as default, got %v %v", fallback, err)
	}
	if err := registry.SetDefault("json"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	fallback, _ = registry.Get("")
	if fallback.Name() != "json" {
		t.Fatalf("expected json default, got %s", fallback.Name())
	}

	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
