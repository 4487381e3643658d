package html_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
	"github.com/goliatone/go-bootstrap-layout/pkg/renderers/html"
	"github.com/goliatone/go-bootstrap-layout/pkg/testsupport"
)

func decoratedBuild(t *testing.T, cfg layout.Configuration) layout.Build {
	t.Helper()
	plugin := layout.New(testsupport.TwoRegionDefinition(), cfg,
		layout.WithMediaResolver(testsupport.MediaCatalog()),
	)
	return plugin.Build(context.Background(), map[string]string{
		"top":    "<p>Top</p>",
		"bottom": "<p>Bottom</p>",
	})
}

func newRenderer(t *testing.T, options ...html.Option) *html.Renderer {
	t.Helper()
	renderer, err := html.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_WrappedImageBackground(t *testing.T) {
	build := decoratedBuild(t, layout.Configuration{
		Container:                    layout.ContainerFixed,
		ContainerWrapperBgColorClass: "bg-warning",
		ContainerWrapperClasses:      "py-5",
		ContainerWrapperBgMedia:      testsupport.ImageMediaID,
		SectionClasses:               "no-gutters py-3",
		RegionsClasses:               map[string]string{"top": "col mb-5"},
	})

	out, err := newRenderer(t).Render(context.Background(), build, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `
<div class="bg-warning py-5" style="background-image: url(/sites/default/files/hero.jpg); background-repeat: no-repeat; background-size: cover;">
  <div class="container">
    <div class="row no-gutters py-3" data-layout="two_region">
      <div class="col mb-5" data-region="top"><p>Top</p></div>
      <div data-region="bottom"><p>Bottom</p></div>
    </div>
  </div>
</div>`
	if diff := testsupport.CompareGolden(testsupport.NormalizeMarkup(want), testsupport.NormalizeMarkup(string(out))); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_UnwrappedSection(t *testing.T) {
	build := decoratedBuild(t, layout.Configuration{
		ContainerWrapperBgColorClass: "bg-dark",
		SectionClasses:               "g-0",
	})

	out, err := newRenderer(t).Render(context.Background(), build, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := testsupport.NormalizeMarkup(string(out))

	if strings.Contains(markup, "container") || strings.Contains(markup, "bg-dark") {
		t.Fatalf("unwrapped section should not emit container markup: %s", markup)
	}
	if !strings.HasPrefix(markup, `<div class="row g-0" data-layout="two_region">`) {
		t.Fatalf("expected section to be the outer element, got %s", markup)
	}
}

func TestRenderer_VideoBackground(t *testing.T) {
	build := decoratedBuild(t, layout.Configuration{
		Container:                    layout.ContainerFluid,
		ContainerWrapperBgColorClass: "bg-primary",
		ContainerWrapperBgMedia:      testsupport.VideoMediaID,
	})

	out, err := newRenderer(t).Render(context.Background(), build, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := testsupport.NormalizeMarkup(string(out))

	for _, fragment := range []string{
		`<div data-video-background="/sites/default/files/loop.mp4">`,
		`<div class="blb-video-background bg-primary">`,
		`<source src="/sites/default/files/loop.mp4">`,
		`<div class="container-fluid">`,
	} {
		if !strings.Contains(markup, fragment) {
			t.Fatalf("expected %q in markup:\n%s", fragment, markup)
		}
	}
}

func TestRenderer_SanitizesRegionContent(t *testing.T) {
	build := layout.Build{
		LayoutID: "blb_col_1",
		Regions: []layout.RegionBuild{{
			Name:    "blb_region_col_1",
			Content: `<p class="lead" onclick="steal()">Hi</p><script>alert(1)</script>`,
		}},
	}

	out, err := newRenderer(t, html.WithSanitizedContent()).Render(context.Background(), build, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)
	if strings.Contains(markup, "<script>") || strings.Contains(markup, "onclick") {
		t.Fatalf("expected unsafe markup to be stripped: %s", markup)
	}
	if !strings.Contains(markup, `<p class="lead">Hi</p>`) {
		t.Fatalf("expected safe markup to survive: %s", markup)
	}

}

func TestRenderer_KeepsHostContentByDefault(t *testing.T) {
	content := `<iframe src="https://www.youtube.com/embed/x"></iframe><form action="/s"><input name="q"></form><style>.x{}</style>`
	build := layout.Build{
		LayoutID: "blb_col_1",
		Regions:  []layout.RegionBuild{{Name: "blb_region_col_1", Content: content}},
	}

	out, err := newRenderer(t).Render(context.Background(), build, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), content) {
		t.Fatalf("host content should be emitted untouched: %s", out)
	}
}

func TestRenderer_LibraryAssets(t *testing.T) {
	build := decoratedBuild(t, layout.Configuration{})
	options := render.RenderOptions{Libraries: []string{layout.LibraryBase, layout.LibraryBase}}

	out, err := newRenderer(t, html.WithAssetPrefix("/static/")).Render(context.Background(), build, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)
	if got := strings.Count(markup, `<link rel="stylesheet" href="/static/bootstrap_layout_builder/base.css">`); got != 1 {
		t.Fatalf("expected one stylesheet link, got %d:\n%s", got, markup)
	}
	if !strings.Contains(markup, `<script src="/static/bootstrap_layout_builder/base.js" defer></script>`) {
		t.Fatalf("expected script tag:\n%s", markup)
	}
}

func TestRenderer_ThemeConfig(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: theme.Assets{
			Prefix: "/themes/acme",
			Files: map[string]string{
				layout.LibraryBase + ".css": "layout.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{
						layout.LibraryBase + ".js": "https://cdn.example.com/layout.js",
					},
				},
			},
		},
	}

	cfg := html.ThemeConfig(manifest, "dark")
	if cfg.Variant != "dark" || cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("expected dark variant tokens, got %+v", cfg)
	}

	build := decoratedBuild(t, layout.Configuration{})
	out, err := newRenderer(t).Render(context.Background(), build, render.RenderOptions{
		Theme:     cfg,
		Libraries: []string{layout.LibraryBase},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)
	for _, fragment := range []string{
		`href="/themes/acme/layout.css"`,
		`src="https://cdn.example.com/layout.js"`,
		`data-theme="acme"`,
		`style="--brand: #654321;"`,
	} {
		if !strings.Contains(markup, fragment) {
			t.Fatalf("expected %q in markup:\n%s", fragment, markup)
		}
	}

	if base := html.ThemeConfig(manifest, "missing"); base.Variant != "" || base.Tokens["brand"] != "#123456" {
		t.Fatalf("unknown variant should fall back to base manifest, got %+v", base)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}

	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := registry.Get("")
	if err != nil || got.Name() != html.Name {
		t.Fatalf("expected html renderer as default, got %v %v", got, err)
	}
}
