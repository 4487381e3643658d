package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
)

const catalogYAML = `
media:
  - id: "1"
    bundle: image
    url: /files/hero.jpg
  - id: "2"
    bundle: video_file
    url: /files/loop.mp4
  - id: "3"
    bundle: document
    url: /files/terms.pdf
  - id: "4"
    bundle: image
`

func TestCatalogResolve(t *testing.T) {
	catalog, err := media.LoadCatalog(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	got, err := catalog.Resolve(ctx, " 1 ")
	if err != nil {
		t.Fatalf("resolve image: %v", err)
	}
	want := media.Media{ID: "1", Bundle: media.BundleImage, URL: "/files/hero.jpg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("image mismatch (-want +got):\n%s", diff)
	}

	if _, err := catalog.Resolve(ctx, "3"); !errors.Is(err, media.ErrUnsupportedBundle) {
		t.Fatalf("expected unsupported bundle, got %v", err)
	}
	if _, err := catalog.Resolve(ctx, "4"); !errors.Is(err, media.ErrNotFound) {
		t.Fatalf("expected missing url to be not found, got %v", err)
	}
	if _, err := catalog.Resolve(ctx, "99"); !errors.Is(err, media.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(catalog.List()) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(catalog.List()))
	}
}

func TestLoadCatalogRejectsUnknownFieldsAndMissingIDs(t *testing.T) {
	if _, err := media.LoadCatalog(strings.NewReader("media:\n  - bundle: image\n")); err == nil {
		t.Fatalf("expected error for entry without id")
	}
	if _, err := media.LoadCatalog(strings.NewReader("media:\n  - id: x\n    colour: red\n")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	empty, err := media.LoadCatalog(strings.NewReader(""))
	if err != nil || len(empty.List()) != 0 {
		t.Fatalf("empty catalog: %v %v", empty, err)
	}
}
