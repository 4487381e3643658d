// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/media"
)

// Media ids available in MediaCatalog.
const (
	ImageMediaID       media.Reference = "10"
	VideoMediaID       media.Reference = "20"
	DocumentMediaID    media.Reference = "30"
	ImageMediaURL                      = "/sites/default/files/hero.jpg"
	VideoMediaURL                      = "/sites/default/files/loop.mp4"
	BackgroundColorsV1                 = "bg-primary|Primary\nbg-warning|Warning\nbg-dark|Dark"
)

// TwoRegionDefinition returns a layout with "top" and "bottom" regions.
func TwoRegionDefinition() layout.Definition {
	return layout.Definition{
		ID:    "two_region",
		Label: "Two regions",
		Regions: []layout.Region{
			{Name: "top", Label: "Top"},
			{Name: "bottom", Label: "Bottom"},
		},
	}
}

// MediaCatalog returns a catalog with one image, one video and one
// unsupported document.
func MediaCatalog() *media.Catalog {
	return media.NewCatalog(
		media.Media{ID: ImageMediaID, Bundle: media.BundleImage, URL: ImageMediaURL},
		media.Media{ID: VideoMediaID, Bundle: media.BundleVideoFile, URL: VideoMediaURL},
		media.Media{ID: DocumentMediaID, Bundle: "document", URL: "/sites/default/files/terms.pdf"},
	)
}

// MustReadGolden reads a golden file.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set and
// reports whether it did, in which case the test should return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MarshalGolden renders value as indented JSON with a trailing newline.
// Markup is left unescaped so goldens stay readable.
func MarshalGolden(t *testing.T, value any) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	return buf.Bytes()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

var (
	betweenTags = regexp.MustCompile(`>\s+<`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// NormalizeMarkup collapses whitespace so hand-indented golden markup can be
// compared with renderer output.
func NormalizeMarkup(markup string) string {
	out := betweenTags.ReplaceAllString(strings.TrimSpace(markup), "><")
	return spaceRuns.ReplaceAllString(out, " ")
}

// CaptureTemplateOutput runs render with a buffer, returning both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
