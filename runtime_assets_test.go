package bootstraplayout

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
)

func TestRuntimeAssetsFSContainsBaseLibrary(t *testing.T) {
	fsys := RuntimeAssetsFS()
	for _, ext := range []string{".css", ".js"} {
		if _, err := fs.ReadFile(fsys, layout.LibraryBase+ext); err != nil {
			t.Fatalf("expected %s%s to be readable: %v", layout.LibraryBase, ext, err)
		}
	}
}

func TestRuntimeAssetsFSStylesVideoBackground(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), layout.LibraryBase+".css")
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".blb-video-background") {
		t.Fatalf("expected stylesheet to style the video wrapper")
	}
}

func TestEmbeddedTemplatesContainSection(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/section.tpl"); err != nil {
		t.Fatalf("expected section template: %v", err)
	}
}
