// Package bootstraplayout decorates page-layout sections with Bootstrap grid
// presentation options: containers, background colour or media, and section
// and region classes. It also exposes the forms that edit those options.
package bootstraplayout

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/orchestrator"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
)

// LibraryBase is the asset library served by RuntimeAssetsFS.
const LibraryBase = layout.LibraryBase

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions describes per-request overrides handed to renderers.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML decorates and renders one layout instance with the html
// renderer unless options select another one.
func GenerateHTML(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, req)
}

// GeneratePreset renders a blb_col_N preset with the given configuration and
// region markup.
func GeneratePreset(ctx context.Context, presetID string, cfg layout.Configuration, regions map[string]string, options ...orchestrator.Option) ([]byte, error) {
	def, err := layout.Preset(presetID)
	if err != nil {
		return nil, err
	}
	return GenerateHTML(ctx, Request{Definition: def, Configuration: cfg, Regions: regions}, options...)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests selects among fixed manifests, defaulting to the first.
func WithThemeManifests(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeSelector(orchestrator.NewStaticSelector(manifests...))
}
