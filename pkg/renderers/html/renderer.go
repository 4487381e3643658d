// Package html renders decorated layout builds as Bootstrap markup using the
// pongo2 template engine.
package html

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
	"github.com/goliatone/go-bootstrap-layout/pkg/render/template"
	"github.com/goliatone/go-bootstrap-layout/pkg/render/template/gotemplate"
)

const (
	// Name identifies the renderer in a render.Registry.
	Name = "html"

	defaultTemplate    = "templates/section"
	defaultAssetPrefix = "/assets"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithTemplateRenderer replaces the template engine. The engine must be able
// to resolve the section template name.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.templates = renderer
		}
	}
}

// WithTemplatesDir adds a directory searched before the embedded templates,
// letting theme partials point at files on disk.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		r.templatesDir = strings.TrimSpace(dir)
	}
}

// WithTemplate overrides the section template name.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.template = trimmed
		}
	}
}

// WithContentPolicy sanitizes region content with policy.
func WithContentPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
			r.sanitize = true
		}
	}
}

// WithSanitizedContent passes region content through ContentPolicy. Region
// content is host-rendered markup and is emitted untouched otherwise.
func WithSanitizedContent() Option {
	return func(r *Renderer) {
		r.sanitize = true
	}
}

// WithAssetPrefix sets the URL prefix used for library assets when no theme
// supplies them.
func WithAssetPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.assetPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithLogger sets the logger used for asset resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer renders a layout.Build through the section template.
type Renderer struct {
	templates    template.TemplateRenderer
	templatesDir string
	template     string
	policy       *bluemonday.Policy
	sanitize     bool
	assetPrefix  string
	logger       *slog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		template:    defaultTemplate,
		assetPrefix: defaultAssetPrefix,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.sanitize && r.policy == nil {
		r.policy = ContentPolicy()
	}
	if r.templates == nil {
		engineOptions := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
		if r.templatesDir != "" {
			engineOptions = append(engineOptions, gotemplate.WithBaseDir(r.templatesDir))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("html: configure template renderer: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the section markup. Region content is sanitized unless the
// renderer trusts it.
func (r *Renderer) Render(ctx context.Context, build layout.Build, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templateName := r.template
	if options.Theme != nil {
		if partial := strings.TrimSpace(options.Theme.Partials[PartialSection]); partial != "" {
			templateName = partial
		}
	}

	out, err := r.templates.RenderTemplate(templateName, r.view(build, options))
	if err != nil {
		return nil, fmt.Errorf("html: render layout %q: %w", build.LayoutID, err)
	}
	return []byte(out), nil
}

func (r *Renderer) view(build layout.Build, options render.RenderOptions) map[string]any {
	regions := make([]map[string]any, 0, len(build.Regions))
	for _, region := range build.Regions {
		content := region.Content
		if r.sanitize {
			content = r.policy.Sanitize(content)
		}
		regions = append(regions, map[string]any{
			"name":    region.Name,
			"label":   region.Label,
			"class":   region.Attributes.Class(),
			"content": content,
		})
	}

	wrapper := build.ContainerWrapper
	view := map[string]any{
		"layout_id":       build.LayoutID,
		"wrapped":         build.Wrapped(),
		"wrapper_class":   wrapper.Attributes.Class(),
		"wrapper_style":   wrapper.Attributes.Style,
		"has_video":       wrapper.HasLocalVideo,
		"video_class":     wrapper.VideoWrapperClasses,
		"video_url":       wrapper.VideoBackgroundURL,
		"container_class": build.Container.Class(),
		"section_class":   build.Attributes.Classes,
		"regions":         regions,
		"theme":           "",
		"css_vars":        "",
	}
	if options.Theme != nil {
		view["theme"] = options.Theme.Theme
		view["css_vars"] = cssVarsStyle(options.Theme.CSSVars)
	}

	stylesheets, scripts := r.libraryAssets(options.Libraries, options.Theme)
	view["stylesheets"] = stylesheets
	view["scripts"] = scripts
	return view
}

// libraryAssets resolves the stylesheet and script URLs for each attached
// library. Theme asset keys are "<library>.css" and "<library>.js"; without a
// theme both are served below the asset prefix.
func (r *Renderer) libraryAssets(libraries []string, cfg *theme.RendererConfig) ([]string, []string) {
	stylesheets := []string{}
	scripts := []string{}
	seen := make(map[string]struct{}, len(libraries))
	for _, library := range libraries {
		library = strings.Trim(strings.TrimSpace(library), "/")
		if library == "" {
			continue
		}
		if _, ok := seen[library]; ok {
			continue
		}
		seen[library] = struct{}{}

		if cfg != nil && cfg.AssetURL != nil {
			css := cfg.AssetURL(library + ".css")
			js := cfg.AssetURL(library + ".js")
			if css == "" && js == "" {
				r.logger.Debug("theme does not provide library assets", "library", library, "theme", cfg.Theme)
			}
			if css != "" {
				stylesheets = append(stylesheets, css)
			}
			if js != "" {
				scripts = append(scripts, js)
			}
			continue
		}

		stylesheets = append(stylesheets, r.assetPrefix+"/"+library+".css")
		scripts = append(scripts, r.assetPrefix+"/"+library+".js")
	}
	return stylesheets, scripts
}
