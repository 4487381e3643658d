package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrap-layout/pkg/config"
	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
	"github.com/goliatone/go-bootstrap-layout/pkg/renderers/html"
	"github.com/goliatone/go-bootstrap-layout/pkg/settings"
	"github.com/goliatone/go-bootstrap-layout/pkg/visibility"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSettingsStore sets the store the layout builder settings are loaded
// from. Without it the built-in defaults apply.
func WithSettingsStore(store config.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithMediaResolver sets the resolver used for background media.
func WithMediaResolver(resolver media.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request names none.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithFormDecorators registers decorators applied to every configuration
// form, for example a render.Localizer.
func WithFormDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger sets the logger handed to the layout plugin.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates settings lookup, decoration and rendering. It
// applies defaults (html renderer, no media, default settings) while
// remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	store           config.Store
	resolver        media.Resolver
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	decorators      []model.Decorator
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		resolver:        media.NopResolver,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New(html.WithLogger(o.logger))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.resolver == nil {
		o.resolver = media.NopResolver
	}
	return o
}

// Request describes one layout instance to render.
type Request struct {
	Definition    layout.Definition
	Configuration layout.Configuration
	// Regions holds the host-rendered markup of each region.
	Regions map[string]string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer     string
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer options. Libraries default
	// to layout.LibraryBase and Theme to the selected theme.
	RenderOptions render.RenderOptions
}

// Generate decorates the request's regions and renders them.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if err := req.Definition.Validate(); err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	build := o.plugin(req.Definition, req.Configuration).Build(ctx, req.Regions)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if len(options.Libraries) == 0 {
		options.Libraries = []string{layout.LibraryBase}
	}
	if options.Theme == nil {
		cfg, err := o.themeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, build, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// FormRequest selects the configuration form of one layout instance.
type FormRequest struct {
	Definition    layout.Definition
	Configuration layout.Configuration
	// VisibleOnly drops fields hidden under the form's own defaults.
	VisibleOnly bool
}

// ConfigurationForm builds the configuration form with the stored settings.
func (o *Orchestrator) ConfigurationForm(ctx context.Context, req FormRequest) (model.FormModel, error) {
	s, err := o.settings(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	form, err := o.plugin(req.Definition, req.Configuration).BuildConfigurationForm(s)
	if err != nil {
		return model.FormModel{}, err
	}
	if req.VisibleOnly {
		form, err = visibility.Filter(form, nil, visibility.Context{Values: model.Defaults(form)})
		if err != nil {
			return model.FormModel{}, err
		}
	}
	return form, nil
}

// Submit applies values to cfg with the stored settings and returns the
// resulting configuration.
func (o *Orchestrator) Submit(ctx context.Context, def layout.Definition, cfg layout.Configuration, values model.Values) (layout.Configuration, error) {
	s, err := o.settings(ctx)
	if err != nil {
		return layout.Configuration{}, err
	}
	plugin := o.plugin(def, cfg)
	if err := plugin.SubmitConfigurationForm(s, values); err != nil {
		return layout.Configuration{}, err
	}
	return plugin.Configuration(), nil
}

func (o *Orchestrator) plugin(def layout.Definition, cfg layout.Configuration) *layout.Plugin {
	return layout.New(def, cfg,
		layout.WithMediaResolver(o.resolver),
		layout.WithLogger(o.logger),
		layout.WithFormDecorators(o.decorators...),
	)
}

func (o *Orchestrator) settings(ctx context.Context) (settings.Settings, error) {
	if o.store == nil {
		return settings.Default(), nil
	}
	s, err := settings.Load(ctx, o.store)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("orchestrator: %w", err)
	}
	return s, nil
}

func (o *Orchestrator) themeConfig(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}
	cfg := html.ThemeConfig(selection.Manifest, selection.Variant)
	if selection.Theme != "" {
		cfg.Theme = selection.Theme
	}
	return cfg, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}
