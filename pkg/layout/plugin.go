package layout

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/visibility"
)

// Option customises a Plugin.
type Option func(*Plugin)

// WithMediaResolver sets the resolver used for background media.
func WithMediaResolver(resolver media.Resolver) Option {
	return func(p *Plugin) {
		if resolver != nil {
			p.resolver = resolver
		}
	}
}

// WithLogger sets the logger used for non-fatal render problems.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithEvaluator sets the visibility evaluator used when validating
// submissions.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(p *Plugin) {
		if evaluator != nil {
			p.evaluator = evaluator
		}
	}
}

// WithFormDecorators registers decorators applied to the configuration form
// after it is built.
func WithFormDecorators(decorators ...model.Decorator) Option {
	return func(p *Plugin) {
		p.decorators = append(p.decorators, decorators...)
	}
}

// Plugin binds a layout definition to one instance's configuration.
type Plugin struct {
	definition    Definition
	configuration Configuration
	resolver      media.Resolver
	logger        *slog.Logger
	decorators    []model.Decorator
	evaluator     visibility.Evaluator
}

// New returns a Plugin for def. The configuration is normalised against the
// definition's regions.
func New(def Definition, cfg Configuration, options ...Option) *Plugin {
	p := &Plugin{
		definition:    def,
		configuration: cfg.Normalize(def),
		resolver:      media.NopResolver,
		evaluator:     visibility.New(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Definition returns the layout definition.
func (p *Plugin) Definition() Definition { return p.definition }

// Configuration returns a copy of the current configuration.
func (p *Plugin) Configuration() Configuration { return p.configuration.Clone() }
