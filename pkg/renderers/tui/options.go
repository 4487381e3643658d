package tui

import (
	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/visibility"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML emits YAML documents.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages.
type Theme struct {
	GroupPrefix string
	ErrorPrefix string
}

// MediaLister lists media selectable for media fields.
type MediaLister interface {
	List() []media.Media
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithEvaluator overrides the visibility rule evaluator.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(r *Renderer) {
		if evaluator != nil {
			r.evaluator = evaluator
		}
	}
}

// WithMediaLister turns media fields into a choice among the listed items.
// Without it media fields prompt for a raw id.
func WithMediaLister(lister MediaLister) Option {
	return func(r *Renderer) {
		r.media = lister
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
