// Package tui collects form values in the terminal, walking a model.FormModel
// and prompting for each visible field.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/visibility"
)

const noMediaLabel = "(none)"

// Renderer prompts for form values through a PromptDriver.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	evaluator    visibility.Evaluator
	media        MediaLister
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		evaluator:    visibility.New(),
		theme:        Theme{GroupPrefix: "==", ErrorPrefix: "!"},
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Collect prompts for every field of form in declaration order and returns
// the answers keyed by dotted path. Field visibility is re-evaluated against
// the answers gathered so far, so toggling a checkbox reveals or skips the
// fields that depend on it. Skipped fields keep their seeded value.
func (r *Renderer) Collect(ctx context.Context, form model.FormModel, seed model.Values) (model.Values, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := model.Defaults(form)
	for key, value := range seed {
		values.Set(key, value)
	}

	if form.Title != "" {
		if err := r.driver.Info(ctx, r.heading(form.Title)); err != nil {
			return nil, err
		}
	}
	if err := r.collectFields(ctx, form.Fields, "", values); err != nil {
		return nil, err
	}
	return values, nil
}

// Render collects values and serializes them in the configured format.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, seed model.Values) ([]byte, error) {
	values, err := r.Collect(ctx, form, seed)
	if err != nil {
		return nil, err
	}
	return r.serialize(values)
}

func (r *Renderer) collectFields(ctx context.Context, fields []model.Field, prefix string, values model.Values) error {
	for _, field := range fields {
		path := model.JoinPath(prefix, field.Name)
		if field.VisibleWhen != "" {
			visible, err := r.evaluator.Eval(path, field.VisibleWhen, visibility.Context{Values: values})
			if err != nil {
				return fmt.Errorf("tui: field %q: %w", path, err)
			}
			if !visible {
				continue
			}
		}
		if err := r.promptField(ctx, field, path, values); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, path string, values model.Values) error {
	switch field.Type {
	case model.FieldTypeDetails:
		if field.Label != "" {
			if err := r.driver.Info(ctx, r.heading(field.Label)); err != nil {
				return err
			}
		}
		return r.collectFields(ctx, field.Nested, path, values)
	case model.FieldTypeCheckbox:
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: displayLabel(field),
			Default: values.Bool(path),
			Help:    displayHelp(field),
		})
		if err != nil {
			return err
		}
		values.Set(path, answer)
	case model.FieldTypeSelect, model.FieldTypeRadios:
		return r.promptOptions(ctx, field, path, values)
	case model.FieldTypeText:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: values.String(path),
			Help:    displayHelp(field),
		})
		if err != nil {
			return err
		}
		values.Set(path, strings.TrimSpace(answer))
	case model.FieldTypeTextarea:
		answer, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: displayLabel(field),
			Default: values.String(path),
			Help:    displayHelp(field),
		})
		if err != nil {
			return err
		}
		values.Set(path, answer)
	case model.FieldTypeMedia:
		return r.promptMedia(ctx, field, path, values)
	default:
		return fmt.Errorf("%w: %q (%s)", ErrUnsupportedField, field.Type, path)
	}
	return nil
}

func (r *Renderer) promptOptions(ctx context.Context, field model.Field, path string, values model.Values) error {
	if len(field.Options) == 0 {
		return nil
	}
	labels := make([]string, 0, len(field.Options))
	current := values.String(path)
	defaultIndex := 0
	for i, option := range field.Options {
		labels = append(labels, option.Label)
		if option.Value == current {
			defaultIndex = i
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         displayHelp(field),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return fmt.Errorf("tui: field %q: selection %d out of range", path, idx)
	}
	values.Set(path, field.Options[idx].Value)
	return nil
}

func (r *Renderer) promptMedia(ctx context.Context, field model.Field, path string, values model.Values) error {
	current := values.String(path)
	if r.media == nil {
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: current,
			Help:    "Media id, leave empty for none.",
		})
		if err != nil {
			return err
		}
		values.Set(path, strings.TrimSpace(answer))
		return nil
	}

	allowed := allowedBundles(field)
	items := make([]media.Media, 0)
	for _, item := range r.media.List() {
		if _, ok := allowed[item.Bundle]; ok || len(allowed) == 0 {
			items = append(items, item)
		}
	}

	labels := []string{noMediaLabel}
	defaultIndex := 0
	for i, item := range items {
		labels = append(labels, fmt.Sprintf("%s (%s) %s", item.ID, item.Bundle, item.URL))
		if string(item.ID) == current {
			defaultIndex = i + 1
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         displayHelp(field),
	})
	if err != nil {
		return err
	}
	switch {
	case idx <= 0:
		values.Set(path, "")
	case idx <= len(items):
		values.Set(path, string(items[idx-1].ID))
	default:
		return fmt.Errorf("tui: field %q: selection %d out of range", path, idx)
	}
	return nil
}

func allowedBundles(field model.Field) map[media.Bundle]struct{} {
	raw := field.Metadata["allowedBundles"]
	out := make(map[media.Bundle]struct{})
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out[media.Bundle(part)] = struct{}{}
		}
	}
	return out
}

func (r *Renderer) heading(label string) string {
	if r.theme.GroupPrefix == "" {
		return label
	}
	return r.theme.GroupPrefix + " " + label
}

func (r *Renderer) serialize(values model.Values) ([]byte, error) {
	nested := values.Nest()
	switch r.outputFormat {
	case OutputFormatYAML:
		return yaml.Marshal(nested)
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.MarshalIndent(nested, "", "  ")
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	return field.Description
}

func prettyPrint(values model.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %v\n", key, values[key])
	}
	return b.String()
}
