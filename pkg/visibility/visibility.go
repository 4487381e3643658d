package visibility

import "github.com/goliatone/go-bootstrap-layout/pkg/model"

// Evaluator determines whether a field should be visible based on a rule
// string and the current values of its sibling fields.
type Evaluator interface {
	Eval(fieldPath, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Values holds the current form
// values keyed by dotted path while Extras lets callers inject arbitrary
// context such as feature flags.
type Context struct {
	Values model.Values
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldPath, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldPath, rule string, ctx Context) (bool, error) {
	return fn(fieldPath, rule, ctx)
}

// Resolve evaluates every field of form and returns the visibility of each
// dotted path. A field nested in a hidden group is hidden regardless of its
// own rule.
func Resolve(form model.FormModel, evaluator Evaluator, ctx Context) (map[string]bool, error) {
	if evaluator == nil {
		evaluator = New()
	}
	out := make(map[string]bool)
	if err := resolveFields(form.Fields, "", true, evaluator, ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveFields(fields []model.Field, prefix string, parentVisible bool, evaluator Evaluator, ctx Context, out map[string]bool) error {
	for _, field := range fields {
		path := model.JoinPath(prefix, field.Name)
		visible := parentVisible
		if visible && field.VisibleWhen != "" {
			ok, err := evaluator.Eval(path, field.VisibleWhen, ctx)
			if err != nil {
				return err
			}
			visible = ok
		}
		out[path] = visible
		if len(field.Nested) > 0 {
			if err := resolveFields(field.Nested, path, visible, evaluator, ctx, out); err != nil {
				return err
			}
		}
	}
	return nil
}
