package visibility

import (
	"fmt"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// Filter returns a copy of form without the fields whose rule evaluates to
// false. Children of a removed group go with it.
func Filter(form model.FormModel, evaluator Evaluator, ctx Context) (model.FormModel, error) {
	if evaluator == nil {
		evaluator = New()
	}
	fields, err := filterFields(form.Fields, "", evaluator, ctx)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("visibility: filter: %w", err)
	}
	form.Fields = fields
	return form, nil
}

func filterFields(fields []model.Field, prefix string, evaluator Evaluator, ctx Context) ([]model.Field, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	result := make([]model.Field, 0, len(fields))
	for _, field := range fields {
		path := model.JoinPath(prefix, field.Name)
		if field.VisibleWhen != "" {
			ok, err := evaluator.Eval(path, field.VisibleWhen, ctx)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		nested, err := filterFields(field.Nested, path, evaluator, ctx)
		if err != nil {
			return nil, err
		}
		field.Nested = nested
		result = append(result, field)
	}
	return result, nil
}
