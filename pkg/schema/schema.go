// Package schema exposes form models as OpenAPI 3 schemas so external UI
// layers can consume them, and validates submitted values against them.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// ForForm converts form into an object schema. Checkboxes become booleans,
// select and radios string enums, groups nested objects and every other
// widget a string. No property is required since hidden fields are not
// submitted.
func ForForm(form model.FormModel) *openapi3.Schema {
	root := objectSchema(form.Fields)
	root.Title = form.Title
	root.Description = form.Description
	return root
}

func objectSchema(fields []model.Field) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, field := range fields {
		schema.WithProperty(field.Name, fieldSchema(field))
	}
	return schema
}

func fieldSchema(field model.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch {
	case field.Type.IsGroup():
		schema = objectSchema(field.Nested)
	case field.Type == model.FieldTypeCheckbox:
		schema = openapi3.NewBoolSchema()
	case field.Type.HasOptions():
		schema = openapi3.NewStringSchema()
		values := field.OptionValues()
		if len(values) > 0 {
			enum := make([]any, 0, len(values))
			for _, value := range values {
				enum = append(enum, value)
			}
			schema.WithEnum(enum...)
		}
	default:
		schema = openapi3.NewStringSchema()
	}

	schema.Title = field.Label
	schema.Description = field.Description
	if !field.Type.IsGroup() && field.Default != nil {
		schema.Default = field.Default
	}
	if field.Type == model.FieldTypeMedia && field.Metadata["allowedBundles"] != "" {
		schema.Extensions = map[string]any{
			"x-allowed-bundles": strings.Split(field.Metadata["allowedBundles"], ","),
		}
	}
	return schema
}

// Canonical converts submitted values into the nested, typed payload the
// schema describes. Only paths declared by the form and present in values
// are kept.
func Canonical(form model.FormModel, values model.Values) map[string]any {
	flat := make(model.Values)
	form.Walk(func(path string, field model.Field) bool {
		if field.Type.IsGroup() || !values.Has(path) {
			return true
		}
		if field.Type == model.FieldTypeCheckbox {
			flat[path] = values.Bool(path)
		} else {
			flat[path] = values.String(path)
		}
		return true
	})
	return flat.Nest()
}

// ValidationError lists schema violations keyed by dotted field path. Errors
// that cannot be attributed to a field are collected under Form.
type ValidationError struct {
	Fields map[string][]string
	Form   []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Form))
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, strings.Join(e.Fields[path], "; ")))
	}
	parts = append(parts, e.Form...)
	return "schema: invalid submission: " + strings.Join(parts, ", ")
}

// Validate checks values against the schema of form.
func Validate(form model.FormModel, values model.Values) error {
	payload := Canonical(form, values)
	err := ForForm(form).VisitJSON(payload, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return toValidationError(err)
}

func toValidationError(err error) *ValidationError {
	out := &ValidationError{Fields: make(map[string][]string)}
	var collect func(error)
	collect = func(err error) {
		var multi openapi3.MultiError
		if errors.As(err, &multi) {
			for _, inner := range multi {
				collect(inner)
			}
			return
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(err, &schemaErr) {
			path := strings.Join(schemaErr.JSONPointer(), ".")
			if path != "" {
				out.Fields[path] = append(out.Fields[path], schemaErr.Reason)
				return
			}
			out.Form = append(out.Form, schemaErr.Reason)
			return
		}
		out.Form = append(out.Form, err.Error())
	}
	collect(err)
	if len(out.Fields) == 0 {
		out.Fields = nil
	}
	return out
}
