package model

import "strings"

// FieldType enumerates the widget kinds a form can declare.
type FieldType string

const (
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadios   FieldType = "radios"
	FieldTypeText     FieldType = "textfield"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeMedia    FieldType = "media"
	FieldTypeDetails  FieldType = "details"
)

// IsGroup reports whether the type only holds nested fields.
func (t FieldType) IsGroup() bool {
	return t == FieldTypeDetails
}

// HasOptions reports whether the type draws its value from Field.Options.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadios
}

// Option is a single key/label choice for select and radios widgets.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field describes one form control. Groups (FieldTypeDetails) carry children
// in Nested; their Name becomes the first segment of the children's paths.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	VisibleWhen string            `json:"visibleWhen,omitempty"`
	Open        bool              `json:"open,omitempty"`
	Classes     []string          `json:"classes,omitempty"`
	Nested      []Field           `json:"nested,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// OptionValues returns the raw option keys in declaration order.
func (f Field) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, option := range f.Options {
		out = append(out, option.Value)
	}
	return out
}

// FormModel is the top-level descriptor handed to UI layers.
type FormModel struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Attachments []string          `json:"attachments,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Attach records an asset library the UI layer must load with the form.
// Duplicates are ignored.
func (f *FormModel) Attach(library string) {
	library = strings.TrimSpace(library)
	if library == "" {
		return
	}
	for _, existing := range f.Attachments {
		if existing == library {
			return
		}
	}
	f.Attachments = append(f.Attachments, library)
}

// Field looks up a field by dotted path.
func (f FormModel) Field(path string) (Field, bool) {
	var found Field
	ok := false
	f.Walk(func(fieldPath string, field Field) bool {
		if fieldPath == path {
			found = field
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Walk visits every field depth-first with its dotted path. Returning false
// stops the traversal.
func (f FormModel) Walk(fn func(path string, field Field) bool) {
	walkFields(f.Fields, "", fn)
}

// Paths lists the dotted paths of every non-group field.
func (f FormModel) Paths() []string {
	var out []string
	f.Walk(func(path string, field Field) bool {
		if !field.Type.IsGroup() {
			out = append(out, path)
		}
		return true
	})
	return out
}

func walkFields(fields []Field, prefix string, fn func(string, Field) bool) bool {
	for _, field := range fields {
		path := JoinPath(prefix, field.Name)
		if !fn(path, field) {
			return false
		}
		if len(field.Nested) > 0 {
			if !walkFields(field.Nested, path, fn) {
				return false
			}
		}
	}
	return true
}

// JoinPath joins a parent path and a field name with a dot.
func JoinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
