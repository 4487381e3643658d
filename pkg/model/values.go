package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Values carries submitted form data. Keys are dotted field paths
// ("regions.top_classes") although nested maps are accepted too, so both
// {"regions.top_classes": "col"} and {"regions": {"top_classes": "col"}}
// resolve the same path.
type Values map[string]any

// Lookup resolves a dotted path, preferring an exact flat key.
func (v Values) Lookup(path string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if value, ok := v[path]; ok {
		return value, true
	}
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return nil, false
	}
	child, ok := v[head]
	if !ok {
		return nil, false
	}
	switch nested := child.(type) {
	case Values:
		return nested.Lookup(rest)
	case map[string]any:
		return Values(nested).Lookup(rest)
	default:
		return nil, false
	}
}

// Has reports whether the path is present.
func (v Values) Has(path string) bool {
	_, ok := v.Lookup(path)
	return ok
}

// String returns the value at path as a string. Missing or nil values yield "".
func (v Values) String(path string) string {
	value, ok := v.Lookup(path)
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case []string:
		if len(typed) == 0 {
			return ""
		}
		return typed[0]
	default:
		return fmt.Sprint(typed)
	}
}

// Bool coerces the value at path into a boolean. Checkbox payloads arrive as
// bools, numbers or strings such as "1", "on" and "true"; anything else is
// false.
func (v Values) Bool(path string) bool {
	value, ok := v.Lookup(path)
	if !ok {
		return false
	}
	return CoerceBool(value)
}

// CoerceBool converts loosely typed checkbox values into a boolean.
func CoerceBool(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case float64:
		return typed != 0
	case []string:
		if len(typed) == 0 {
			return false
		}
		return CoerceBool(typed[len(typed)-1])
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "1", "on", "yes", "y", "checked":
			return true
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return false
	}
}

// Set stores value under a flat dotted key.
func (v Values) Set(path string, value any) {
	v[path] = value
}

// Nest converts the flat dotted representation into nested maps, which is
// the shape schema validators expect. Nested input maps are merged.
func (v Values) Nest() map[string]any {
	out := make(map[string]any, len(v))
	for key, value := range v {
		switch nested := value.(type) {
		case Values:
			mergeNested(out, key, nested.Nest())
			continue
		case map[string]any:
			mergeNested(out, key, Values(nested).Nest())
			continue
		}
		setNested(out, strings.Split(key, "."), value)
	}
	return out
}

func mergeNested(out map[string]any, key string, nested map[string]any) {
	for childKey, childValue := range nested {
		setNested(out, append(strings.Split(key, "."), strings.Split(childKey, ".")...), childValue)
	}
}

func setNested(out map[string]any, segments []string, value any) {
	current := out
	for i, segment := range segments {
		if i == len(segments)-1 {
			current[segment] = value
			return
		}
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
}

// Defaults collects the default value of every non-group field keyed by path.
func Defaults(form FormModel) Values {
	out := make(Values)
	form.Walk(func(path string, field Field) bool {
		if field.Type.IsGroup() {
			return true
		}
		out[path] = field.Default
		return true
	})
	return out
}
