// Package styles parses the administrator-maintained style option lists
// (for example the background colour choices) stored as newline separated
// "key|label" lines.
package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// NoneValue is the synthetic option placed first in every list. Selecting it
// means "no class".
const NoneValue = "_none"

// NoneLabel is the label shown for NoneValue.
const NoneLabel = "N/A"

// ErrMalformedLine is wrapped by LineError for lines without a key|label pair.
var ErrMalformedLine = errors.New("styles: malformed option line")

// LineError identifies the offending line of an option list.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("styles: malformed option line %d %q: expected \"key|label\"", e.Line, e.Text)
}

// Unwrap exposes ErrMalformedLine to errors.Is.
func (e *LineError) Unwrap() error { return ErrMalformedLine }

// ParseOptions parses raw into options, without the synthetic NoneValue entry.
// Blank lines are skipped and CRLF endings tolerated. Each line is split on
// the first "|"; a line with no separator or an empty key is rejected. A
// repeated key keeps its first position and takes the last label.
func ParseOptions(raw string) ([]model.Option, error) {
	var out []model.Option
	index := make(map[string]int)

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		key, label, found := strings.Cut(trimmed, "|")
		key = strings.TrimSpace(key)
		label = strings.TrimSpace(label)
		if !found || key == "" {
			return nil, &LineError{Line: i + 1, Text: trimmed}
		}
		if label == "" {
			label = key
		}
		if pos, seen := index[key]; seen {
			out[pos].Label = label
			continue
		}
		index[key] = len(out)
		out = append(out, model.Option{Value: key, Label: label})
	}
	return out, nil
}

// Validate reports the first malformed line of raw, if any.
func Validate(raw string) error {
	_, err := ParseOptions(raw)
	return err
}

// WithNone parses raw and prepends the NoneValue option.
func WithNone(raw string) ([]model.Option, error) {
	options, err := ParseOptions(raw)
	if err != nil {
		return nil, err
	}
	return append([]model.Option{{Value: NoneValue, Label: NoneLabel}}, options...), nil
}

// Normalize maps NoneValue to the empty class and trims everything else.
func Normalize(value string) string {
	value = strings.TrimSpace(value)
	if value == NoneValue {
		return ""
	}
	return value
}

// Denormalize maps an empty class back to NoneValue for form defaults.
func Denormalize(value string) string {
	if strings.TrimSpace(value) == "" {
		return NoneValue
	}
	return value
}
