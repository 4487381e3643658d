package visibility

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// ErrInvalidRule is returned for rules the evaluator cannot parse.
var ErrInvalidRule = errors.New("visibility: invalid rule")

// RuleEvaluator understands the small rule language used by form fields:
//
//	has_container               truthy check
//	!has_container              negated truthy check
//	has_container == true       comparison against true/false, numbers or strings
//	container_type != "container-fluid"
//	a == true && b != "x"       conjunction
//
// Identifiers are dotted field paths read from Context.Values. The `extras.`
// prefix reads from Context.Extras instead.
type RuleEvaluator struct{}

// New returns the default rule evaluator.
func New() *RuleEvaluator { return &RuleEvaluator{} }

// Eval evaluates rule against ctx. Empty rules are always visible.
func (e *RuleEvaluator) Eval(fieldPath, rule string, ctx Context) (bool, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}
	for _, clause := range strings.Split(trimmed, "&&") {
		ok, err := evalClause(strings.TrimSpace(clause), ctx)
		if err != nil {
			return false, fmt.Errorf("%w: field %q: %v", ErrInvalidRule, fieldPath, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evalClause(clause string, ctx Context) (bool, error) {
	if clause == "" {
		return false, errors.New("empty clause")
	}
	for _, op := range []string{"==", "!="} {
		left, right, found := strings.Cut(clause, op)
		if !found {
			continue
		}
		ident := strings.TrimSpace(left)
		if !validIdentifier(ident) {
			return false, fmt.Errorf("bad identifier %q", ident)
		}
		literal, err := parseLiteral(strings.TrimSpace(right))
		if err != nil {
			return false, err
		}
		equal := compare(lookup(ident, ctx), literal)
		if op == "!=" {
			return !equal, nil
		}
		return equal, nil
	}

	negate := strings.HasPrefix(clause, "!")
	ident := strings.TrimSpace(strings.TrimPrefix(clause, "!"))
	if !validIdentifier(ident) {
		return false, fmt.Errorf("bad identifier %q", ident)
	}
	truthy := model.CoerceBool(lookup(ident, ctx))
	if negate {
		return !truthy, nil
	}
	return truthy, nil
}

func lookup(ident string, ctx Context) any {
	if rest, ok := strings.CutPrefix(ident, "extras."); ok {
		if ctx.Extras == nil {
			return nil
		}
		return ctx.Extras[rest]
	}
	value, _ := ctx.Values.Lookup(ident)
	return value
}

func parseLiteral(raw string) (any, error) {
	switch raw {
	case "":
		return nil, errors.New("missing literal")
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return raw[1 : len(raw)-1], nil
		}
	}
	if number, err := strconv.ParseFloat(raw, 64); err == nil {
		return number, nil
	}
	if validIdentifier(raw) {
		return raw, nil
	}
	return nil, fmt.Errorf("bad literal %q", raw)
}

func compare(value, literal any) bool {
	switch want := literal.(type) {
	case nil:
		return value == nil || value == ""
	case bool:
		return model.CoerceBool(value) == want
	case float64:
		switch got := value.(type) {
		case int:
			return float64(got) == want
		case int64:
			return float64(got) == want
		case float64:
			return got == want
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(got), 64)
			return err == nil && parsed == want
		}
		return false
	case string:
		return fmt.Sprint(value) == want
	}
	return false
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
