package styles_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/styles"
)

func TestParseOptions(t *testing.T) {
	raw := "bg-primary|Primary\r\nbg-dark | Dark\n\n  bg-light|\nbg-primary|Brand"

	got, err := styles.ParseOptions(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []model.Option{
		{Value: "bg-primary", Label: "Brand"},
		{Value: "bg-dark", Label: "Dark"},
		{Value: "bg-light", Label: "bg-light"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOptionsRejectsMalformedLines(t *testing.T) {
	cases := map[string]struct {
		raw  string
		line int
	}{
		"missing separator": {raw: "bg-primary|Primary\nbg-dark", line: 2},
		"empty key":         {raw: "\n\n|Nothing", line: 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := styles.ParseOptions(tc.raw)
			if !errors.Is(err, styles.ErrMalformedLine) {
				t.Fatalf("expected ErrMalformedLine, got %v", err)
			}
			var lineErr *styles.LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("expected *LineError, got %T", err)
			}
			if lineErr.Line != tc.line {
				t.Fatalf("line: got %d want %d", lineErr.Line, tc.line)
			}
		})
	}
}

func TestWithNoneAndNormalize(t *testing.T) {
	options, err := styles.WithNone("bg-warning|Warning")
	if err != nil {
		t.Fatalf("with none: %v", err)
	}
	want := []model.Option{
		{Value: styles.NoneValue, Label: styles.NoneLabel},
		{Value: "bg-warning", Label: "Warning"},
	}
	if diff := cmp.Diff(want, options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	empty, err := styles.WithNone("")
	if err != nil || len(empty) != 1 {
		t.Fatalf("empty list should only carry _none, got %v err=%v", empty, err)
	}

	if got := styles.Normalize("_none"); got != "" {
		t.Fatalf("normalize _none: got %q", got)
	}
	if got := styles.Denormalize(""); got != styles.NoneValue {
		t.Fatalf("denormalize empty: got %q", got)
	}
	if got := styles.Denormalize("bg-dark"); got != "bg-dark" {
		t.Fatalf("denormalize value: got %q", got)
	}
}
