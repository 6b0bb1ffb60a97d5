// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

var allValues = []string{"array", "false", "null", "number", "object", "string", "true"}

func TestSyntaxError(t *testing.T) {
	tests := []struct {
		input string
		kind  jvalue.ErrorKind
		pos   int
		exp   []string // if nil, not checked
	}{
		// No value at all.
		{"", jvalue.NoAlternativeMatched, 0, allValues},
		{"   ", jvalue.NoAlternativeMatched, 3, allValues},
		{"x", jvalue.NoAlternativeMatched, 0, allValues},
		{"tru", jvalue.NoAlternativeMatched, 0, allValues},
		{"nul", jvalue.NoAlternativeMatched, 0, allValues},
		{"+1", jvalue.NoAlternativeMatched, 0, allValues},
		{".5", jvalue.NoAlternativeMatched, 0, allValues},

		// Missing values inside containers.
		{`{"a": }`, jvalue.NoAlternativeMatched, 6, allValues},
		{`[1,]`, jvalue.NoAlternativeMatched, 3, allValues},
		{`{"a": 1, "b":`, jvalue.NoAlternativeMatched, 13, allValues},

		// Missing punctuation.
		{`[true false]`, jvalue.ExpectedToken, 6, []string{`","`, `"]"`}},
		{`{"a" 1}`, jvalue.ExpectedToken, 5, []string{`":"`}},
		{`{1:2}`, jvalue.ExpectedToken, 1, []string{`"}"`, "string"}},
		{`{"a":1,}`, jvalue.ExpectedString, 7, []string{"string"}},
		{`{"a":null "b":2}`, jvalue.ExpectedToken, 10, []string{`","`, `"}"`}},
		{`[`, jvalue.ExpectedToken, 1, nil},

		// Numbers.
		{"-", jvalue.ExpectedInteger, 1, []string{`"0"`, "integer"}},
		{"-x", jvalue.ExpectedInteger, 1, []string{`"0"`, "integer"}},
		{"1e", jvalue.ExpectedInteger, 2, []string{`"-"`, "integer"}},
		{"1e+5", jvalue.ExpectedInteger, 2, []string{`"-"`, "integer"}},
		{"1e-", jvalue.ExpectedInteger, 3, []string{"integer"}},
		{"1e-99999999999999999999", jvalue.IntegerOverflow, 3, []string{"integer"}},
		{"[1, 2E99999999999999999999]", jvalue.IntegerOverflow, 6, []string{"integer"}},
		{"1e99999999999999999999", jvalue.IntegerOverflow, 2, []string{"integer"}},

		// Strings.
		{`"abc`, jvalue.UnterminatedString, 4, []string{`"\""`}},
		{`"`, jvalue.UnterminatedString, 1, []string{`"\""`}},
		{`"ab\`, jvalue.UnterminatedString, 4, nil},
		{`"\x"`, jvalue.UnrecognizedEscape, 2, nil},
		{`"\u0041"`, jvalue.UnrecognizedEscape, 2, nil},
		{`["ok", "\q"]`, jvalue.UnrecognizedEscape, 9, nil},
		{`{"\a": 1}`, jvalue.UnrecognizedEscape, 3, nil},
	}
	for _, test := range tests {
		v, rest, err := jvalue.Parse(test.input)
		if err == nil {
			t.Errorf("Parse %q: got (%v, %q), want error", test.input, v, rest)
			continue
		}
		var serr *jvalue.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %q: got error %[2]T (%[2]v), want *SyntaxError", test.input, err)
			continue
		}
		if serr.Kind != test.kind {
			t.Errorf("Parse %q: got kind %v, want %v", test.input, serr.Kind, test.kind)
		}
		if serr.Location.Pos != test.pos {
			t.Errorf("Parse %q: got offset %d, want %d (%v)", test.input, serr.Location.Pos, test.pos, err)
		}
		if test.exp != nil {
			if diff := cmp.Diff(test.exp, serr.Expected); diff != "" {
				t.Errorf("Parse %q: expected labels (-want, +got):\n%s", test.input, diff)
			}
		}
	}
}

func TestErrorText(t *testing.T) {
	var depth2 jvalue.Parser
	depth2.SetMaxDepth(2)

	tests := []struct {
		parse func() error
		want  string
	}{
		{func() error { _, err := jvalue.ParseComplete(`{"a": }`); return err },
			`at 1:6: unexpected '}', expected array, false, null, number, object, string or true`},
		{func() error { _, err := jvalue.ParseComplete("{\n  \"a\": tru\n}"); return err },
			`at 2:7: unexpected 't', expected array, false, null, number, object, string or true`},
		{func() error { _, err := jvalue.ParseComplete(`"\x"`); return err },
			`at 1:2: invalid character 'x' in escape sequence`},
		{func() error { _, err := jvalue.ParseComplete("\"\\\n\""); return err },
			`at 1:2: invalid character '\n' in escape sequence`},
		{func() error { _, err := jvalue.ParseComplete(`"\'"`); return err },
			`at 1:2: invalid character '\'' in escape sequence`},
		{func() error { _, err := jvalue.ParseComplete(`"\é"`); return err },
			`at 1:2: invalid character 'é' in escape sequence`},
		{func() error { _, err := jvalue.ParseComplete(`"ab\`); return err },
			`at 1:4: unexpected end of input, expected "/", "\"", "\\", "b", "f", "n", "r" or "t"`},
		{func() error { _, err := jvalue.ParseComplete(`"abc`); return err },
			`at 1:4: unexpected end of input, expected "\""`},
		{func() error { _, err := jvalue.ParseComplete("1 x"); return err },
			`at 1:2: unexpected 'x' after value`},
		{func() error { _, err := jvalue.ParseComplete("[[\n1e99999999999999999999]]"); return err },
			`at 2:2: integer value out of range`},
		{func() error { _, err := depth2.ParseComplete("[[[]]]"); return err },
			`at 1:2: maximum nesting depth exceeded (limit 2)`},
		{func() error { _, err := jvalue.Unquote(`"a" b`); return err },
			`at 1:4: unexpected 'b' after value`},
	}
	for _, test := range tests {
		err := test.parse()
		if err == nil {
			t.Errorf("Got no error, want %q", test.want)
		} else if got := err.Error(); got != test.want {
			t.Errorf("Wrong error text:\n got: %s\nwant: %s", got, test.want)
		}
	}
}

func TestErrorLocation(t *testing.T) {
	const input = "[1,\n 2,\n\t{\"k\": ?}]"
	_, err := jvalue.ParseComplete(input)
	var serr *jvalue.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	}
	want := jvalue.Location{
		Span:  jvalue.Span{Pos: 15, End: 16},
		First: jvalue.LineCol{Line: 3, Column: 7},
		Last:  jvalue.LineCol{Line: 3, Column: 8},
	}
	if diff := cmp.Diff(want, serr.Location); diff != "" {
		t.Errorf("Location (-want, +got):\n%s", diff)
	}
	if serr.Found != `'?'` {
		t.Errorf("Found: got %q, want %q", serr.Found, `'?'`)
	}
}

func TestErrorUnwrap(t *testing.T) {
	var p jvalue.Parser
	p.SetMaxDepth(1)
	_, err := p.ParseComplete(`[[]]`)
	if !errors.Is(err, jvalue.ErrDepthExceeded) {
		t.Errorf("Parse: got %v, want %v", err, jvalue.ErrDepthExceeded)
	}

	_, err = jvalue.ParseComplete(`1e123456789012345678901234567890`)
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Parse: got %v, want %v", err, strconv.ErrRange)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind jvalue.ErrorKind
		want string
	}{
		{jvalue.ExpectedInteger, "expected integer"},
		{jvalue.ExpectedObject, "expected object"},
		{jvalue.NoAlternativeMatched, "no alternative matched"},
		{jvalue.TrailingData, "trailing data"},
		{0, "unknown error"},
		{-3, "unknown error"},
		{100, "unknown error"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind %d: got %q, want %q", int(test.kind), got, test.want)
		}
	}
}
