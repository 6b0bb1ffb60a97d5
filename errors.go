// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// ErrorKind classifies the syntax errors reported by the parser.
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	ExpectedInteger      ErrorKind = iota + 1 // a run of decimal digits was required
	ExpectedNumber                            // a number was required
	ExpectedString                            // a quoted string was required
	ExpectedObject                            // an object was required
	ExpectedArray                             // an array was required
	ExpectedToken                             // a specific punctuation mark or literal was required
	UnrecognizedEscape                        // a backslash was followed by an unknown character
	UnterminatedString                        // input ended inside a string
	NoAlternativeMatched                      // no kind of value begins at this position
	IntegerOverflow                           // a digit run does not fit in 64 bits
	DepthExceeded                             // arrays and objects are nested too deeply
	TrailingData                              // input remains after a complete value
)

var kindStr = [...]string{
	0:                    "unknown error",
	ExpectedInteger:      "expected integer",
	ExpectedNumber:       "expected number",
	ExpectedString:       "expected string",
	ExpectedObject:       "expected object",
	ExpectedArray:        "expected array",
	ExpectedToken:        "expected token",
	UnrecognizedEscape:   "unrecognized escape",
	UnterminatedString:   "unterminated string",
	NoAlternativeMatched: "no alternative matched",
	IntegerOverflow:      "integer overflow",
	DepthExceeded:        "depth exceeded",
	TrailingData:         "trailing data",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// ErrDepthExceeded is wrapped by syntax errors of kind DepthExceeded.
var ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Location Location // where the failure occurred
	Expected []string // labels of what was expected there, sorted
	Found    string   // the offending input, quoted, or "end of input"

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	var msg string
	switch s.Kind {
	case UnrecognizedEscape:
		msg = fmt.Sprintf("invalid character %s in escape sequence", s.Found)
	case IntegerOverflow:
		msg = "integer value out of range"
	case DepthExceeded:
		msg = s.err.Error()
	case TrailingData:
		msg = fmt.Sprintf("unexpected %s after value", s.Found)
	default:
		msg = fmt.Sprintf("unexpected %s", s.Found)
		if len(s.Expected) != 0 {
			msg += ", expected " + joinLabels(s.Expected)
		}
	}
	return fmt.Sprintf("at %s: %s", s.Location.First, msg)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

const endOfInput = "end of input"

// newSyntaxError converts f into a *SyntaxError describing a failure in src.
func newSyntaxError(src mem.RO, f failure) *SyntaxError {
	found, end := endOfInput, f.pos
	if f.pos < src.Len() {
		r, n := mem.DecodeRune(src.SliceFrom(f.pos))
		found, end = strconv.QuoteRune(r), f.pos+max(n, 1)
	}

	var exp []string
	if len(f.labels) != 0 {
		exp = mapset.New(f.labels...).Slice()
		slices.Sort(exp)
	}
	return &SyntaxError{
		Kind:     f.kind,
		Location: locate(src, Span{Pos: f.pos, End: end}),
		Expected: exp,
		Found:    found,
		err:      f.err,
	}
}

// joinLabels makes a human-readable summary of the given labels.
func joinLabels(labels []string) string {
	if len(labels) == 1 {
		return labels[0]
	}
	last := len(labels) - 1
	return strings.Join(labels[:last], ", ") + " or " + labels[last]
}
