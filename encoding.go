// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return escape.Quote(mem.S(src)) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Whitespace may follow the closing quotation mark, but nothing else.
//
// Unquote accepts the same escapes as the parser, so \uXXXX escapes are
// reported as errors of kind UnrecognizedEscape. In case of error, the
// concrete type of the error is *SyntaxError.
func Unquote(src string) (string, error) {
	in := mem.S(src)
	r := jsonString(input{src: in})
	if r.st != success {
		return "", newSyntaxError(in, r.fail)
	} else if r.rest.pos < in.Len() {
		return "", newSyntaxError(in, failure{
			pos: r.rest.pos, kind: TrailingData, labels: []string{endOfInput},
		})
	}
	return r.val, nil
}
