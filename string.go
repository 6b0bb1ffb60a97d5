// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "github.com/creachadair/jvalue/internal/escape"

var (
	openQuote  = char('"')
	closeQuote = lex(satisfy(UnterminatedString, `"\""`, is('"')))
	escapeSeqs = []string{`"\""`, `"\\"`, `"/"`, `"b"`, `"f"`, `"n"`, `"r"`, `"t"`}

	// stringChars collects the decoded contents of a string body.
	stringChars = many[byte](jsonChar, []byte(nil), func(buf []byte, c byte) []byte { return append(buf, c) })
)

// jsonString matches a quoted JSON string followed by optional whitespace,
// and reports its decoded contents. Leading whitespace is not permitted.
var jsonString = expect[string](stringBody, ExpectedString, "string")

func stringBody(in input) result[string] {
	s := newSeq(in)
	run(&s, openQuote)
	text, _ := run(&s, stringChars)
	run(&s, closeQuote)
	return done(&s, string(text))
}

// jsonChar matches a single character of a string body: either a byte other
// than a quotation mark or backslash, which stands for itself, or a
// backslash escape. A quotation mark ends the body without being consumed.
func jsonChar(in input) result[byte] {
	c, ok := in.peek()
	if !ok || c == '"' {
		return reject[byte](failEmpty, failure{pos: in.pos, kind: UnterminatedString})
	} else if c != '\\' {
		return accept(c, in.advance(1))
	}

	esc := in.advance(1)
	e, ok := esc.peek()
	if !ok {
		return reject[byte](failConsumed, failure{pos: esc.pos, kind: UnterminatedString, labels: escapeSeqs})
	} else if d, ok := escape.Unescape(e); ok {
		return accept(d, esc.advance(1))
	}
	return reject[byte](failConsumed, failure{pos: esc.pos, kind: UnrecognizedEscape, labels: escapeSeqs})
}
