// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a recursive-descent parser that converts JSON
// text into a tree of typed values.
//
// # Values
//
// A parsed document is a Value, whose concrete type is one of:
//
//	JSON type  | Go type  | Representation
//	---------- | -------- | ------------------------------------------------
//	number     | Number   | float64, after sign, fraction and exponent
//	string     | String   | the decoded text of the string
//	true/false | Bool     | bool
//	null       | Null     | struct{}
//	object     | Object   | map[string]Value; the last duplicate key wins
//	array      | Array    | []Value in source order
//
// The parser builds each tree bottom-up from a single left-to-right scan, so
// trees are finite and acyclic, and each node owns its children. The parser
// keeps no reference to a tree after returning it.
//
// # Parsing
//
// Call Parse to read one value from the front of the input:
//
//	v, rest, err := jvalue.Parse(`{"a": [1, ""]} more`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	// rest == "more"
//
// Parse does not require the input to be fully consumed: whitespace after
// the value is skipped, and whatever follows is returned to the caller. Use
// ParseComplete to reject input that has trailing data.
//
// A Parser value carries settings, currently the maximum nesting depth of
// arrays and objects. The zero Parser uses DefaultMaxDepth:
//
//	var p jvalue.Parser
//	p.SetMaxDepth(64)
//	v, err := p.ParseComplete(input)
//
// Parsers keep no state between calls, so concurrent calls are independent.
//
// # Grammar
//
// The parser is assembled from small parser combinators. Every token parser
// consumes the whitespace that follows it, so the grammar need not mention
// whitespace between tokens. A value is the first of these alternatives that
// applies at the current position:
//
//	string   '"' char* '"'
//	object   '{' (string ':' value) *, (',') '}'
//	array    '[' value *, (',') ']'
//	number   '-'? ('0' | digit+) ('.' digit*)? (('e'|'E') '-'? digit+)?
//	false    'false'
//	true     'true'
//	null     'null'
//
// An alternative is abandoned in favor of the next only if it fails without
// consuming input. A failure after input has been consumed, such as an
// unterminated string, is reported for the whole document.
//
// Strings support the escapes \" \\ \/ \b \f \n \r \t. Unicode escapes of
// the form \uXXXX are not supported, and are reported as errors of kind
// UnrecognizedEscape. Exponents do not accept a "+" sign.
//
// # Errors
//
// Errors reported by the parser have concrete type *SyntaxError, which gives
// the ErrorKind of the failure, its location, and the labels of what was
// expected at that location:
//
//	var serr *jvalue.SyntaxError
//	if errors.As(err, &serr) {
//	   log.Printf("At line %d: %v", serr.Location.First.Line, serr.Kind)
//	}
package jvalue
