// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects
// permitted by a Parser that has not been configured otherwise.
const DefaultMaxDepth = 1000

// A Parser parses JSON text into Value trees. The zero value is ready for use
// with default settings. A Parser holds only configuration, so it may be
// used by multiple goroutines concurrently, provided it is not reconfigured
// while in use.
type Parser struct {
	maxDepth int
}

// SetMaxDepth sets the maximum nesting depth of arrays and objects accepted
// by p. Input nested more deeply is reported as an error of kind
// DepthExceeded. If n <= 0, the default limit is restored.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// MaxDepth reports the maximum nesting depth accepted by p.
func (p *Parser) MaxDepth() int {
	if p == nil || p.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.maxDepth
}

// Parse parses a single JSON value from the front of src, skipping leading
// whitespace. On success it returns the value and the unconsumed remainder of
// src, which begins after the whitespace (if any) following the value. Parse
// does not require the input to be fully consumed; see ParseComplete.
//
// In case of error, the concrete type of the error is *SyntaxError.
func (p *Parser) Parse(src string) (Value, string, error) {
	v, n, err := p.parse(mem.S(src))
	if err != nil {
		return nil, "", err
	}
	return v, src[n:], nil
}

// ParseBytes is as Parse, but accepts and returns byte slices. The
// remainder shares storage with src.
func (p *Parser) ParseBytes(src []byte) (Value, []byte, error) {
	v, n, err := p.parse(mem.B(src))
	if err != nil {
		return nil, nil, err
	}
	return v, src[n:], nil
}

// ParseComplete parses src as a single JSON value, which must be surrounded
// only by whitespace. Any other input following the value is reported as an
// error of kind TrailingData.
func (p *Parser) ParseComplete(src string) (Value, error) {
	in := mem.S(src)
	v, n, err := p.parse(in)
	if err != nil {
		return nil, err
	} else if n < in.Len() {
		return nil, newSyntaxError(in, failure{
			pos: n, kind: TrailingData, labels: []string{endOfInput},
		})
	}
	return v, nil
}

func (p *Parser) parse(src mem.RO) (Value, int, error) {
	r := topValue(input{src: src, limit: p.MaxDepth()})
	if r.st != success {
		return nil, 0, newSyntaxError(src, r.fail)
	}
	return r.val, r.rest.pos, nil
}

// Parse parses a single JSON value from the front of src using the default
// settings. See [Parser.Parse].
func Parse(src string) (Value, string, error) { return new(Parser).Parse(src) }

// ParseBytes parses a single JSON value from the front of src using the
// default settings. See [Parser.ParseBytes].
func ParseBytes(src []byte) (Value, []byte, error) { return new(Parser).ParseBytes(src) }

// ParseComplete parses src as a single JSON value using the default
// settings. See [Parser.ParseComplete].
func ParseComplete(src string) (Value, error) { return new(Parser).ParseComplete(src) }

// MustParse parses src as a single complete JSON value, and panics if that
// fails. It is intended for values that are known to be valid, such as
// constants in tests.
func MustParse(src string) Value {
	v, err := ParseComplete(src)
	if err != nil {
		panic(fmt.Sprintf("jvalue: MustParse: %v", err))
	}
	return v
}

// topValue skips leading whitespace and then matches a value.
func topValue(in input) result[Value] {
	s := newSeq(in)
	run[struct{}](&s, spaces)
	v, _ := run[Value](&s, value)
	return done(&s, v)
}

// alternatives is the value dispatcher. It is assigned during package
// initialization, since the array and object branches refer back to value.
var alternatives parser[Value]

func init() {
	alternatives = choice(NoAlternativeMatched,
		branch[Value]{"string", is('"'), mapTo(jsonString, newString)},
		branch[Value]{"object", is('{'), object},
		branch[Value]{"array", is('['), array},
		branch[Value]{"number", isNumStart, mapTo(number, newNumber)},
		branch[Value]{"false", is('f'), constant("false", Bool(false))},
		branch[Value]{"true", is('t'), constant("true", Bool(true))},
		branch[Value]{"null", is('n'), constant("null", Null{})},
	)
}

// value matches a single JSON value followed by optional whitespace. The
// alternatives are tried in a fixed order: string, object, array, number,
// false, true, null.
func value(in input) result[Value] { return alternatives(in) }

func newString(s string) Value  { return String(s) }
func newNumber(f float64) Value { return Number(f) }

// constant matches the literal text of word and reports v.
func constant(word string, v Value) parser[Value] {
	return lex(mapTo(literal(word), func(string) Value { return v }))
}

var (
	lbrace = expect(lex(char('{')), ExpectedObject, "object")
	rbrace = lex(char('}'))
	lsq    = expect(lex(char('[')), ExpectedArray, "array")
	rsq    = lex(char(']'))
	comma  = lex(char(','))
	colon  = lex(char(':'))
)

// object matches a JSON object:
//
//	'{' (string ':' value) *, (',') '}'
//
// Members with duplicate keys replace earlier ones.
func object(in input) result[Value] {
	s := newSeq(in)
	run(&s, lbrace)
	s.enter()

	obj := make(Object)
	key, ok := attempt(&s, jsonString)
	for ok {
		if _, ok = run(&s, colon); !ok {
			break
		}
		var v Value
		if v, ok = run[Value](&s, value); !ok {
			break
		}
		obj[key] = v
		if _, ok = attempt(&s, comma); ok {
			key, ok = run(&s, jsonString)
		}
	}
	run(&s, rbrace)
	s.leave()
	return done[Value](&s, obj)
}

// array matches a JSON array:
//
//	'[' value *, (',') ']'
func array(in input) result[Value] {
	s := newSeq(in)
	run(&s, lsq)
	s.enter()

	arr := Array{}
	v, ok := attempt[Value](&s, value)
	for ok {
		arr = append(arr, v)
		if _, ok = attempt(&s, comma); ok {
			v, ok = run[Value](&s, value)
		}
	}
	run(&s, rsq)
	s.leave()
	return done[Value](&s, arr)
}

// enter records that s has opened an array or object, and fails if that
// exceeds the nesting limit. The failure is reported at the position where
// the sequence began, which is the opening bracket.
func (s *seq) enter() {
	if s.failed() {
		return
	} else if s.cur.depth >= s.cur.limit {
		s.err = failure{
			pos:  s.start.pos,
			kind: DepthExceeded,
			err:  fmt.Errorf("%w (limit %d)", ErrDepthExceeded, s.cur.limit),
		}
		s.st = failConsumed
		return
	}
	s.cur.depth++
}

// leave records that s has closed an array or object.
func (s *seq) leave() {
	if !s.failed() {
		s.cur.depth--
	}
}
