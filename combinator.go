// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"slices"

	"go4.org/mem"
)

// An input is a cursor over immutable source text. Parsers never modify the
// text; each returns a new cursor positioned after the input it consumed.
type input struct {
	src   mem.RO
	pos   int
	depth int // current nesting depth of arrays and objects
	limit int // maximum permitted nesting depth
}

func (in input) peek() (byte, bool) {
	if in.pos < in.src.Len() {
		return in.src.At(in.pos), true
	}
	return 0, false
}

func (in input) advance(n int) input { in.pos += n; return in }

func (in input) rest() mem.RO { return in.src.SliceFrom(in.pos) }

// status reports the outcome of a parser.
type status byte

const (
	success      status = iota
	failEmpty           // failed without consuming input; an enclosing choice may try another branch
	failConsumed        // failed after consuming input; the failure is committed
)

// A failure records the position at which a parser failed and the labels of
// what it expected there. The zero failure (kind == 0) means "no failure".
type failure struct {
	pos    int
	kind   ErrorKind
	labels []string
	err    error
}

func (f failure) isZero() bool { return f.kind == 0 }

// merge combines two failures. The failure at the greater offset wins; if
// both are at the same offset their labels are combined and the kind of b is
// kept.
func merge(a, b failure) failure {
	switch {
	case a.isZero():
		return b
	case b.isZero():
		return a
	case a.pos > b.pos:
		return a
	case b.pos > a.pos:
		return b
	}
	if len(a.labels) != 0 {
		b.labels = append(slices.Clip(a.labels), b.labels...)
	}
	if b.err == nil {
		b.err = a.err
	}
	return b
}

// A result is the outcome of applying a parser to an input.
//
// On success, val is the parsed value, rest is the remaining input, and fail
// may hold a hint: a failure of some optional part of the parser at rest.pos,
// which is merged into any subsequent failure at the same position.
type result[T any] struct {
	val  T
	rest input
	st   status
	fail failure
}

// A parser is a pure function from an input cursor to a result.
type parser[T any] func(in input) result[T]

func accept[T any](v T, rest input) result[T] { return result[T]{val: v, rest: rest} }

func reject[T any](st status, f failure) result[T] { return result[T]{st: st, fail: f} }

// A seq threads an input through a sequence of parsers. It tracks whether
// any input has been consumed, so that a later failure is reported as
// committed, and the pending hint at the current position.
type seq struct {
	start, cur input
	hint       failure
	err        failure
	st         status
}

func newSeq(in input) seq { return seq{start: in, cur: in} }

func (s *seq) failed() bool { return !s.err.isZero() }

func (s *seq) abort(st status, f failure) {
	if st == failEmpty {
		f = merge(s.hint, f)
		if s.cur.pos > s.start.pos {
			st = failConsumed
		}
	}
	s.err, s.st = f, st
}

func (s *seq) advance(rest input, hint failure) {
	if rest.pos > s.cur.pos {
		s.hint = hint
	} else {
		s.hint = merge(s.hint, hint)
	}
	s.cur = rest
}

// run applies p at the current position of s. If p fails, s records the
// failure and run reports false; after that every run is a no-op.
func run[T any](s *seq, p parser[T]) (T, bool) {
	var zero T
	if s.failed() {
		return zero, false
	}
	r := p(s.cur)
	if r.st != success {
		s.abort(r.st, r.fail)
		return zero, false
	}
	s.advance(r.rest, r.fail)
	return r.val, true
}

// attempt is like run, but a failure of p that consumed no input is not an
// error: it is kept as a hint and attempt reports false.
func attempt[T any](s *seq, p parser[T]) (T, bool) {
	var zero T
	if s.failed() {
		return zero, false
	}
	r := p(s.cur)
	switch r.st {
	case success:
		s.advance(r.rest, r.fail)
		return r.val, true
	case failEmpty:
		s.hint = merge(s.hint, r.fail)
	default:
		s.abort(r.st, r.fail)
	}
	return zero, false
}

// done reports the result of the sequence s, with value v if it succeeded.
func done[T any](s *seq, v T) result[T] {
	if s.failed() {
		return reject[T](s.st, s.err)
	}
	return result[T]{val: v, rest: s.cur, fail: s.hint}
}

// satisfy matches a single byte for which f reports true.
func satisfy(kind ErrorKind, label string, f func(byte) bool) parser[byte] {
	labels := []string{label}
	return func(in input) result[byte] {
		if c, ok := in.peek(); ok && f(c) {
			return accept(c, in.advance(1))
		}
		return reject[byte](failEmpty, failure{pos: in.pos, kind: kind, labels: labels})
	}
}

// char matches the single byte c.
func char(c byte) parser[byte] {
	return satisfy(ExpectedToken, `"`+string(c)+`"`, func(b byte) bool { return b == c })
}

// literal matches the exact text of word. A partial match consumes nothing.
func literal(word string) parser[string] {
	labels := []string{word}
	want := mem.S(word)
	return func(in input) result[string] {
		if mem.HasPrefix(in.rest(), want) {
			return accept(word, in.advance(len(word)))
		}
		return reject[string](failEmpty, failure{pos: in.pos, kind: ExpectedToken, labels: labels})
	}
}

// many applies p zero or more times, folding each value into an accumulator
// that begins as init. It stops when p fails without consuming input; a
// committed failure of p is a failure of many.
func many[T, A any](p parser[T], init A, step func(A, T) A) parser[A] {
	return func(in input) result[A] { return repeat(p, init, in, step) }
}

// many1 is like many, but requires at least one match of p.
func many1[T, A any](p parser[T], init A, step func(A, T) A) parser[A] {
	return func(in input) result[A] {
		r := p(in)
		if r.st != success {
			return reject[A](r.st, r.fail)
		}
		return repeat(p, step(init, r.val), r.rest, step)
	}
}

func repeat[T, A any](p parser[T], acc A, cur input, step func(A, T) A) result[A] {
	for {
		r := p(cur)
		switch {
		case r.st == failEmpty:
			return result[A]{val: acc, rest: cur, fail: r.fail}
		case r.st != success:
			return reject[A](failConsumed, r.fail)
		case r.rest.pos == cur.pos:
			// No progress; stop rather than loop forever.
			return accept(acc, cur)
		}
		acc, cur = step(acc, r.val), r.rest
	}
}

// lex wraps p so that whitespace following a successful match is consumed.
// Failures of p are reported unchanged.
func lex[T any](p parser[T]) parser[T] {
	return func(in input) result[T] {
		r := p(in)
		if r.st == success {
			if end := skipSpaces(r.rest); end.pos != r.rest.pos {
				r.rest, r.fail = end, failure{}
			}
		}
		return r
	}
}

// expect wraps p so that a failure of p without consuming input is relabeled
// as a failure of the given kind, expecting label.
func expect[T any](p parser[T], kind ErrorKind, label string) parser[T] {
	labels := []string{label}
	return func(in input) result[T] {
		r := p(in)
		if r.st == failEmpty {
			r.fail = failure{pos: in.pos, kind: kind, labels: labels}
		}
		return r
	}
}

// mapTo applies f to the value of a successful match of p.
func mapTo[T, U any](p parser[T], f func(T) U) parser[U] {
	return func(in input) result[U] {
		r := p(in)
		if r.st != success {
			return reject[U](r.st, r.fail)
		}
		return result[U]{val: f(r.val), rest: r.rest, fail: r.fail}
	}
}

// A branch is one alternative of a choice: a parser guarded by a check of
// the first byte of the input.
type branch[T any] struct {
	label string
	first func(byte) bool
	p     parser[T]
}

// choice tries each branch in order, running only those whose guard accepts
// the next input byte. The first branch to succeed, or to fail after
// consuming input, determines the result. If every branch fails without
// consuming input, choice fails with the given kind, expecting the union of
// the labels of all the branches.
func choice[T any](kind ErrorKind, bs ...branch[T]) parser[T] {
	var labels []string
	for _, b := range bs {
		labels = append(labels, b.label)
	}
	return func(in input) result[T] {
		c, ok := in.peek()
		if ok {
			for _, b := range bs {
				if !b.first(c) {
					continue
				}
				if r := b.p(in); r.st != failEmpty {
					return r
				}
			}
		}
		return reject[T](failEmpty, failure{pos: in.pos, kind: kind, labels: labels})
	}
}
