// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"math"
	"strconv"
)

// spaces consumes zero or more whitespace characters. It never fails.
func spaces(in input) result[struct{}] { return accept(struct{}{}, skipSpaces(in)) }

func skipSpaces(in input) input {
	for {
		c, ok := in.peek()
		if !ok || !isSpace(c) {
			return in
		}
		in.pos++
	}
}

// digit matches a single ASCII decimal digit.
var digit = satisfy(ExpectedInteger, "digit", isDigit)

// A digitRun accumulates the value of a run of decimal digits.
type digitRun struct {
	n        int64
	overflow bool
}

func (d digitRun) add(c byte) digitRun {
	v := int64(c - '0')
	if d.overflow || d.n > (math.MaxInt64-v)/10 {
		return digitRun{overflow: true}
	}
	return digitRun{n: d.n*10 + v}
}

var integerLabel = []string{"integer"}

// integer matches one or more digits followed by optional whitespace, and
// reports their value. A digit run whose value does not fit in an int64 is a
// committed failure.
var integer = lex[int64](checkedInteger)

// wholeDigits matches one or more digits followed by optional whitespace, and
// reports the number of digits. It has no range limit.
var wholeDigits = lex(expect(many1(digit, 0, countDigit), ExpectedInteger, "integer"))

func countDigit(n int, _ byte) int { return n + 1 }

var digitRunP = expect(many1(digit, digitRun{}, digitRun.add), ExpectedInteger, "integer")

func checkedInteger(in input) result[int64] {
	r := digitRunP(in)
	if r.st != success {
		return reject[int64](r.st, r.fail)
	} else if r.val.overflow {
		return reject[int64](failConsumed, failure{
			pos: in.pos, kind: IntegerOverflow, labels: integerLabel, err: strconv.ErrRange,
		})
	}
	return result[int64]{val: r.val.n, rest: r.rest, fail: r.fail}
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isExpMark(ch byte) bool  { return ch == 'e' || ch == 'E' }

func is(want byte) func(byte) bool { return func(ch byte) bool { return ch == want } }
