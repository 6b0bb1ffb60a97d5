// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"math"
	"strconv"

	"go4.org/mem"
)

var (
	minus   = char('-')
	zero    = char('0')
	dot     = char('.')
	expMark = satisfy(ExpectedToken, `"e"`, isExpMark)

	// digits counts a run of zero or more digits.
	digits = many(digit, 0, countDigit)
)

// number matches a JSON number followed by optional whitespace:
//
//	'-'? ('0' | digit+) ('.' digit*)? (('e'|'E') '-'? integer)?
//
// It fails without consuming input if the input does not begin with a sign
// or a digit. The integer part may have any number of digits, but an
// exponent that does not fit in an int64 is a committed failure.
var number = expect(lex[float64](numberBody), ExpectedNumber, "number")

func numberBody(in input) result[float64] {
	s := newSeq(in)
	_, neg := attempt(&s, minus)

	var whole mem.RO
	if _, ok := attempt(&s, zero); !ok {
		start := s.cur
		if n, ok := run(&s, wholeDigits); ok {
			whole = start.rest().SliceTo(n)
		}
	}

	var frac mem.RO
	if _, ok := attempt(&s, dot); ok {
		start := s.cur
		if n, ok := run(&s, digits); ok {
			frac = start.rest().SliceTo(n)
		}
	}

	var exp int64
	if _, ok := attempt(&s, expMark); ok {
		_, negExp := attempt(&s, minus)
		exp, _ = run(&s, integer)
		if negExp {
			exp = -exp
		}
	}
	if s.failed() {
		return done(&s, 0.0)
	}
	return done(&s, makeFloat(neg, whole, frac, exp))
}

// pow10 holds the powers of ten that are exactly representable as float64.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// makeFloat combines the parts of a number into its value. The whole and
// frac arguments are the digits of the integer and fractional parts; whole is
// empty if the integer part is zero. The sign applies to the combined
// magnitude, and the result is the nearest float64 to the exact decimal value.
func makeFloat(neg bool, whole, frac mem.RO, exp int64) float64 {
	// If the decimal mantissa fits in 53 bits and the scale is an exact power
	// of ten, a single multiplication or division is correctly rounded.
	var mant uint64
	exact := true
	for _, part := range []mem.RO{whole, frac} {
		for i := 0; exact && i < part.Len(); i++ {
			mant = mant*10 + uint64(part.At(i)-'0')
			exact = mant < 1<<53
		}
	}

	var f float64
	e10 := exp - int64(frac.Len())
	if exact && exp > math.MinInt32 && e10 > -int64(len(pow10)) && e10 < int64(len(pow10)) {
		switch {
		case e10 < 0:
			f = float64(mant) / pow10[-e10]
		default:
			f = float64(mant) * pow10[e10]
		}
	} else {
		buf := make([]byte, 0, 32+whole.Len()+frac.Len())
		if whole.Len() == 0 {
			buf = append(buf, '0')
		} else {
			buf = mem.Append(buf, whole)
		}
		if frac.Len() != 0 {
			buf = mem.Append(append(buf, '.'), frac)
		}
		buf = strconv.AppendInt(append(buf, 'e'), exp, 10)

		// A range error reports an infinite or zero result; keep it.
		f, _ = strconv.ParseFloat(string(buf), 64)
	}
	if neg {
		return -f
	}
	return f
}

// isFinite reports whether f is neither infinite nor NaN.
func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
