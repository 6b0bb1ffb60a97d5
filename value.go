// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"bytes"
	"slices"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Number, String, Bool, Null, Object, or Array.
//
// A Value produced by the parser owns all of its children, and is not
// modified by the parser after it is returned.
type Value interface {
	// JSON renders the value as compact JSON text.
	//
	// The parser passes control characters and invalid UTF-8 in strings
	// through unchanged, but JSON writes control characters as \u00XX
	// escapes and replaces invalid UTF-8 with U+FFFD. The parser does not
	// accept \u escapes, so a string containing control characters does not
	// parse back from its rendering.
	JSON() string

	// String returns the same text as JSON, so that values format
	// themselves legibly.
	String() string

	isValue()
}

// A Number is a numeric value.
type Number float64

// A String is a string value, with escapes decoded.
type String string

// A Bool is a Boolean constant, true or false.
type Bool bool

// Null represents the null constant.
type Null struct{}

// An Object is a collection of key-value members. Keys are unique; when the
// source text repeats a key, the last occurrence wins.
type Object map[string]Value

// An Array is a sequence of values in source order.
type Array []Value

func (Number) isValue() {}
func (String) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (Object) isValue() {}
func (Array) isValue()  {}

func (n Number) JSON() string { return string(appendJSON(nil, n)) }
func (s String) JSON() string { return string(appendJSON(nil, s)) }
func (b Bool) JSON() string   { return string(appendJSON(nil, b)) }
func (Null) JSON() string     { return "null" }
func (o Object) JSON() string { return string(appendJSON(nil, o)) }
func (a Array) JSON() string  { return string(appendJSON(nil, a)) }

func (n Number) String() string { return n.JSON() }
func (s String) String() string { return s.JSON() }
func (b Bool) String() string   { return b.JSON() }
func (Null) String() string     { return "null" }
func (o Object) String() string { return o.JSON() }
func (a Array) String() string  { return a.JSON() }

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Find returns the value of o with the given key, and reports whether it was
// present.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// appendJSON appends the compact JSON encoding of v to buf. Object members are
// written in key order. A non-finite number is written as null.
func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Number:
		if !isFinite(float64(t)) {
			return append(buf, "null"...)
		}
		return appendNumber(buf, float64(t))
	case String:
		return escape.Append(buf, mem.S(string(t)))
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Object:
		buf = append(buf, '{')
		for i, key := range t.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = escape.Append(buf, mem.S(key))
			buf = appendJSON(append(buf, ':'), t[key])
		}
		return append(buf, '}')
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	default: // Null, or a nil Value
		return append(buf, "null"...)
	}
}

// appendNumber writes f in the shortest form that parses back to f. The
// exponent is written without a "+" sign, which the grammar does not accept.
func appendNumber(buf []byte, f float64) []byte {
	start := len(buf)
	buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	if i := bytes.IndexByte(buf[start:], '+'); i >= 0 {
		buf = slices.Delete(buf, start+i, start+i+1)
	}
	return buf
}
