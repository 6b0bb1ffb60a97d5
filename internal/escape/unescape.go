// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

// shortEsc maps the character following a backslash to its decoding.
var shortEsc = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unescape reports the byte denoted by the escape sequence "\c", and whether
// c denotes a valid escape. Unicode escapes (\uXXXX) are not supported, and
// Unescape reports false for 'u'.
func Unescape(c byte) (byte, bool) {
	d := shortEsc[c]
	return d, d != 0
}
