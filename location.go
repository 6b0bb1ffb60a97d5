// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// locate computes the line and column offsets of span within src.
func locate(src mem.RO, span Span) Location {
	loc := Location{Span: span}
	var line, col int
	for i := 0; i <= span.End && i <= src.Len(); i++ {
		if i == span.Pos {
			loc.First = LineCol{Line: line + 1, Column: col}
		}
		if i == span.End {
			loc.Last = LineCol{Line: line + 1, Column: col}
			break
		}
		if i < src.Len() && src.At(i) == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return loc
}
