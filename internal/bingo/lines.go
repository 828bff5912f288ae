package bingo

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// LineClass distinguishes rows, columns and diagonals.
type LineClass uint8

const (
	Row LineClass = iota
	Column
	Diagonal
)

func (c LineClass) String() string {
	switch c {
	case Row:
		return "row"
	case Column:
		return "col"
	case Diagonal:
		return "diag"
	default:
		return "unknown"
	}
}

// Diagonal indexes.
const (
	// MainDiagonal runs from the top-left to the bottom-right square.
	MainDiagonal = 0
	// AntiDiagonal runs from the top-right to the bottom-left square.
	AntiDiagonal = 1
)

// NumLines is the number of lines that can win a game.
const NumLines = 2*CardSize + 2

// Line identifies one row, column or diagonal of a card.
type Line struct {
	Class LineClass
	Index int
}

// RowLine returns the line for row i.
func RowLine(i int) Line { return Line{Class: Row, Index: i} }

// ColumnLine returns the line for column i.
func ColumnLine(i int) Line { return Line{Class: Column, Index: i} }

// DiagonalLine returns the line for diagonal i, MainDiagonal or AntiDiagonal.
func DiagonalLine(i int) Line { return Line{Class: Diagonal, Index: i} }

func (l Line) String() string {
	if l.Class == Diagonal {
		if l.Index == MainDiagonal {
			return "main diag"
		}
		return "anti diag"
	}
	return fmt.Sprintf("%s %d", l.Class, l.Index)
}

// field returns the counter field of the line. Columns come first, then
// rows, then the two diagonals.
func (l Line) field() int {
	switch l.Class {
	case Column:
		return l.Index
	case Row:
		return CardSize + l.Index
	default:
		return 2*CardSize + l.Index
	}
}

func lineAt(field int) Line {
	switch {
	case field < CardSize:
		return ColumnLine(field)
	case field < 2*CardSize:
		return RowLine(field - CardSize)
	default:
		return DiagonalLine(field - 2*CardSize)
	}
}

// LineSet is a set of lines, one bit per counter field.
type LineSet uint16

// LineSetOf returns the set holding lines.
func LineSetOf(lines ...Line) LineSet {
	var s LineSet
	for _, l := range lines {
		s |= 1 << l.field()
	}
	return s
}

// Has reports whether l is in the set.
func (s LineSet) Has(l Line) bool {
	return s&(1<<l.field()) != 0
}

// Len returns the number of lines in the set.
func (s LineSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// All yields the lines in the set: columns, then rows, then diagonals.
func (s LineSet) All() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for rest := s; rest != 0; rest &= rest - 1 {
			if !yield(lineAt(bits.TrailingZeros16(uint16(rest)))) {
				return
			}
		}
	}
}

func (s LineSet) String() string {
	var names []string
	for l := range s.All() {
		names = append(names, l.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
