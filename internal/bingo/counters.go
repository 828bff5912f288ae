package bingo

import (
	"fmt"
	"math/bits"
)

// Every line has a 3-bit counter. The ten row and column counters share
// one word and the two diagonal counters have a word of their own. For
// testing and incrementing the two words are joined into one uint64 with
// the diagonal word above the row/column fields:
//
//	bit  35..33  32..30  29..27 .. 17..15  14..12 .. 2..0
//	     anti    main    row 4     row 0   col 4    col 0
const (
	fieldBits    = 3
	fieldMask    = 1<<fieldBits - 1
	rowColFields = 2 * CardSize
	diagShift    = rowColFields * fieldBits
	rowColMask   = 1<<diagShift - 1

	// A field holds CardSize-1 exactly when this bit is set, as long as no
	// field ever holds more than CardSize-1.
	fullBit = 1 << (fieldBits - 1)
)

const (
	_ uint = (CardSize - 1) - fullBit
	_ uint = fullBit - (CardSize - 1)
	_ uint = 32 - rowColFields*fieldBits
	_ uint = 8 - 2*fieldBits
)

// step is the precomputed counter update for one square: incr has the low
// bit of every field the square touches, test has the top bit.
type step struct {
	incr uint64
	test uint64
}

func fieldShift(field int) uint {
	return uint(field * fieldBits)
}

func newStep(m Membership) step {
	incr := uint64(1) << fieldShift(ColumnLine(m.Col).field())
	incr |= 1 << fieldShift(RowLine(m.Row).field())
	if m.MainDiag {
		incr |= 1 << fieldShift(DiagonalLine(MainDiagonal).field())
	}
	if m.AntiDiag {
		incr |= 1 << fieldShift(DiagonalLine(AntiDiagonal).field())
	}
	return step{incr: incr, test: incr << (fieldBits - 1)}
}

// completed returns the lines whose fields are flagged in hits, the
// result of counters AND test.
func completed(counters, hits uint64) LineSet {
	var s LineSet
	for ; hits != 0; hits &= hits - 1 {
		field := bits.TrailingZeros64(hits) / fieldBits
		if v := (counters >> fieldShift(field)) & fieldMask; v != CardSize-1 {
			panic(fmt.Sprintf("bingo: %s counter holds %d", lineAt(field), v))
		}
		s |= 1 << field
	}
	return s
}
