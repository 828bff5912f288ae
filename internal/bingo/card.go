package bingo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/bingosim/internal/random"
)

// ErrInvalidCard indicates squares that break the column-range layout.
var ErrInvalidCard = errors.New("invalid card")

// Membership records the lines one square belongs to.
type Membership struct {
	Row      int
	Col      int
	MainDiag bool
	AntiDiag bool
}

// Lines returns the lines the square belongs to.
func (m Membership) Lines() LineSet {
	s := LineSetOf(RowLine(m.Row), ColumnLine(m.Col))
	if m.MainDiag {
		s |= LineSetOf(DiagonalLine(MainDiagonal))
	}
	if m.AntiDiag {
		s |= LineSetOf(DiagonalLine(AntiDiagonal))
	}
	return s
}

// Card is a 5x5 bingo card. It is immutable once built, so one card may be
// played by any number of games, including concurrently.
type Card struct {
	squares [CardSize][CardSize]Marker
	present markerSet

	// Both tables are keyed by the dense index of a square's marker.
	lines [NumSquares]Membership
	steps [NumSquares]step
}

// NewRandomCard deals a card: each column gets the first CardSize markers
// of a shuffle of its whole MarkerRows range.
func NewRandomCard(src random.Source) *Card {
	var squares [CardSize][CardSize]Marker
	var markers [MarkerRows]Marker
	for col := range CardSize {
		Shuffle(src, markers[:], Marker(col*MarkerRows))
		for row := range CardSize {
			squares[row][col] = markers[row]
		}
	}
	return newCard(squares)
}

// NewCard builds a card from explicit squares, indexed [row][col].
func NewCard(squares [CardSize][CardSize]Marker) (*Card, error) {
	var seen markerSet
	for row := range CardSize {
		for col := range CardSize {
			m := squares[row][col]
			if int(m) >= NumMarkers {
				return nil, fmt.Errorf("%w: marker %d out of range", ErrInvalidCard, m)
			}
			if m.Column() != col {
				return nil, fmt.Errorf("%w: %s placed in column %d", ErrInvalidCard, m, col)
			}
			if seen.has(m) {
				return nil, fmt.Errorf("%w: duplicate marker %s", ErrInvalidCard, m)
			}
			seen.set(m)
		}
	}
	return newCard(squares), nil
}

func newCard(squares [CardSize][CardSize]Marker) *Card {
	c := &Card{squares: squares}
	for row := range CardSize {
		for col := range CardSize {
			c.present.set(squares[row][col])
		}
	}

	// The presence set is complete, so every square has its final index.
	for row := range CardSize {
		for col := range CardSize {
			m := squares[row][col]
			i, ok := c.present.index(m)
			if !ok {
				panic(fmt.Sprintf("bingo: marker %s missing from presence set", m))
			}
			entry := Membership{
				Row:      row,
				Col:      col,
				MainDiag: row == col,
				AntiDiag: row+col == CardSize-1,
			}
			c.lines[i] = entry
			c.steps[i] = newStep(entry)
		}
	}
	return c
}

// Square returns the marker at row, col.
func (c *Card) Square(row, col int) Marker {
	return c.squares[row][col]
}

// Squares returns a copy of the grid, indexed [row][col].
func (c *Card) Squares() [CardSize][CardSize]Marker {
	return c.squares
}

// Index returns the dense index of m on this card, or false when m is not
// on the card. The index never changes for the life of the card.
func (c *Card) Index(m Marker) (int, bool) {
	return c.present.index(m)
}

// Membership returns the line membership stored at dense index i.
func (c *Card) Membership(i int) Membership {
	return c.lines[i]
}

func (c *Card) String() string {
	var b strings.Builder
	for row := range CardSize {
		for col := range CardSize {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.squares[row][col].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
