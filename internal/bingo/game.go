package bingo

import "github.com/louisbranch/bingosim/internal/random"

// Game is one round played against a card. The zero counters of a fresh
// Game are the only per-game state; the card itself is never written.
type Game struct {
	card   *Card
	rowCol uint32
	diag   uint8
	draws  int
	wins   LineSet
}

// Result is the outcome of a game: the lines completed on the winning draw
// and the number of markers drawn, counting the winning one.
type Result struct {
	Wins  LineSet
	Draws int
}

// NewGame starts a game on c with every counter at zero.
func (c *Card) NewGame() Game {
	return Game{card: c}
}

func (g *Game) counters() uint64 {
	return uint64(g.rowCol) | uint64(g.diag)<<diagShift
}

// Draw plays marker m. It returns the lines completed by this draw and
// true once the game is won. Markers not on the card only count as a draw.
// Drawing after the game is won returns the winning lines unchanged.
func (g *Game) Draw(m Marker) (LineSet, bool) {
	if g.wins != 0 {
		return g.wins, true
	}
	g.draws++
	i, ok := g.card.present.index(m)
	if !ok {
		return 0, false
	}

	st := g.card.steps[i]
	counters := g.counters()
	// Test before adding: a touched field already at CardSize-1 is a win,
	// and stopping here keeps every field below the carry into its neighbour.
	if hits := counters & st.test; hits != 0 {
		g.wins = completed(counters, hits)
		return g.wins, true
	}
	counters += st.incr
	g.rowCol = uint32(counters & rowColMask)
	g.diag = uint8(counters >> diagShift)
	return 0, false
}

// Won reports whether a line has been completed.
func (g *Game) Won() bool {
	return g.wins != 0
}

// Draws returns the number of markers drawn so far.
func (g *Game) Draws() int {
	return g.draws
}

// Count returns how many squares of l have been drawn. A winning line is
// reported by Draw but never stored, so Count stays below CardSize.
func (g *Game) Count(l Line) int {
	return int((g.counters() >> fieldShift(l.field())) & fieldMask)
}

// Play draws all NumMarkers markers in a random order from src until a
// line is completed.
func (c *Card) Play(src random.Source) Result {
	var order [NumMarkers]Marker
	Shuffle(src, order[:], 0)
	return c.PlayOrder(order[:])
}

// PlayOrder plays the markers in order until a line is completed. order
// must contain every marker on the card; a game that runs out of markers
// without a winner is a bug and panics.
func (c *Card) PlayOrder(order []Marker) Result {
	g := c.NewGame()
	for _, m := range order {
		if wins, won := g.Draw(m); won {
			return Result{Wins: wins, Draws: g.draws}
		}
	}
	panic("bingo: markers exhausted without a completed line")
}
