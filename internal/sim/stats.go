// Package sim plays batches of bingo games and aggregates which lines won
// them and how long they ran.
package sim

import "github.com/louisbranch/bingosim/internal/bingo"

// Stats tallies wins per line and draws across games. Ties count once for
// every line completed on the winning draw, so the line totals can exceed
// Games. Stats from independent batches are combined with Merge.
type Stats struct {
	Rows  [bingo.CardSize]uint64
	Cols  [bingo.CardSize]uint64
	Diags [2]uint64
	Games uint64
	Draws uint64
}

// Record adds the outcome of one game.
func (s *Stats) Record(r bingo.Result) {
	for l := range r.Wins.All() {
		switch l.Class {
		case bingo.Row:
			s.Rows[l.Index]++
		case bingo.Column:
			s.Cols[l.Index]++
		case bingo.Diagonal:
			s.Diags[l.Index]++
		}
	}
	s.Games++
	s.Draws += uint64(r.Draws)
}

// Merge adds the tallies of other.
func (s *Stats) Merge(other Stats) {
	for i := range s.Rows {
		s.Rows[i] += other.Rows[i]
		s.Cols[i] += other.Cols[i]
	}
	for i := range s.Diags {
		s.Diags[i] += other.Diags[i]
	}
	s.Games += other.Games
	s.Draws += other.Draws
}

// Wins returns the number of games won by l.
func (s Stats) Wins(l bingo.Line) uint64 {
	switch l.Class {
	case bingo.Row:
		return s.Rows[l.Index]
	case bingo.Column:
		return s.Cols[l.Index]
	default:
		return s.Diags[l.Index]
	}
}

// RowTotal returns the wins by any row.
func (s Stats) RowTotal() uint64 {
	var n uint64
	for _, c := range s.Rows {
		n += c
	}
	return n
}

// ColTotal returns the wins by any column.
func (s Stats) ColTotal() uint64 {
	var n uint64
	for _, c := range s.Cols {
		n += c
	}
	return n
}

// DiagTotal returns the wins by either diagonal.
func (s Stats) DiagTotal() uint64 {
	return s.Diags[bingo.MainDiagonal] + s.Diags[bingo.AntiDiagonal]
}

// Total returns the wins by any line.
func (s Stats) Total() uint64 {
	return s.RowTotal() + s.ColTotal() + s.DiagTotal()
}

// AvgDraws returns the mean game length in draws, or 0 before any game.
func (s Stats) AvgDraws() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}
