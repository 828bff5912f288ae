package bingo

import (
	"errors"
	"testing"

	"github.com/louisbranch/bingosim/internal/random"
)

// gridCard returns the card whose square at row, col holds 15*col + row.
func gridCard(t *testing.T) *Card {
	t.Helper()
	var squares [CardSize][CardSize]Marker
	for row := range CardSize {
		for col := range CardSize {
			squares[row][col] = Marker(col*MarkerRows + row)
		}
	}
	card, err := NewCard(squares)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	return card
}

func TestRandomCardPartition(t *testing.T) {
	for seed := range uint64(500) {
		card := NewRandomCard(random.New(random.SeedFromUint64(seed)))

		var seen [NumMarkers]bool
		for row := range CardSize {
			for col := range CardSize {
				m := card.Square(row, col)
				if int(m) >= NumMarkers {
					t.Fatalf("seed %d: marker %d out of range", seed, m)
				}
				if seen[m] {
					t.Fatalf("seed %d: duplicate marker %s", seed, m)
				}
				seen[m] = true
				if m.Column() != col {
					t.Fatalf("seed %d: %s in column %d", seed, m, col)
				}
			}
		}
	}
}

func TestRandomCardWithZeroSource(t *testing.T) {
	card := NewRandomCard(constSource(0))

	// Each column is the zero-source shuffle of its range: base+14, base+0, ...
	want := [CardSize][CardSize]Marker{
		{14, 29, 44, 59, 74},
		{0, 15, 30, 45, 60},
		{1, 16, 31, 46, 61},
		{2, 17, 32, 47, 62},
		{3, 18, 33, 48, 63},
	}
	if got := card.Squares(); got != want {
		t.Fatalf("squares = %v, want %v", got, want)
	}
}

func TestNewCardRejectsBadSquares(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*[CardSize][CardSize]Marker)
	}{
		{
			name:   "out of range",
			mutate: func(s *[CardSize][CardSize]Marker) { s[0][4] = 75 },
		},
		{
			name:   "wrong column",
			mutate: func(s *[CardSize][CardSize]Marker) { s[2][1] = 3 },
		},
		{
			name:   "duplicate",
			mutate: func(s *[CardSize][CardSize]Marker) { s[1][3] = s[0][3] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			squares := gridCard(t).Squares()
			tt.mutate(&squares)
			if _, err := NewCard(squares); !errors.Is(err, ErrInvalidCard) {
				t.Fatalf("err = %v, want %v", err, ErrInvalidCard)
			}
		})
	}
}

func TestMembershipTable(t *testing.T) {
	card := NewRandomCard(random.New(random.SeedFromUint64(8)))

	used := make(map[int]bool)
	for row := range CardSize {
		for col := range CardSize {
			index, ok := card.Index(card.Square(row, col))
			if !ok {
				t.Fatalf("square %d,%d has no index", row, col)
			}
			if index < 0 || index >= NumSquares || used[index] {
				t.Fatalf("square %d,%d has bad index %d", row, col, index)
			}
			used[index] = true

			got := card.Membership(index)
			want := Membership{
				Row:      row,
				Col:      col,
				MainDiag: row == col,
				AntiDiag: row+col == CardSize-1,
			}
			if got != want {
				t.Fatalf("membership %d,%d = %+v, want %+v", row, col, got, want)
			}
		}
	}

	center := card.Membership(mustIndex(t, card, card.Square(2, 2)))
	if !center.MainDiag || !center.AntiDiag {
		t.Fatalf("center membership = %+v, want both diagonals", center)
	}
	if got := center.Lines().Len(); got != 4 {
		t.Fatalf("center lines = %d, want 4", got)
	}
}

func TestIndexAbsentMarkers(t *testing.T) {
	card := gridCard(t)
	for _, m := range []Marker{5, 14, 20, 74} {
		if _, ok := card.Index(m); ok {
			t.Fatalf("marker %s unexpectedly on card", m)
		}
	}
}

func TestDenseIndexStableAcrossGames(t *testing.T) {
	card := NewRandomCard(random.New(random.SeedFromUint64(21)))
	before := make(map[Marker]int)
	for m := range Marker(NumMarkers) {
		if index, ok := card.Index(m); ok {
			before[m] = index
		}
	}
	if len(before) != NumSquares {
		t.Fatalf("indexed markers = %d, want %d", len(before), NumSquares)
	}

	src := random.New(random.SeedFromUint64(22))
	for range 50 {
		card.Play(src)
	}

	for m, want := range before {
		if got, ok := card.Index(m); !ok || got != want {
			t.Fatalf("marker %s index = %d,%v, want %d", m, got, ok, want)
		}
	}
}

func TestMarkerString(t *testing.T) {
	tests := []struct {
		marker Marker
		want   string
	}{
		{marker: 0, want: "B01"},
		{marker: 14, want: "B15"},
		{marker: 15, want: "I16"},
		{marker: 44, want: "N45"},
		{marker: 59, want: "G60"},
		{marker: 74, want: "O75"},
		{marker: 80, want: "?81"},
	}
	for _, tt := range tests {
		if got := tt.marker.String(); got != tt.want {
			t.Errorf("marker %d = %q, want %q", tt.marker, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	want := "B01 I16 N31 G46 O61\n" +
		"B02 I17 N32 G47 O62\n" +
		"B03 I18 N33 G48 O63\n" +
		"B04 I19 N34 G49 O64\n" +
		"B05 I20 N35 G50 O65\n"
	if got := gridCard(t).String(); got != want {
		t.Fatalf("card =\n%s\nwant\n%s", got, want)
	}
}

func mustIndex(t *testing.T, card *Card, m Marker) int {
	t.Helper()
	index, ok := card.Index(m)
	if !ok {
		t.Fatalf("marker %s not on card", m)
	}
	return index
}
