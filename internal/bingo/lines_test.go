package bingo

import (
	"slices"
	"testing"
)

func TestLineSetAll(t *testing.T) {
	s := LineSetOf(DiagonalLine(AntiDiagonal), RowLine(3), ColumnLine(1))

	var got []Line
	for l := range s.All() {
		got = append(got, l)
	}
	want := []Line{ColumnLine(1), RowLine(3), DiagonalLine(AntiDiagonal)}
	if !slices.Equal(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if s.Has(RowLine(1)) {
		t.Fatal("unexpected row 1")
	}
	if got, want := s.String(), "[col 1, row 3, anti diag]"; got != want {
		t.Fatalf("string = %q, want %q", got, want)
	}
}

func TestLineFieldsRoundTrip(t *testing.T) {
	seen := make(map[Line]bool)
	for field := range NumLines {
		l := lineAt(field)
		if l.field() != field {
			t.Fatalf("%s field = %d, want %d", l, l.field(), field)
		}
		seen[l] = true
	}
	if len(seen) != NumLines {
		t.Fatalf("distinct lines = %d, want %d", len(seen), NumLines)
	}
}
