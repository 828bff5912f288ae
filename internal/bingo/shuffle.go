package bingo

import "github.com/louisbranch/bingosim/internal/random"

// Shuffle fills dst with a uniformly random permutation of
// [start, start+len(dst)) using the inside-out Fisher-Yates shuffle.
//
// After step i, dst[:i+1] is a uniform permutation of start..start+i.
// Exactly one value is drawn from src per element, and dst needs no
// initialisation.
func Shuffle(src random.Source, dst []Marker, start Marker) {
	for i := range dst {
		j := src.IntN(i + 1)
		dst[i] = dst[j]
		dst[j] = start + Marker(i)
	}
}
