package bingo

import "math/bits"

const lowMarkers = 64

// The markers above 63 must fit in the high word.
const _ uint = 16 - (NumMarkers - lowMarkers)

// markerSet records which markers are on a card. Markers 0..63 live in
// low, 64..74 in high.
type markerSet struct {
	low  uint64
	high uint16
}

func (s *markerSet) set(m Marker) {
	if m < lowMarkers {
		s.low |= 1 << m
		return
	}
	s.high |= 1 << (m - lowMarkers)
}

func (s *markerSet) has(m Marker) bool {
	_, ok := s.index(m)
	return ok
}

func (s *markerSet) len() int {
	return bits.OnesCount64(s.low) + bits.OnesCount16(s.high)
}

// index returns the dense index of m: the number of members below it. ok
// is false when m is not a member.
func (s *markerSet) index(m Marker) (int, bool) {
	if m < lowMarkers {
		bit := uint64(1) << m
		if s.low&bit == 0 {
			return 0, false
		}
		return bits.OnesCount64(s.low & (bit - 1)), true
	}
	bit := uint16(1) << (m - lowMarkers)
	if s.high&bit == 0 {
		return 0, false
	}
	return bits.OnesCount64(s.low) + bits.OnesCount16(s.high&(bit-1)), true
}
