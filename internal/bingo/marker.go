// Package bingo implements 75-ball bingo cards and a win detector that
// finds the first completed row, column or diagonal in constant time per
// drawn marker.
package bingo

import "fmt"

const (
	// CardSize is the width and height of a card.
	CardSize = 5
	// MarkerRows is the number of marker values available to each column.
	MarkerRows = 15
	// NumMarkers is the size of the draw pool.
	NumMarkers = CardSize * MarkerRows
	// NumSquares is the number of squares on a card.
	NumSquares = CardSize * CardSize
)

const columnNames = "BINGO"

// Marker is a drawable value, 0 through NumMarkers-1. Column c of a card
// only holds markers in [c*MarkerRows, (c+1)*MarkerRows).
type Marker uint8

// Column returns the card column a marker belongs to.
func (m Marker) Column() int {
	return int(m) / MarkerRows
}

// String returns the printed label of the marker, numbered from 1 as on a
// real card: B01 through O75.
func (m Marker) String() string {
	if int(m) >= NumMarkers {
		return fmt.Sprintf("?%02d", int(m)+1)
	}
	return fmt.Sprintf("%c%02d", columnNames[m.Column()], int(m)+1)
}
