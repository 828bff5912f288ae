// Package storage defines persistence contracts for completed simulation runs.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested run record is missing.
var ErrNotFound = errors.New("record not found")

// Run stores the aggregate outcome of one simulation run. Individual games
// are never persisted.
type Run struct {
	ID        string
	CreatedAt time.Time
	Games     uint64
	Workers   int
	Seed      string
	Mode      string
	Rows      [5]uint64
	Cols      [5]uint64
	Diags     [2]uint64
	Draws     uint64
}

// RunStore persists run records.
type RunStore interface {
	RecordRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}
