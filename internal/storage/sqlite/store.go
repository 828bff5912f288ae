// Package sqlite provides a SQLite-backed run ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/bingosim/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/bingosim/internal/storage"
	"github.com/louisbranch/bingosim/internal/storage/sqlite/migrations"
)

const runColumns = `id, created_at, games, workers, seed, mode,
	row_0, row_1, row_2, row_3, row_4,
	col_0, col_1, col_2, col_3, col_4,
	main_diag, anti_diag, draws`

// Store persists run records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.RunStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite run ledger and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun inserts one run. A missing ID is filled with a new UUID and a
// zero CreatedAt with the current time.
func (s *Store) RecordRun(ctx context.Context, run storage.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if run.Games == 0 {
		return fmt.Errorf("games must be greater than zero")
	}
	id := strings.TrimSpace(run.ID)
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO runs (`+runColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		toMillis(createdAt),
		int64(run.Games),
		run.Workers,
		run.Seed,
		run.Mode,
		int64(run.Rows[0]), int64(run.Rows[1]), int64(run.Rows[2]), int64(run.Rows[3]), int64(run.Rows[4]),
		int64(run.Cols[0]), int64(run.Cols[1]), int64(run.Cols[2]), int64(run.Cols[3]), int64(run.Cols[4]),
		int64(run.Diags[0]),
		int64(run.Diags[1]),
		int64(run.Draws),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// GetRun returns one run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (storage.Run, error) {
	if err := ctx.Err(); err != nil {
		return storage.Run{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Run{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Run{}, fmt.Errorf("run id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Run{}, storage.ErrNotFound
		}
		return storage.Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]storage.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []storage.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (storage.Run, error) {
	var run storage.Run
	var createdAt int64
	var games, mainDiag, antiDiag, draws int64
	var rows, cols [5]int64
	err := sc.Scan(
		&run.ID,
		&createdAt,
		&games,
		&run.Workers,
		&run.Seed,
		&run.Mode,
		&rows[0], &rows[1], &rows[2], &rows[3], &rows[4],
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4],
		&mainDiag,
		&antiDiag,
		&draws,
	)
	if err != nil {
		return storage.Run{}, err
	}
	run.CreatedAt = fromMillis(createdAt)
	run.Games = uint64(games)
	for i := range rows {
		run.Rows[i] = uint64(rows[i])
		run.Cols[i] = uint64(cols[i])
	}
	run.Diags = [2]uint64{uint64(mainDiag), uint64(antiDiag)}
	run.Draws = uint64(draws)
	return run, nil
}
