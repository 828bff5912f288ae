package sim

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/bingosim/internal/bingo"
	"github.com/louisbranch/bingosim/internal/random"
)

var tracer = otel.Tracer("github.com/louisbranch/bingosim/internal/sim")

// cancelCheckInterval is how many games a batch plays between context checks.
const cancelCheckInterval = 4096

var (
	// ErrNoGames indicates a run with no games to play.
	ErrNoGames = errors.New("games must be positive")
	// ErrMissingSeed indicates a run without seed material.
	ErrMissingSeed = errors.New("seed is required")
)

// CardMode selects whether games share a card.
type CardMode int

const (
	// ReuseCard deals one card and plays every game on it.
	ReuseCard CardMode = iota
	// NewCardPerGame deals a fresh card for every game.
	NewCardPerGame
)

func (m CardMode) String() string {
	switch m {
	case ReuseCard:
		return "reuse"
	case NewCardPerGame:
		return "recard"
	default:
		return "unknown"
	}
}

// Config describes one simulation run.
type Config struct {
	Games   int
	Workers int
	Mode    CardMode
	Seed    random.Seed
	// Logger receives the dealt cards and every game result when set.
	Logger *log.Logger
}

// Run plays cfg.Games games split into cfg.Workers batches running in
// parallel. Every batch draws from its own stream of cfg.Seed, so a run is
// reproducible for a given seed and worker count. A failed or cancelled
// run returns no stats.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	if cfg.Games <= 0 {
		return Stats{}, ErrNoGames
	}
	if cfg.Seed.IsZero() {
		return Stats{}, ErrMissingSeed
	}
	workers := max(cfg.Workers, 1)
	workers = min(workers, cfg.Games)

	ctx, span := tracer.Start(ctx, "sim.Run", trace.WithAttributes(
		attribute.Int("bingo.games", cfg.Games),
		attribute.Int("bingo.workers", workers),
		attribute.String("bingo.card_mode", cfg.Mode.String()),
	))
	defer span.End()

	var shared *bingo.Card
	if cfg.Mode == ReuseCard {
		shared = bingo.NewRandomCard(random.New(cfg.Seed))
		if cfg.Logger != nil {
			cfg.Logger.Printf("card:\n%s", shared)
		}
	}

	results := make([]Stats, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := range workers {
		b := batch{
			id:     i,
			games:  cfg.Games / workers,
			card:   shared,
			src:    random.New(random.Stream(cfg.Seed, i)),
			logger: cfg.Logger,
		}
		if i < cfg.Games%workers {
			b.games++
		}
		g.Go(func() error {
			stats, err := b.run(gctx)
			if err != nil {
				return fmt.Errorf("batch %d: %w", b.id, err)
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Stats{}, err
	}

	var total Stats
	for _, s := range results {
		total.Merge(s)
	}
	span.SetAttributes(attribute.Int64("bingo.draws", int64(total.Draws)))
	return total, nil
}

type batch struct {
	id     int
	games  int
	card   *bingo.Card
	src    random.Source
	logger *log.Logger
}

func (b batch) run(ctx context.Context) (Stats, error) {
	_, span := tracer.Start(ctx, "sim.batch", trace.WithAttributes(
		attribute.Int("bingo.batch", b.id),
		attribute.Int("bingo.games", b.games),
	))
	defer span.End()

	var stats Stats
	for n := range b.games {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				return Stats{}, err
			}
		}
		card := b.card
		if card == nil {
			card = bingo.NewRandomCard(b.src)
			if b.logger != nil {
				b.logger.Printf("batch %d game %d card:\n%s", b.id, n, card)
			}
		}
		result := card.Play(b.src)
		stats.Record(result)
		if b.logger != nil {
			b.logger.Printf("batch %d game %d: %v after %d draws", b.id, n, result.Wins, result.Draws)
		}
	}
	return stats, nil
}
