// Package bingo parses simulator command flags and runs the simulation.
package bingo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	entrypoint "github.com/louisbranch/bingosim/internal/platform/cmd"
	"github.com/louisbranch/bingosim/internal/platform/timeouts"
	"github.com/louisbranch/bingosim/internal/random"
	"github.com/louisbranch/bingosim/internal/report"
	"github.com/louisbranch/bingosim/internal/sim"
	"github.com/louisbranch/bingosim/internal/storage"
	"github.com/louisbranch/bingosim/internal/storage/sqlite"
)

// Synopsis is the argument summary printed in the usage line.
const Synopsis = "[flags] <ngames>"

// ErrUsage indicates the command line could not be understood.
var ErrUsage = errors.New("usage")

// Config holds simulator command configuration.
type Config struct {
	Games      int
	Workers    int    `env:"BINGO_WORKERS" envDefault:"1"`
	Seed       uint64 `env:"BINGO_SEED"`
	Recard     bool   `env:"BINGO_RECARD"`
	Locale     string `env:"BINGO_LOCALE" envDefault:"en-US"`
	LedgerPath string `env:"BINGO_LEDGER_PATH"`
	Verbose    bool   `env:"BINGO_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config. The single
// positional argument is the number of games and must be a positive integer.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of batches played in parallel")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible runs (0 = random)")
	fs.BoolVar(&cfg.Recard, "recard", cfg.Recard, "Deal a new card for every game")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale used to format report numbers")
	fs.StringVar(&cfg.LedgerPath, "ledger", cfg.LedgerPath, "SQLite path where run totals are recorded (empty = disabled)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log the card and every game to stderr")
	// Flag errors come back as ErrUsage; the caller prints the usage line.
	fs.Init(entrypoint.ServiceBingo, flag.ContinueOnError)
	fs.Usage = fs.PrintDefaults
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		return Config{}, fmt.Errorf("%w: expected one game count, got %d arguments", ErrUsage, fs.NArg())
	}
	games, err := strconv.Atoi(fs.Arg(0))
	if err != nil || games <= 0 {
		return Config{}, fmt.Errorf("%w: game count %q is not a positive integer", ErrUsage, fs.Arg(0))
	}
	if cfg.Workers <= 0 {
		return Config{}, fmt.Errorf("%w: workers must be positive", ErrUsage)
	}
	cfg.Games = games
	return cfg, nil
}

// Run plays the configured games, writes the report to out and, when a
// ledger is configured, records the run totals. Diagnostics go to errOut.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	logger := log.New(errOut, "", 0)
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceBingo, options, func(ctx context.Context) error {
		return run(ctx, cfg, out, logger)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	printer, err := report.NewPrinter(cfg.Locale)
	if err != nil {
		return err
	}
	seed, err := resolveSeed(cfg.Seed)
	if err != nil {
		return err
	}

	var store storage.RunStore
	if cfg.LedgerPath != "" {
		ledger, err := sqlite.Open(cfg.LedgerPath)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				logger.Printf("close ledger: %v", err)
			}
		}()
		store = ledger
	}

	simCfg := sim.Config{
		Games:   cfg.Games,
		Workers: cfg.Workers,
		Mode:    sim.ReuseCard,
		Seed:    seed,
	}
	if cfg.Recard {
		simCfg.Mode = sim.NewCardPerGame
	}
	if cfg.Verbose {
		simCfg.Logger = logger
		logger.Printf("seed %s, %d workers, %s mode", seed, cfg.Workers, simCfg.Mode)
	}

	start := time.Now()
	stats, err := sim.Run(ctx, simCfg)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	elapsed := time.Since(start)

	if err := report.Write(out, printer, stats); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.Verbose {
		logger.Printf("played %s games in %s (%s games/s)",
			humanize.Comma(int64(stats.Games)),
			elapsed.Round(time.Millisecond),
			humanize.CommafWithDigits(float64(stats.Games)/max(elapsed.Seconds(), 1e-9), 0),
		)
	}

	if store == nil {
		return nil
	}
	record := newRunRecord(stats, min(cfg.Workers, cfg.Games), seed, simCfg.Mode)
	recordCtx, cancel := context.WithTimeout(ctx, timeouts.LedgerWrite)
	defer cancel()
	if err := store.RecordRun(recordCtx, record); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if cfg.Verbose {
		logger.Printf("recorded run %s", record.ID)
	}
	return nil
}

func resolveSeed(value uint64) (random.Seed, error) {
	if value != 0 {
		return random.SeedFromUint64(value), nil
	}
	return random.NewSeed()
}

func newRunRecord(stats sim.Stats, workers int, seed random.Seed, mode sim.CardMode) storage.Run {
	return storage.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Games:     stats.Games,
		Workers:   workers,
		Seed:      seed.String(),
		Mode:      mode.String(),
		Rows:      stats.Rows,
		Cols:      stats.Cols,
		Diags:     stats.Diags,
		Draws:     stats.Draws,
	}
}
