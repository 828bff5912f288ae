// Package report renders simulation statistics for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/bingosim/internal/bingo"
	"github.com/louisbranch/bingosim/internal/sim"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// NewPrinter returns a number-formatting printer for locale.
func NewPrinter(locale string) (*message.Printer, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return message.NewPrinter(tag), nil
}

// Write prints one line per row, column and diagonal with its win count,
// the per-class totals, the overall total and the mean game length.
func Write(w io.Writer, p *message.Printer, stats sim.Stats) error {
	rw := &reportWriter{w: w, p: p}
	for i, c := range stats.Rows {
		rw.printf("%s: %d\n", bingo.RowLine(i), c)
	}
	rw.printf("row total: %d\n", stats.RowTotal())
	for i, c := range stats.Cols {
		rw.printf("%s: %d\n", bingo.ColumnLine(i), c)
	}
	rw.printf("col total: %d\n", stats.ColTotal())
	rw.printf("%s: %d\n", bingo.DiagonalLine(bingo.MainDiagonal), stats.Diags[bingo.MainDiagonal])
	rw.printf("%s: %d\n", bingo.DiagonalLine(bingo.AntiDiagonal), stats.Diags[bingo.AntiDiagonal])
	rw.printf("total: %d\n", stats.Total())
	rw.printf("avg draws: %.2f\n", stats.AvgDraws())
	return rw.err
}

// reportWriter keeps the first write error so Write can stay linear.
type reportWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = rw.p.Fprintf(rw.w, format, args...)
}
