// Package main runs the bingo line simulator.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	bingocmd "github.com/louisbranch/bingosim/internal/cmd/bingo"
	entrypoint "github.com/louisbranch/bingosim/internal/platform/cmd"
	"github.com/louisbranch/bingosim/internal/platform/config"
)

func main() {
	cfg, err := bingocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if errors.Is(err, bingocmd.ErrUsage) {
		config.ExitUsage(entrypoint.ServiceBingo, bingocmd.Synopsis)
	}
	if err != nil {
		config.Exitf("bingo: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bingocmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("bingo: %v", err)
	}
}
