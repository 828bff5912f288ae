package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/bingosim/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("BINGO_OTEL_ENDPOINT", "")
	t.Setenv("BINGO_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "bingo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("BINGO_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("BINGO_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "bingo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidEnabledFlag(t *testing.T) {
	t.Setenv("BINGO_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("BINGO_OTEL_ENABLED", "sometimes")

	shutdown, err := otel.Setup(context.Background(), "bingo")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if shutdown == nil {
		t.Fatal("expected a usable shutdown function on error")
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export ever reaches a collector.
	t.Setenv("BINGO_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("BINGO_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "bingo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("BINGO_OTEL_ENDPOINT", "")
	t.Setenv("BINGO_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "bingo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
