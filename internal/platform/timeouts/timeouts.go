// Package timeouts defines shared timeout constants used by commands.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to
// flush before exiting.
const TelemetryShutdown = 5 * time.Second

// LedgerWrite caps the time allowed to record one run in the ledger.
const LedgerWrite = 5 * time.Second
