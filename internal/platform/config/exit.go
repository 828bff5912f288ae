package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Usage writes the one-line usage message for a command to w.
func Usage(w io.Writer, name, synopsis string) {
	fmt.Fprintf(w, "%s: usage: %s %s\n", name, name, synopsis)
}

// ExitUsage writes the usage message to stderr and exits with code 1.
func ExitUsage(name, synopsis string) {
	Usage(os.Stderr, name, synopsis)
	os.Exit(1)
}
