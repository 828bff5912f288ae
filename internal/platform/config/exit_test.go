package config_test

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/bingosim/internal/platform/config"
)

// os.Exit cannot be intercepted in-process, so these run the test binary
// again as a subprocess.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	out := runExitSubprocess(t, "^TestExitf_ExitsWithCode1$", "TEST_EXITF_SUBPROCESS=1")
	if !strings.Contains(out, "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", out)
	}
}

func TestExitUsage_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITUSAGE_SUBPROCESS") == "1" {
		config.ExitUsage("bingo", "<ngames>")
		return
	}

	out := runExitSubprocess(t, "^TestExitUsage_ExitsWithCode1$", "TEST_EXITUSAGE_SUBPROCESS=1")
	if !strings.Contains(out, "bingo: usage: bingo <ngames>") {
		t.Fatalf("expected usage line, got %q", out)
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	config.Usage(&buf, "bingo", "[flags] <ngames>")
	if got, want := buf.String(), "bingo: usage: bingo [flags] <ngames>\n"; got != want {
		t.Fatalf("usage = %q, want %q", got, want)
	}
}

func runExitSubprocess(t *testing.T, run, env string) string {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run="+run)
	cmd.Env = append(os.Environ(), env)

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	return string(out)
}
