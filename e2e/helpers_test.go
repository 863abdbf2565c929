package e2e_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestEnv encapsulates a temporary isolated environment for a single test.
type TestEnv struct {
	Home string // temp HOME directory (~/.gearshift lives here)
	T    *testing.T
}

// newTestEnv creates a test environment with an empty temp HOME so each
// test gets its own ~/.gearshift.
func newTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{Home: t.TempDir(), T: t}
}

// run executes the compiled gearshift binary with the given arguments.
func (e *TestEnv) run(args ...string) (stdout, stderr string, exitCode int) {
	e.T.Helper()

	cmd := exec.Command(gearshiftBin, args...)
	cmd.Env = []string{
		"HOME=" + e.Home,
		"PATH=" + os.Getenv("PATH"),
		"USER=" + os.Getenv("USER"),
	}

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()

	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			// Non-exit error (e.g. binary not found)
			exitCode = -1
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}
