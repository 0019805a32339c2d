// Package cmdtest runs a command's main function in a child process of its test binary,
// so tests can observe stdout, stderr and the exit status.
package cmdtest

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

const runMainVariable = "CMDTEST_RUN_MAIN"

// Main is called from TestMain. In the child process it runs main and exits 0, otherwise it runs the tests.
func Main(m *testing.M, main func()) {
	if os.Getenv(runMainVariable) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// Result holds what the child process produced.
type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// Run executes the command in dir with only the given environment entries.
func Run(t *testing.T, dir string, env ...string) Result {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Dir = dir
	cmd.Env = append([]string{runMainVariable + "=1"}, env...)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.Stdout, cmd.Stderr = stdout, stderr

	res := Result{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	res.Stdout, res.Stderr = stdout.String(), stderr.String()
	return res
}
