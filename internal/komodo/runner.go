package komodo

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"nucore/internal/domain"
	"nucore/internal/logging"
)

// Runner runs the solver executable as "<Executable> <input>".
type Runner struct {
	Executable string
	Log        logr.Logger
}

var _ domain.SolverRunner = (*Runner)(nil)

// NewRunner returns a Runner for exe, logging through the process logger.
func NewRunner(exe string) *Runner {
	return &Runner{Executable: exe, Log: logging.Log()}
}

// Run blocks until the solver exits. The run fails with a *SolverError when
// the process exits non-zero, writes anything to stderr, or does not print
// ExitMarker.
func (r *Runner) Run(ctx context.Context, inputPath string) (domain.RawOutput, error) {
	out := domain.RawOutput{InputPath: inputPath, OutputPath: OutputPath(inputPath)}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Executable, inputPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Log.Info("Running solver", "executable", r.Executable, "input", inputPath)
	start := time.Now()
	err := cmd.Run()
	out.Stdout, out.Stderr = stdout.String(), stderr.String()
	r.Log.V(logging.DEBUG).Info("Solver finished", "input", inputPath, "elapsed", time.Since(start))

	var exitErr *exec.ExitError
	switch {
	case err != nil && !errors.As(err, &exitErr):
		return out, &SolverError{Reason: "could not run " + r.Executable, Output: out, Err: err}
	case out.Stderr != "":
		return out, &SolverError{Reason: "solver wrote to stderr", Output: out, Err: err}
	case err != nil:
		return out, &SolverError{Reason: "solver exited abnormally", Output: out, Err: err}
	case !strings.Contains(out.Stdout, ExitMarker):
		return out, &SolverError{Reason: "solver did not exit properly", Output: out}
	}
	return out, nil
}
