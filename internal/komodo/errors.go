package komodo

import (
	"errors"
	"fmt"

	"nucore/internal/domain"
)

var (
	ErrUnsupportedSymmetry = errors.New("komodo: only full core symmetry is supported")
	ErrLayerCount          = errors.New("komodo: layer count mismatch")
	ErrMalformedOutput     = errors.New("komodo: malformed power output")
	ErrMalformedInput      = errors.New("komodo: malformed input")
)

// ExitMarker is printed by the solver on a successful run.
const ExitMarker = "KOMODO EXIT NORMALLY"

// SolverError reports a failed solver run together with what it printed.
type SolverError struct {
	Reason string
	Output domain.RawOutput
	Err    error
}

func (e *SolverError) Error() string {
	detail := e.Output.Stderr
	if detail == "" {
		detail = e.Output.Stdout
	}
	msg := "komodo " + e.Output.InputPath + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if detail != "" {
		msg += ":\n" + detail
	}
	return msg
}

func (e *SolverError) Unwrap() error { return e.Err }

func malformedInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

func malformedOutput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedOutput, fmt.Sprintf(format, args...))
}
