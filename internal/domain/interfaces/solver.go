package interfaces

import (
	"context"

	"gonum.org/v1/gonum/mat"

	domaintypes "nucore/internal/domain/types"
)

// SolverRunner executes the nodal solver on an input file.
type SolverRunner interface {
	Run(ctx context.Context, inputPath string) (domaintypes.RawOutput, error)
}

// PowerMapParser reads per-layer power grids from a solver output file.
type PowerMapParser interface {
	ParsePowerMapFile(path string, geom domaintypes.CoreGeometry) ([]*mat.Dense, error)
}
