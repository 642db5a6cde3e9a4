package interfaces

import (
	"context"

	"gonum.org/v1/gonum/mat"

	domaintypes "nucore/internal/domain/types"
)

// CycleService writes, runs and parses the solver inputs of a cycle calculation.
type CycleService interface {
	VoidIteration(geom domaintypes.CoreGeometry, xsecPath string, c domaintypes.Case) (string, error)
	Run(ctx context.Context, geom domaintypes.CoreGeometry, xsecPath string, c domaintypes.Case) ([]*mat.Dense, error)
}

// XSecLibraryService assembles the cross-section library from depletion runs.
type XSecLibraryService interface {
	Build(resultsDir, outDir string) (path string, materials int, err error)
}
