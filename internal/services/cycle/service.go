package cycle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"nucore/internal/coremap"
	"nucore/internal/domain"
	"nucore/internal/komodo"
	"nucore/internal/logging"
)

// Service builds, runs and parses solver inputs.
type Service struct {
	coreDir string
	iter    domain.IterationControl
	runner  domain.SolverRunner
	parser  domain.PowerMapParser
	log     logr.Logger
}

func New(coreDir string, iter domain.IterationControl, runner domain.SolverRunner, parser domain.PowerMapParser) *Service {
	return &Service{
		coreDir: coreDir,
		iter:    iter,
		runner:  runner,
		parser:  parser,
		log:     logging.Log(),
	}
}

// Compile-time assertion that Service implements domain.CycleService.
var _ domain.CycleService = (*Service)(nil)

// Input returns the card text of case c.
func (s *Service) Input(geom domain.CoreGeometry, xsecPath string, c domain.Case) (string, error) {
	if err := geom.Validate(); err != nil {
		return "", err
	}
	b := komodo.NewBuilder()
	b.SetMode(komodo.ModeForward)
	if err := b.SetCase(c.Name, c.Description()); err != nil {
		return "", err
	}
	b.SetXSecFile(xsecPath)

	fuel := coremap.FromCore(geom.Core, 1)
	maps := make([]*coremap.Map[int], geom.AxialNodes)
	for k := range maps {
		maps[k] = fuel
	}
	if err := b.SetGeom(geom, maps, komodo.SymmetryFull); err != nil {
		return "", err
	}
	b.SetIter(s.iter)
	b.SetOutp()
	return b.Build(), nil
}

// InputPath is where the input of case c is written.
func (s *Service) InputPath(c domain.Case) string {
	return filepath.Join(s.coreDir, c.Name, c.FileName())
}

// VoidIteration writes the input of case c and returns its path.
func (s *Service) VoidIteration(geom domain.CoreGeometry, xsecPath string, c domain.Case) (string, error) {
	text, err := s.Input(geom, xsecPath, c)
	if err != nil {
		return "", err
	}
	path := s.InputPath(c)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	s.log.V(logging.DEBUG).Info("Wrote solver input", "case", c.Name, "step", c.Step, "iteration", c.Iteration, "path", path)
	return path, nil
}

// Run writes the input of case c, runs the solver on it and parses the 3D
// power output into one grid per axial layer.
func (s *Service) Run(ctx context.Context, geom domain.CoreGeometry, xsecPath string, c domain.Case) ([]*mat.Dense, error) {
	path, err := s.VoidIteration(geom, xsecPath, c)
	if err != nil {
		return nil, err
	}
	out, err := s.runner.Run(ctx, path)
	if err != nil {
		return nil, err
	}
	layers, err := s.parser.ParsePowerMapFile(out.OutputPath, geom)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", c.Name, err)
	}
	if v := s.log.V(logging.DEBUG); v.Enabled() {
		v.Info("Parsed power distribution", "case", c.Name, "layerSums", LayerSums(layers))
	}
	return layers, nil
}

// LayerSums returns the total of each layer.
func LayerSums(layers []*mat.Dense) []float64 {
	out := make([]float64, len(layers))
	for k, l := range layers {
		r, c := l.Dims()
		row := make([]float64, c)
		for i := 0; i < r; i++ {
			mat.Row(row, i, l)
			out[k] += floats.Sum(row)
		}
	}
	return out
}
