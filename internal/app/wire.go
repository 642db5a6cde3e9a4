package app

import (
	"nucore/internal/domain"
	"nucore/internal/komodo"
	cyclesvc "nucore/internal/services/cycle"
	xseclibsvc "nucore/internal/services/xseclib"
	"nucore/internal/store"
)

// Wire bundles all stores, services, and solver plumbing for the CLI.
type Wire struct {
	Docs   domain.DocumentStore
	Runs   domain.DepletionRunStore
	Runner domain.SolverRunner
	Parser domain.PowerMapParser
	Cycle  *cyclesvc.Service
	XSec   domain.XSecLibraryService
}

// NewWire constructs the dependency graph from cfg. Services pick up the
// process logger at construction, so install it first.
func NewWire(cfg Config) (*Wire, error) {
	// File-based stores
	docs := store.NewFileStore(cfg.Home)
	runs := store.NewRunFileStore(docs)

	// Solver process and its output reader
	runner := komodo.NewRunner(cfg.KomodoExecutable)
	parser := komodo.Parser{}

	// High-level services
	cycleSvc := cyclesvc.New(cfg.CoreDir, cfg.Iteration, runner, parser)
	xsecSvc := xseclibsvc.New(runs, komodo.DefaultLibraryOptions())

	return &Wire{
		Docs:   docs,
		Runs:   runs,
		Runner: runner,
		Parser: parser,
		Cycle:  cycleSvc,
		XSec:   xsecSvc,
	}, nil
}
