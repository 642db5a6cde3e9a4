package xseclib

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-logr/logr"

	"nucore/internal/domain"
	"nucore/internal/komodo"
	"nucore/internal/logging"
)

// LibraryFileName is the file written by Build.
const LibraryFileName = "komodo_XSEC.txt"

// Service builds cross-section libraries.
type Service struct {
	runs domain.DepletionRunStore
	opts komodo.LibraryOptions
	log  logr.Logger
}

func New(runs domain.DepletionRunStore, opts komodo.LibraryOptions) *Service {
	log := logging.Log()
	if opts.Log.GetSink() == nil {
		opts.Log = log
	}
	return &Service{runs: runs, opts: opts, log: log}
}

// Compile-time assertion that Service implements domain.XSecLibraryService.
var _ domain.XSecLibraryService = (*Service)(nil)

// SortRuns orders runs by void fraction, then power.
func SortRuns(runs []domain.DepletionRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].VoidFraction != runs[j].VoidFraction {
			return runs[i].VoidFraction < runs[j].VoidFraction
		}
		return runs[i].Power < runs[j].Power
	})
}

// Build writes the library for the runs below resultsDir into outDir and
// returns its path and material count.
func (s *Service) Build(resultsDir, outDir string) (string, int, error) {
	runs, err := s.runs.LoadRuns(resultsDir)
	if err != nil {
		return "", 0, err
	}
	SortRuns(runs)

	var buf bytes.Buffer
	n, err := komodo.WriteLibrary(&buf, runs, s.opts)
	if err != nil {
		return "", 0, err
	}
	if n == 0 {
		return "", 0, fmt.Errorf("no exposure steps at or below %g in %d runs", s.opts.BurnupLimit, len(runs))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(outDir, LibraryFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", 0, err
	}
	s.log.Info("Wrote cross-section library", "path", path, "runs", len(runs), "materials", n)
	return path, n, nil
}
