package store

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"nucore/internal/domain"
)

// RunFileName is the file name of a persisted depletion run.
const RunFileName = "input_data.yaml"

// RunFileStore files depletion runs as <dir>/<fingerprint>/input_data.yaml.
type RunFileStore struct {
	docs *FileStore
}

// NewRunFileStore returns a RunFileStore writing through docs.
func NewRunFileStore(docs *FileStore) *RunFileStore {
	return &RunFileStore{docs: docs}
}

// Compile-time assertion that RunFileStore implements domain.DepletionRunStore.
var _ domain.DepletionRunStore = (*RunFileStore)(nil)

// SaveRun writes run under dir and returns the file path.
func (s *RunFileStore) SaveRun(dir string, run domain.DepletionRun) (string, error) {
	fp, err := Fingerprint(run)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fp, RunFileName)
	if err := s.docs.Save(path, run); err != nil {
		return "", err
	}
	return path, nil
}

// LoadRuns loads every input_data.yaml below root, in lexical path order.
func (s *RunFileStore) LoadRuns(root string) ([]domain.DepletionRun, error) {
	var paths []string
	err := filepath.WalkDir(s.docs.resolve(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == RunFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	runs := make([]domain.DepletionRun, 0, len(paths))
	for _, p := range paths {
		var run domain.DepletionRun
		if err := s.docs.load(p, &run); err != nil {
			return nil, err
		}
		if run.Name == "" {
			run.Name = filepath.Base(filepath.Dir(p))
		}
		runs = append(runs, run)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no %s found below %s", RunFileName, root)
	}
	return runs, nil
}
