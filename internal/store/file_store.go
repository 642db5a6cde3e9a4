package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"nucore/internal/domain"
	"nucore/internal/logging"
)

const fileMode = 0o644

// FileStore saves and loads whole documents under a root directory.
// Relative paths are resolved against the root.
type FileStore struct {
	root string
	log  logr.Logger
	mu   sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir, log: logging.Log()}
}

// Compile-time assertion that FileStore implements domain.DocumentStore.
var _ domain.DocumentStore = (*FileStore)(nil)

// ValidatePath checks that path names a YAML or JSON document.
func ValidatePath(path string) error {
	switch filepath.Ext(path) {
	case ".yaml", ".json":
		return nil
	}
	return fmt.Errorf("file_path ('%s') must end with '.yaml' or '.json'", path)
}

func (s *FileStore) resolve(path string) string {
	if filepath.IsAbs(path) || s.root == "" {
		return path
	}
	return filepath.Join(s.root, path)
}

// Save writes v to path, replacing any existing file.
func (s *FileStore) Save(path string, v any) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	full := s.resolve(path)
	s.log.V(logging.DEBUG).Info("Saving document", "type", fmt.Sprintf("%T", v), "path", full)
	if strings.HasSuffix(full, ".json") {
		return writeJSON(full, v, fileMode)
	}
	return writeYAML(full, v, fileMode)
}

// Load reads the document at path into v. A missing file is an error.
func (s *FileStore) Load(path string, v any) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	return s.load(s.resolve(path), v)
}

func (s *FileStore) load(full string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.V(logging.DEBUG).Info("Loading document", "type", fmt.Sprintf("%T", v), "path", full)
	var err error
	if strings.HasSuffix(full, ".json") {
		err = readJSON(full, v)
	} else {
		err = readYAML(full, v)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", full, err)
	}
	return nil
}
