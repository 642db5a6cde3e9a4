package interfaces

import domaintypes "nucore/internal/domain/types"

// DocumentStore persists whole objects, one per file.
type DocumentStore interface {
	Save(path string, v any) error
	Load(path string, v any) error
}

// DepletionRunStore finds and loads persisted depletion results.
type DepletionRunStore interface {
	SaveRun(dir string, run domaintypes.DepletionRun) (string, error)
	LoadRuns(root string) ([]domaintypes.DepletionRun, error)
}
