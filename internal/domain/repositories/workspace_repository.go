package repositories

import "github.com/rios0rios0/repoeditor/internal/domain/entities"

// WorkspaceRepository is the filesystem seen by the commands.
type WorkspaceRepository interface {
	Exists(path string) (bool, error)
	ReadFile(path string) (string, error)
	// WriteFile replaces the file content, creating parent directories as needed.
	WriteFile(path, content string) error
	// RemoveAll deletes path bottom-up. Entries that cannot be removed are
	// returned instead of aborting the walk; the error is reserved for
	// failures to walk the tree at all.
	RemoveAll(path string) ([]entities.DeleteFailure, error)
}
