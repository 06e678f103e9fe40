package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// FilesystemWorkspaceRepository works on the local disk.
type FilesystemWorkspaceRepository struct{}

// NewFilesystemWorkspaceRepository creates a new FilesystemWorkspaceRepository.
func NewFilesystemWorkspaceRepository() *FilesystemWorkspaceRepository {
	return &FilesystemWorkspaceRepository{}
}

var _ repositories.WorkspaceRepository = (*FilesystemWorkspaceRepository)(nil)

func (it *FilesystemWorkspaceRepository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

func (it *FilesystemWorkspaceRepository) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (it *FilesystemWorkspaceRepository) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("failed to create parent of %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RemoveAll walks path, then deletes the entries deepest first so children go
// before their parents. A failed entry does not stop the others; its parent
// directories will then fail too, since they are not empty.
func (it *FilesystemWorkspaceRepository) RemoveAll(path string) ([]entities.DeleteFailure, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var entries []string
	walkErr := filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory, already listed: its removal is attempted and reported below.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, walkErr)
	}

	// A path sorts after its prefix, so reverse order puts children before parents.
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))

	var failures []entities.DeleteFailure
	for _, entry := range entries {
		if err := os.Remove(entry); err != nil && !errors.Is(err, fs.ErrNotExist) {
			failures = append(failures, entities.DeleteFailure{Path: entry, Err: err})
		}
	}
	return failures, nil
}
