//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// SpyWorkspaceRepository implements repositories.WorkspaceRepository in memory.
type SpyWorkspaceRepository struct {
	// Files maps a path to its content.
	Files map[string]string

	// --- RemoveAll ---
	RemoveFailures []entities.DeleteFailure
	RemoveErr      error
	// spy: paths requested for removal
	RemovedPaths []string

	// --- WriteFile ---
	WriteErr error
	// spy: number of writes performed
	WriteCount int
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

// NewSpyWorkspaceRepository creates a spy seeded with the given files.
func NewSpyWorkspaceRepository(files map[string]string) *SpyWorkspaceRepository {
	if files == nil {
		files = map[string]string{}
	}
	return &SpyWorkspaceRepository{Files: files}
}

func (s *SpyWorkspaceRepository) Exists(path string) (bool, error) {
	_, ok := s.Files[path]
	return ok, nil
}

func (s *SpyWorkspaceRepository) ReadFile(path string) (string, error) {
	content, ok := s.Files[path]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (s *SpyWorkspaceRepository) WriteFile(path, content string) error {
	s.WriteCount++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Files[path] = content
	return nil
}

func (s *SpyWorkspaceRepository) RemoveAll(path string) ([]entities.DeleteFailure, error) {
	s.RemovedPaths = append(s.RemovedPaths, path)
	if s.RemoveErr != nil {
		return nil, s.RemoveErr
	}
	for name := range s.Files {
		if name == path || strings.HasPrefix(name, path+"/") {
			delete(s.Files, name)
		}
	}
	return s.RemoveFailures, nil
}
