//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// StubCloneInspectorRepository returns a fixed summary.
type StubCloneInspectorRepository struct {
	Summary    entities.CloneSummary
	InspectErr error
	// spy: directories inspected
	InspectedDirs []string
}

var _ repositories.CloneInspectorRepository = (*StubCloneInspectorRepository)(nil)

func (s *StubCloneInspectorRepository) Inspect(dir string) (entities.CloneSummary, error) {
	s.InspectedDirs = append(s.InspectedDirs, dir)
	return s.Summary, s.InspectErr
}
