//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// StubInitializeCommand is a stub implementation of commands.Initialize.
// ExecuteErrs is consumed one entry per call; a nil or missing entry succeeds.
type StubInitializeCommand struct {
	ExecuteCallCount int
	ExecuteErrs      []error
	LastCredentials  entities.Credentials
	LastWorkDir      entities.WorkingDirectory
}

var _ commands.Initialize = (*StubInitializeCommand)(nil)

func (s *StubInitializeCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	credentials entities.Credentials,
	workDir entities.WorkingDirectory,
) (entities.CloneSummary, error) {
	s.ExecuteCallCount++
	s.LastCredentials = credentials
	s.LastWorkDir = workDir

	var err error
	if len(s.ExecuteErrs) > 0 {
		err = s.ExecuteErrs[0]
		s.ExecuteErrs = s.ExecuteErrs[1:]
	}
	return entities.CloneSummary{Branch: "main"}, err
}
