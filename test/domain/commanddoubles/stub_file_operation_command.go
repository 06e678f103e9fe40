//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// FileOperationResult is one scripted return value of StubFileOperationCommand.
type FileOperationResult struct {
	Outcome entities.OperationOutcome
	Err     error
}

// StubFileOperationCommand is a stub implementation of commands.FileOperation.
// Results is consumed one entry per call; once empty every call reports OutcomePushed.
type StubFileOperationCommand struct {
	Results    []FileOperationResult
	Operations []entities.FileOperation
	LastCreds  entities.Credentials
}

var _ commands.FileOperation = (*StubFileOperationCommand)(nil)

func (s *StubFileOperationCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	_ entities.WorkingDirectory,
	credentials entities.Credentials,
	operation entities.FileOperation,
) (entities.OperationOutcome, error) {
	s.Operations = append(s.Operations, operation)
	s.LastCreds = credentials

	if len(s.Results) == 0 {
		return entities.OutcomePushed, nil
	}
	result := s.Results[0]
	s.Results = s.Results[1:]
	return result.Outcome, result.Err
}
