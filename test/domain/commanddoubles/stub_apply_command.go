//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// StubApplyCommand is a stub implementation of commands.Apply.
type StubApplyCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ApplyOptions
}

var _ commands.Apply = (*StubApplyCommand)(nil)

func (s *StubApplyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ApplyOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
