//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// ProcessCall records a single invocation of Run.
type ProcessCall struct {
	Dir     string
	Env     map[string]string
	Command []string
}

// SpyProcessRepository implements repositories.ProcessRepository as a configurable spy.
type SpyProcessRepository struct {
	// --- Run ---
	// FailOn makes Run fail with a CommandFailure when the subcommand
	// (the second word, e.g. "push") matches.
	FailOn       string
	FailExitCode int
	// spy: calls received
	Calls []ProcessCall

	// --- Output ---
	// OutputText is returned by Output; empty means "git version 2.43.0".
	OutputText string
	OutputErr  error
	// spy: commands received by Output
	OutputCalls [][]string
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (s *SpyProcessRepository) Run(
	_ context.Context,
	dir string,
	env map[string]string,
	command ...string,
) error {
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Env: env, Command: command})
	if s.FailOn != "" && len(command) > 1 && command[1] == s.FailOn {
		exitCode := s.FailExitCode
		if exitCode == 0 {
			exitCode = 1
		}
		return entities.NewCommandFailure(command, exitCode, nil)
	}
	return nil
}

func (s *SpyProcessRepository) Output(_ context.Context, command ...string) (string, error) {
	s.OutputCalls = append(s.OutputCalls, command)
	if s.OutputErr != nil {
		return "", s.OutputErr
	}
	if s.OutputText == "" {
		return "git version 2.43.0\n", nil
	}
	return s.OutputText, nil
}

// Subcommands returns the git subcommand of every call, in order.
func (s *SpyProcessRepository) Subcommands() []string {
	subcommands := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		if len(call.Command) > 1 {
			subcommands = append(subcommands, call.Command[1])
		}
	}
	return subcommands
}
