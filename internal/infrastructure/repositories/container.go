package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/repoeditor/internal/domain/repositories"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/repositories/gitinspect"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/repositories/process"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ProcessRepository {
		return process.NewExecProcessRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.WorkspaceRepository {
		return workspace.NewFilesystemWorkspaceRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.PromptRepository {
		return console.NewConsolePromptRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.CloneInspectorRepository {
		return gitinspect.NewGoGitInspectorRepository()
	}); err != nil {
		return err
	}

	return nil
}
