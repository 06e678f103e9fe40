package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// Initialize is the interface for the repository initializer.
type Initialize interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		credentials entities.Credentials,
		workDir entities.WorkingDirectory,
	) (entities.CloneSummary, error)
}

// InitializeCommand wipes the working directory and clones the remote into it.
type InitializeCommand struct {
	processRepository   repositories.ProcessRepository
	workspaceRepository repositories.WorkspaceRepository
	inspectorRepository repositories.CloneInspectorRepository
}

// NewInitializeCommand creates a new InitializeCommand.
func NewInitializeCommand(
	processRepository repositories.ProcessRepository,
	workspaceRepository repositories.WorkspaceRepository,
	inspectorRepository repositories.CloneInspectorRepository,
) *InitializeCommand {
	return &InitializeCommand{
		processRepository:   processRepository,
		workspaceRepository: workspaceRepository,
		inspectorRepository: inspectorRepository,
	}
}

// Execute removes any previous clone and runs git clone with the authenticated URL.
func (it *InitializeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	credentials entities.Credentials,
	workDir entities.WorkingDirectory,
) (entities.CloneSummary, error) {
	repo := entities.ParseRepository(credentials.RepositoryURL)

	cloneURL, err := settings.CredentialMode.CloneURL(credentials)
	if err != nil {
		return entities.CloneSummary{}, fmt.Errorf("invalid repository URL: %w", err)
	}

	if settings.CredentialMode == entities.CredentialModeHelper {
		if versionErr := it.checkHelperSupport(ctx, settings); versionErr != nil {
			return entities.CloneSummary{}, versionErr
		}
	}

	it.clean(workDir)

	logger.WithFields(logger.Fields{
		"provider":   repo.ProviderName,
		"repository": entities.FullName(repo),
		"mode":       settings.CredentialMode,
	}).Info("Cloning repo with access token...")

	env := settings.CredentialMode.Env(credentials, repo)
	if runErr := it.processRepository.Run(
		ctx, "", env, settings.GitBinary, "clone", cloneURL, workDir.Path,
	); runErr != nil {
		return entities.CloneSummary{}, runErr
	}

	summary, inspectErr := it.inspectorRepository.Inspect(workDir.Path)
	if inspectErr != nil {
		logger.Warnf("Cloned into %s but could not inspect it: %v", workDir.Path, inspectErr)
		return summary, nil
	}

	logger.Infof(
		"Cloned %s into %s (branch %q at %s)",
		summary.Remote, workDir.Path, summary.Branch, summary.ShortHead(),
	)
	return summary, nil
}

// checkHelperSupport refuses helper mode on a git too old to read the inline
// credential helper from the environment. An unreadable version only warns.
func (it *InitializeCommand) checkHelperSupport(ctx context.Context, settings *entities.Settings) error {
	output, err := it.processRepository.Output(ctx, settings.GitBinary, "--version")
	if err != nil {
		return err
	}

	version, err := entities.ParseGitVersion(output)
	if err != nil {
		logger.Warnf("Could not check git version: %v", err)
		return nil
	}
	if !entities.SupportsConfigEnv(version) {
		return fmt.Errorf(
			"credential_mode %q needs git %s or newer, found %s",
			entities.CredentialModeHelper, entities.MinHelperGitVersion, version,
		)
	}
	logger.Debugf("git %s supports the inline credential helper", version)
	return nil
}

// clean deletes the previous clone. Entries that resist deletion are logged
// and left for git clone to trip over.
func (it *InitializeCommand) clean(workDir entities.WorkingDirectory) {
	failures, err := it.workspaceRepository.RemoveAll(workDir.Path)
	if err != nil {
		logger.Warnf("Failed to clean %s: %v", workDir.Path, err)
		return
	}
	for _, failure := range failures {
		logger.Warnf("Failed to delete %s", failure)
	}
}
