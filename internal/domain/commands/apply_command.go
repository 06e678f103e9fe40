package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

var (
	// ErrFileAlreadyExists is returned by the one-shot mode when add targets an existing file.
	ErrFileAlreadyExists = errors.New("file already exists, use update instead")
	// ErrFileDoesNotExist is returned by the one-shot mode when update targets a missing file.
	ErrFileDoesNotExist = errors.New("file does not exist, use add instead")
)

// Apply is the interface for the non-interactive mode.
type Apply interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ApplyOptions) error
}

// ApplyOptions holds everything the prompts would otherwise collect.
type ApplyOptions struct {
	Credentials entities.Credentials
	Operation   entities.FileOperation
}

// ApplyCommand clones once and applies a single file operation.
type ApplyCommand struct {
	initialize    Initialize
	fileOperation FileOperation
}

// NewApplyCommand creates a new ApplyCommand.
func NewApplyCommand(initialize Initialize, fileOperation FileOperation) *ApplyCommand {
	return &ApplyCommand{
		initialize:    initialize,
		fileOperation: fileOperation,
	}
}

// Execute resolves the token, clones, and applies the operation. Unlike the
// interactive session every refusal is reported as an error.
func (it *ApplyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ApplyOptions,
) error {
	credentials := opts.Credentials
	repo := entities.ParseRepository(credentials.RepositoryURL)

	if credentials.Token == "" {
		credentials.Token = resolveTokenFromEnv(repo.ProviderName)
	}
	if credentials.Token == "" {
		return fmt.Errorf(
			"no auth token found for %s; set --token or the appropriate env var (%s)",
			entities.FullName(repo), tokenEnvHint(repo.ProviderName),
		)
	}
	if credentials.Username == "" {
		return fmt.Errorf("username: %w", entities.ErrEmptyInput)
	}

	workDir := entities.NewWorkingDirectory(settings.WorkDir)
	if _, err := it.initialize.Execute(ctx, settings, credentials, workDir); err != nil {
		return err
	}

	outcome, err := it.fileOperation.Execute(ctx, settings, workDir, credentials, opts.Operation)
	if err != nil {
		return err
	}

	switch outcome {
	case entities.OutcomeAlreadyExists:
		return fmt.Errorf("%s: %w", opts.Operation.FileName, ErrFileAlreadyExists)
	case entities.OutcomeDoesNotExist:
		return fmt.Errorf("%s: %w", opts.Operation.FileName, ErrFileDoesNotExist)
	}

	logger.Infof("Applied %q to %s", opts.Operation.CommitMessage(), entities.FullName(repo))
	return nil
}

// resolveTokenFromEnv reads the auth token from well-known environment
// variables for the given provider type.
func resolveTokenFromEnv(providerType string) string {
	switch providerType {
	case entities.ProviderAzureDevOps:
		if t := os.Getenv("AZURE_DEVOPS_EXT_PAT"); t != "" {
			return t
		}
		return os.Getenv("SYSTEM_ACCESSTOKEN")
	case entities.ProviderGitLab:
		if t := os.Getenv("GITLAB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GL_TOKEN")
	default:
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	}
}

// tokenEnvHint returns a human-friendly hint about which environment
// variable to set for the given provider.
func tokenEnvHint(providerType string) string {
	switch providerType {
	case entities.ProviderAzureDevOps:
		return "AZURE_DEVOPS_EXT_PAT or SYSTEM_ACCESSTOKEN"
	case entities.ProviderGitLab:
		return "GITLAB_TOKEN or GL_TOKEN"
	default:
		return "GITHUB_TOKEN or GH_TOKEN"
	}
}
