package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// FileOperation is the interface for the file operation executor.
type FileOperation interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		workDir entities.WorkingDirectory,
		credentials entities.Credentials,
		operation entities.FileOperation,
	) (entities.OperationOutcome, error)
}

// FileOperationCommand writes one file and pushes it as a new commit.
type FileOperationCommand struct {
	processRepository   repositories.ProcessRepository
	workspaceRepository repositories.WorkspaceRepository
}

// NewFileOperationCommand creates a new FileOperationCommand.
func NewFileOperationCommand(
	processRepository repositories.ProcessRepository,
	workspaceRepository repositories.WorkspaceRepository,
) *FileOperationCommand {
	return &FileOperationCommand{
		processRepository:   processRepository,
		workspaceRepository: workspaceRepository,
	}
}

// Execute validates the operation against the file on disk, writes the merged
// content, then runs git add, commit and push. A failing git step stops the
// sequence; nothing already done is rolled back.
func (it *FileOperationCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	workDir entities.WorkingDirectory,
	credentials entities.Credentials,
	operation entities.FileOperation,
) (entities.OperationOutcome, error) {
	path, err := workDir.Resolve(operation.FileName)
	if err != nil {
		return "", err
	}

	exists, err := it.workspaceRepository.Exists(path)
	if err != nil {
		return "", err
	}

	switch {
	case operation.Kind == entities.OperationAdd && exists:
		logger.Warn("File already exists. Use update instead.")
		return entities.OutcomeAlreadyExists, nil
	case operation.Kind == entities.OperationUpdate && !exists:
		logger.Warn("File does not exist. Use add instead.")
		return entities.OutcomeDoesNotExist, nil
	}

	previous := ""
	if operation.Kind == entities.OperationUpdate {
		if previous, err = it.workspaceRepository.ReadFile(path); err != nil {
			return "", err
		}
	}
	if err = it.workspaceRepository.WriteFile(path, operation.Merge(previous)); err != nil {
		return "", err
	}

	env := entities.MergeEnv(
		credentials.Identity(settings.EmailDomain).Env(),
		settings.CredentialMode.Env(credentials, entities.ParseRepository(credentials.RepositoryURL)),
	)
	steps := [][]string{
		{settings.GitBinary, "add", "--", operation.FileName},
		{settings.GitBinary, "commit", "-m", operation.CommitMessage()},
		{settings.GitBinary, "push"},
	}
	for _, step := range steps {
		if runErr := it.processRepository.Run(ctx, workDir.Path, env, step...); runErr != nil {
			return "", fmt.Errorf("%s %s: %w", operation.Kind, operation.FileName, runErr)
		}
	}

	logger.Info("Changes pushed successfully.")
	return entities.OutcomePushed, nil
}
