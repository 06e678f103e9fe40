package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

const (
	sessionBanner = "=== Git Repo File Editor ==="

	promptRepositoryURL = "Enter GitHub repo URL (e.g. https://github.com/user/repo.git): "
	promptUsername      = "Enter GitHub username: "
	promptToken         = "Enter GitHub token: "
	promptOperation     = "Enter operation (add/update): "
	promptFileName      = "Enter file name (e.g. apple.txt): "
	promptFileContent   = "Enter file content: "
)

// answerMode selects how a prompt is read and whether quit words apply.
type answerMode int

const (
	plainAnswer answerMode = iota
	secretAnswer
	// contentAnswer is free text: quit words are stored, not obeyed.
	contentAnswer
)

// Session is the interface for the interactive session loop.
type Session interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// SessionCommand drives the prompts: credentials, clone, then file operations
// until an error sends it back to the credential prompt. It returns nil once
// the operator quits, the input ends or ctx is cancelled.
type SessionCommand struct {
	promptRepository    repositories.PromptRepository
	workspaceRepository repositories.WorkspaceRepository
	initialize          Initialize
	fileOperation       FileOperation
}

// NewSessionCommand creates a new SessionCommand.
func NewSessionCommand(
	promptRepository repositories.PromptRepository,
	workspaceRepository repositories.WorkspaceRepository,
	initialize Initialize,
	fileOperation FileOperation,
) *SessionCommand {
	return &SessionCommand{
		promptRepository:    promptRepository,
		workspaceRepository: workspaceRepository,
		initialize:          initialize,
		fileOperation:       fileOperation,
	}
}

// Execute runs the session until it is closed.
func (it *SessionCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	it.promptRepository.Say(sessionBanner)
	logger.Debugf("Quit with any of %v or end of input", settings.QuitCommands)

	var cloned bool
	workDir := entities.NewWorkingDirectory(settings.WorkDir)
	defer func() {
		if cloned && settings.CleanupOnExit {
			it.cleanup(workDir)
		}
	}()

	for {
		if ctx.Err() != nil {
			logger.Info("Session cancelled")
			return nil
		}

		err := it.runIteration(ctx, settings, workDir, &cloned)
		switch {
		case errors.Is(err, entities.ErrSessionClosed):
			logger.Info("Session closed")
			return nil
		case ctx.Err() != nil:
			logger.Info("Session cancelled")
			return nil
		case err != nil:
			reportError(err)
		}
	}
}

// runIteration is one pass of the outer loop. It only returns with an error:
// the inner loop runs until something fails or the session is closed.
func (it *SessionCommand) runIteration(
	ctx context.Context,
	settings *entities.Settings,
	workDir entities.WorkingDirectory,
	cloned *bool,
) error {
	credentials, err := it.readCredentials(settings)
	if err != nil {
		return err
	}

	*cloned = true
	if _, err = it.initialize.Execute(ctx, settings, credentials, workDir); err != nil {
		return err
	}

	for {
		operation, readErr := it.readOperation(settings)
		if readErr != nil {
			if isRecoverableInput(readErr) {
				logger.Warn(readErr.Error())
				continue
			}
			return readErr
		}

		outcome, execErr := it.fileOperation.Execute(ctx, settings, workDir, credentials, operation)
		if execErr != nil {
			if isRecoverableInput(execErr) {
				logger.Warn(execErr.Error())
				continue
			}
			return execErr
		}
		logger.Debugf("Operation %s on %s finished: %s", operation.Kind, operation.FileName, outcome)
	}
}

func (it *SessionCommand) readCredentials(settings *entities.Settings) (entities.Credentials, error) {
	repositoryURL, err := it.ask(settings, promptRepositoryURL, plainAnswer)
	if err != nil {
		return entities.Credentials{}, err
	}
	repositoryURL = strings.TrimSpace(repositoryURL)
	if repositoryURL == "" {
		return entities.Credentials{}, fmt.Errorf("repository URL: %w", entities.ErrEmptyInput)
	}

	username, err := it.ask(settings, promptUsername, plainAnswer)
	if err != nil {
		return entities.Credentials{}, err
	}

	tokenMode := plainAnswer
	if settings.MaskToken {
		tokenMode = secretAnswer
	}
	token, err := it.ask(settings, promptToken, tokenMode)
	if err != nil {
		return entities.Credentials{}, err
	}

	return entities.Credentials{
		RepositoryURL: repositoryURL,
		Username:      strings.TrimSpace(username),
		Token:         strings.TrimSpace(token),
	}, nil
}

func (it *SessionCommand) readOperation(settings *entities.Settings) (entities.FileOperation, error) {
	rawKind, err := it.ask(settings, promptOperation, plainAnswer)
	if err != nil {
		return entities.FileOperation{}, err
	}
	kind, err := entities.ParseOperationKind(rawKind)
	if err != nil {
		return entities.FileOperation{}, err
	}

	fileName, err := it.ask(settings, promptFileName, plainAnswer)
	if err != nil {
		return entities.FileOperation{}, err
	}

	content, err := it.ask(settings, promptFileContent, contentAnswer)
	if err != nil {
		return entities.FileOperation{}, err
	}

	return entities.FileOperation{
		Kind:     kind,
		FileName: strings.TrimSpace(fileName),
		Content:  content,
	}, nil
}

// ask reads one answer and maps end of input to ErrSessionClosed. Quit words
// close the session too, except for file content which is passed through untouched.
func (it *SessionCommand) ask(settings *entities.Settings, prompt string, mode answerMode) (string, error) {
	var (
		answer string
		err    error
	)
	if mode == secretAnswer {
		answer, err = it.promptRepository.ReadSecret(prompt)
	} else {
		answer, err = it.promptRepository.ReadLine(prompt)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", entities.ErrSessionClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if mode != contentAnswer && settings.IsQuitCommand(answer) {
		return "", entities.ErrSessionClosed
	}
	return answer, nil
}

func (it *SessionCommand) cleanup(workDir entities.WorkingDirectory) {
	failures, err := it.workspaceRepository.RemoveAll(workDir.Path)
	if err != nil {
		logger.Warnf("Failed to remove %s: %v", workDir.Path, err)
		return
	}
	for _, failure := range failures {
		logger.Warnf("Failed to delete %s", failure)
	}
	if len(failures) == 0 {
		logger.Infof("Removed %s", workDir.Path)
	}
}

// isRecoverableInput tells operator typos, which re-prompt for the operation,
// apart from failures that restart the session.
func isRecoverableInput(err error) bool {
	return errors.Is(err, entities.ErrUnknownOperation) ||
		errors.Is(err, entities.ErrEmptyInput) ||
		errors.Is(err, entities.ErrPathEscapesWorkDir)
}

// reportError logs err with the command details when a git step failed.
func reportError(err error) {
	entry := logger.WithError(err)

	var failure *entities.CommandFailure
	if errors.As(err, &failure) {
		entry = entry.WithFields(logger.Fields{
			"command":   failure.CommandLine(),
			"exit_code": failure.ExitCode,
		})
	}
	entry.Error("Operation failed, starting over")
}
