package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// SessionController handles the root command (interactive session).
type SessionController struct {
	command commands.Session
}

// NewSessionController creates a new SessionController.
func NewSessionController(command commands.Session) *SessionController {
	return &SessionController{command: command}
}

// GetBind returns the Cobra command metadata for the session controller.
func (it *SessionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "session",
		Short: "Edit files in a remote repository interactively",
		Long: `Prompt for a repository URL, username and access token, clone the
repository, then repeatedly add or update a file and push each change
as a new commit.

Any failure starts over at the repository prompt. Type "quit" or "exit"
at any prompt, or send end of input, to leave.`,
	}
}

// Execute runs the interactive loop until the operator quits or a signal arrives.
func (it *SessionController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	return it.command.Execute(ctx, settings)
}
