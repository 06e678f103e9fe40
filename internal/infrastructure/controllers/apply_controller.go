package controllers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// ApplyController handles the "apply" subcommand (one-shot mode).
type ApplyController struct {
	command commands.Apply
}

// NewApplyController creates a new ApplyController.
func NewApplyController(command commands.Apply) *ApplyController {
	return &ApplyController{command: command}
}

// GetBind returns the Cobra command metadata for the apply controller.
func (it *ApplyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "apply",
		Short: "Clone a repository and push a single file change",
		Long: `Clone the repository, add or update one file, and push the change
without any prompt. Intended for scripts: the exit status is non-zero
when the operation is refused or a git step fails.

The token defaults to GITHUB_TOKEN/GH_TOKEN, GITLAB_TOKEN/GL_TOKEN or
AZURE_DEVOPS_EXT_PAT/SYSTEM_ACCESSTOKEN depending on the repository host.`,
	}
}

// Execute runs the one-shot mode.
func (it *ApplyController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	repoURL, _ := cmd.Flags().GetString("repo")
	username, _ := cmd.Flags().GetString("username")
	token, _ := cmd.Flags().GetString("token")
	rawKind, _ := cmd.Flags().GetString("op")
	fileName, _ := cmd.Flags().GetString("file")
	content, _ := cmd.Flags().GetString("content")

	if repoURL == "" || fileName == "" {
		return errors.New("--repo and --file are required")
	}
	kind, err := entities.ParseOperationKind(rawKind)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	if applyErr := it.command.Execute(ctx, settings, commands.ApplyOptions{
		Credentials: entities.Credentials{
			RepositoryURL: repoURL,
			Username:      username,
			Token:         token,
		},
		Operation: entities.FileOperation{
			Kind:     kind,
			FileName: fileName,
			Content:  content,
		},
	}); applyErr != nil {
		return fmt.Errorf("apply failed: %w", applyErr)
	}
	return nil
}

// AddFlags adds the apply-specific flags to the given Cobra command.
func (it *ApplyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Repository URL (e.g. https://github.com/user/repo.git)")
	cmd.Flags().String("username", "", "Username recorded as commit author and committer")
	cmd.Flags().String("token", "", "Access token (default: provider env var)")
	cmd.Flags().String("op", string(entities.OperationAdd), "Operation: add or update")
	cmd.Flags().String("file", "", "File name relative to the repository root")
	cmd.Flags().String("content", "", "Content to write (appended on update, no separator)")
}
