package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewSessionController); err != nil {
		return err
	}
	if err := container.Provide(NewApplyController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The session controller also backs the root command.
func NewControllers(
	sessionController *SessionController,
	applyController *ApplyController,
) *[]entities.Controller {
	return &[]entities.Controller{
		sessionController,
		applyController,
	}
}
