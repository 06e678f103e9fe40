package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewInitializeCommand); err != nil {
		return err
	}
	if err := container.Provide(NewFileOperationCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSessionCommand); err != nil {
		return err
	}
	if err := container.Provide(NewApplyCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *InitializeCommand) Initialize {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *FileOperationCommand) FileOperation {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SessionCommand) Session {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ApplyCommand) Apply {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
