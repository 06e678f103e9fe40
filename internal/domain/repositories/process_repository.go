package repositories

import "context"

// ProcessRepository spawns external commands and relays their output to the console.
type ProcessRepository interface {
	// Run executes command inside dir (the current directory when empty) with env
	// merged on top of the inherited environment. It blocks until the process
	// exits and returns *entities.CommandFailure on a non-zero exit.
	Run(ctx context.Context, dir string, env map[string]string, command ...string) error

	// Output executes command in the current directory and returns its stdout
	// instead of relaying it.
	Output(ctx context.Context, command ...string) (string, error)
}
