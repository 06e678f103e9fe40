//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repoeditor/internal/domain/commands"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/controllers"
	"github.com/rios0rios0/repoeditor/test/domain/commanddoubles"
)

// newCobraCommand mirrors the persistent flags of the root command.
func newCobraCommand(t *testing.T, configContent string) *cobra.Command {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), ".repoeditor.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", configPath, "")
	cmd.Flags().String("work-dir", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	return cmd
}

func TestSessionController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the session command", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewSessionController(&commanddoubles.StubSessionCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "session", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should load the config file and run the session", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSessionCommand{}
		controller := controllers.NewSessionController(stub)
		cmd := newCobraCommand(t, "work_dir: ./clone\nmask_token: true\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "./clone", stub.LastSettings.WorkDir)
		assert.True(t, stub.LastSettings.MaskToken)
	})

	t.Run("should let --work-dir override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSessionCommand{}
		controller := controllers.NewSessionController(stub)
		cmd := newCobraCommand(t, "work_dir: ./clone\n")
		require.NoError(t, cmd.Flags().Set("work-dir", "./other"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "./other", stub.LastSettings.WorkDir)
	})

	t.Run("should refuse a --work-dir pointing at the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSessionCommand{}
		controller := controllers.NewSessionController(stub)
		cmd := newCobraCommand(t, "{}\n")
		require.NoError(t, cmd.Flags().Set("work-dir", "."))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should fail on an invalid config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSessionCommand{}
		controller := controllers.NewSessionController(stub)
		cmd := newCobraCommand(t, "credential_mode: carrier-pigeon\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return the session error", func(t *testing.T) {
		t.Parallel()

		// given
		sessionErr := errors.New("boom")
		stub := &commanddoubles.StubSessionCommand{ExecuteErr: sessionErr}
		controller := controllers.NewSessionController(stub)
		cmd := newCobraCommand(t, "{}\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, sessionErr)
	})
}

func TestApplyController(t *testing.T) {
	t.Parallel()

	newApplyCommand := func(t *testing.T, controller *controllers.ApplyController, flags map[string]string) *cobra.Command {
		t.Helper()
		cmd := newCobraCommand(t, "{}\n")
		controller.AddFlags(cmd)
		for name, value := range flags {
			require.NoError(t, cmd.Flags().Set(name, value))
		}
		return cmd
	}

	t.Run("should bind to the apply command", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewApplyController(&commanddoubles.StubApplyCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "apply", bind.Use)
	})

	t.Run("should pass the flags to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubApplyCommand{}
		controller := controllers.NewApplyController(stub)
		cmd := newApplyCommand(t, controller, map[string]string{
			"repo":     "https://github.com/user/repo.git",
			"username": "alice",
			"token":    "tok",
			"op":       "UPDATE",
			"file":     "apple.txt",
			"content":  "D",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, commands.ApplyOptions{
			Credentials: entities.Credentials{
				RepositoryURL: "https://github.com/user/repo.git",
				Username:      "alice",
				Token:         "tok",
			},
			Operation: entities.FileOperation{
				Kind:     entities.OperationUpdate,
				FileName: "apple.txt",
				Content:  "D",
			},
		}, stub.LastOpts)
	})

	t.Run("should require --repo and --file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubApplyCommand{}
		controller := controllers.NewApplyController(stub)
		cmd := newApplyCommand(t, controller, map[string]string{"repo": "https://github.com/user/repo.git"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--repo and --file are required")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should reject an unknown operation", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubApplyCommand{}
		controller := controllers.NewApplyController(stub)
		cmd := newApplyCommand(t, controller, map[string]string{
			"repo": "https://github.com/user/repo.git",
			"file": "apple.txt",
			"op":   "delete",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownOperation)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should wrap command errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubApplyCommand{ExecuteErr: commands.ErrFileAlreadyExists}
		controller := controllers.NewApplyController(stub)
		cmd := newApplyCommand(t, controller, map[string]string{
			"repo": "https://github.com/user/repo.git",
			"file": "apple.txt",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, commands.ErrFileAlreadyExists)
		assert.Contains(t, err.Error(), "apply failed")
	})
}
