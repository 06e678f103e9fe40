package controllers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

// loadSettings resolves the configuration from --config, the default
// locations, or the built-in defaults, then applies the global flags.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	workDir, _ := cmd.Flags().GetString("work-dir")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found (%v), using defaults", err)
		}
		cfgPath = found
	}

	settings := entities.NewDefaultSettings()
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)

		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if workDir != "" {
		settings.WorkDir = workDir
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// signalContext returns the command context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
