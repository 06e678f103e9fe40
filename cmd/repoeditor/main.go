package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoeditor/internal"
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/controllers"
)

func buildRootCommand(sessionController *controllers.SessionController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repoeditor",
		Short: "Add or update files in a remote Git repository",
		Long: `Clone a remote Git repository with an access token, then add or append
to files and push every change as a new commit.

Usage modes:
  repoeditor           Interactive session (same as "repoeditor session")
  repoeditor apply     One-shot change driven by flags`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          sessionController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("work-dir", "",
		"Directory the repository is cloned into (default: "+entities.DefaultWorkDir+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}

		// Add controller-specific flags
		if ac, ok := controller.(*controllers.ApplyController); ok {
			ac.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext, sessionController := injectApp()
	cobraRoot := buildRootCommand(sessionController)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'repoeditor': %s", err)
	}
}
