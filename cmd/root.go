package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/collabhq/roster/internal/config"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// ROSTER_AUTH_SIGNING_KEY presets --auth-signing-key.
const EnvPrefix = "ROSTER"

func Execute() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	rootCmd := &cobra.Command{
		Use:          "roster",
		Short:        "Collaborator roster service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(NewRunCommand(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
