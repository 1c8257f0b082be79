package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/gateway"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

// environmentsCmd lists the environment metadata files.
var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "List available environments",
	Run:     runEnvironments,
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}

func runEnvironments(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	names, err := gateway.ListEnvironments(cfg.EnvironmentsDir())
	if err != nil {
		ui.Fatal("%v", err)
	}

	if len(names) == 0 {
		ui.Warning("No environments found in %s", cfg.EnvironmentsDir())
		os.Exit(0)
	}

	ui.Header("Environments:")
	for _, name := range names {
		ui.Item("%s", name)
	}
}
