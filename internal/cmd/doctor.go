package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/gateway"
	"github.com/skydeck-dev/skydeck/internal/preflight"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

// doctorCmd checks the host and the project for problems.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check binaries, metadata, and fixtures",
	Long: `Run diagnostics on the host and the project.

Checks that helper binaries are installed, that every environment
metadata file parses and validates, and that every airspace-zone
fixture is well formed.`,
	Run: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	failures := 0

	ui.Header("Binaries")
	warnings, errors := preflight.CheckAll()
	for _, msg := range errors {
		ui.Error("%s", msg)
		failures++
	}
	for _, msg := range warnings {
		ui.Warning("%s", msg)
	}
	if len(warnings) == 0 && len(errors) == 0 {
		ui.Success("All binaries present")
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	fmt.Println()
	ui.Header("Environments")
	failures += checkEnvironments(cfg)

	fmt.Println()
	ui.Header("Fixtures")
	failures += checkZones(cfg.ZonesDir())

	fmt.Println()
	if failures > 0 {
		ui.Error("%d problem(s) found", failures)
		os.Exit(1)
	}
	ui.Success("Everything looks good")
}

// checkEnvironments parses and validates every metadata file. Templated
// environments are skipped since they need values to render.
func checkEnvironments(cfg *config.Config) int {
	names, err := gateway.ListEnvironments(cfg.EnvironmentsDir())
	if err != nil {
		ui.Error("%v", err)
		return 1
	}

	failures := 0
	for _, name := range names {
		path, err := gateway.FindEnvironment(cfg.EnvironmentsDir(), name)
		if err != nil {
			ui.Error("%s: %v", name, err)
			failures++
			continue
		}

		if filepath.Ext(path) == gateway.TemplateExt {
			ui.Warning("%s is templated, skipping (compose it with values to validate)", name)
			continue
		}

		if _, err := gateway.LoadMetadata(path, nil); err != nil {
			ui.Error("%s: %v", name, err)
			failures++
			continue
		}
		ui.Success("%s", name)
	}
	return failures
}
