package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/gateway"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

var migrateWrite bool

// migrateCmd adds apiVersion/kind headers to legacy metadata files.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate metadata files to add apiVersion and kind fields",
	Long: `Migrate environment metadata files to the current schema version.

Scans deploy/environments/ and adds apiVersion/kind fields to
unversioned metadata files. By default this is a dry run showing what
would change.

Examples:
  # Show which files need migration (dry-run)
  skydeck migrate

  # Actually migrate files
  skydeck migrate --write`,
	Run: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateWrite, "write", "w", false, "Write changes to files (default is dry-run)")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	if migrateWrite {
		ui.Yellow.Println("Migrating metadata files...")
	} else {
		ui.Blue.Println("Scanning for unversioned metadata files (dry-run mode)...")
		fmt.Println("Use --write to apply changes")
		fmt.Println()
	}

	entries, err := os.ReadDir(cfg.EnvironmentsDir())
	if err != nil {
		ui.Fatal("read environments directory: %v", err)
	}

	opts := gateway.MigrateOptions{DryRun: !migrateWrite}
	migrated, failures := 0, 0

	for _, entry := range entries {
		if entry.IsDir() || !isMetadataFile(entry.Name()) {
			continue
		}

		path := filepath.Join(cfg.EnvironmentsDir(), entry.Name())
		result, err := gateway.MigrateFile(path, opts)
		if err != nil {
			ui.Error("%s: %v", entry.Name(), err)
			failures++
			continue
		}

		if result.Migrated {
			migrated++
			if migrateWrite {
				ui.Success("%s migrated", entry.Name())
			} else {
				ui.Warning("%s needs migration", entry.Name())
			}
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
	if migrated == 0 {
		ui.Success("All metadata files are versioned")
		return
	}
	if !migrateWrite {
		fmt.Printf("\n%d file(s) need migration\n", migrated)
	}
}

// isMetadataFile matches plain and templated metadata files.
func isMetadataFile(name string) bool {
	name = strings.TrimSuffix(name, gateway.TemplateExt)
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}
