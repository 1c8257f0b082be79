package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/lock"
	"github.com/skydeck-dev/skydeck/internal/snapshot"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

var (
	rollbackList bool
	rollbackEnv  string
)

// rollbackCmd restores a manifest snapshot.
var rollbackCmd = &cobra.Command{
	Use:   "rollback [snapshot]",
	Short: "Restore a manifest snapshot",
	Long: `Restore the manifest directory from a snapshot taken before a
previous compose.

Examples:
  # List available snapshots
  skydeck rollback --list

  # Restore the prod manifests from a snapshot
  skydeck rollback manifests-20260815-101530.123456789 --env prod`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSnapshotNames,
	Run:               runRollback,
}

func init() {
	rollbackCmd.Flags().BoolVarP(&rollbackList, "list", "l", false, "List available snapshots")
	rollbackCmd.Flags().StringVar(&rollbackEnv, "env", "", "Environment whose manifests to restore")

	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	if rollbackList || len(args) == 0 {
		listSnapshots(cfg)
		return
	}

	if rollbackEnv == "" {
		ui.Fatal("--env is required to restore a snapshot")
	}

	name := args[0]
	destDir := filepath.Join(cfg.ManifestsDir(), rollbackEnv)

	err = lock.WithLock(cfg.DeployDir, "rollback", func() error {
		return snapshot.Restore(cfg.SnapshotsDir(), name, destDir)
	})
	if err != nil {
		ui.Fatal("%v", err)
	}

	ui.Success("Restored %s to %s", name, destDir)
}

func listSnapshots(cfg *config.Config) {
	snapshots, err := snapshot.List(cfg.SnapshotsDir())
	if err != nil {
		ui.Fatal("%v", err)
	}

	if len(snapshots) == 0 {
		ui.Warning("No snapshots found")
		os.Exit(0)
	}

	ui.Header("Snapshots (newest first):")
	for _, snap := range snapshots {
		ui.Item("%s (%d files, %s)", snap.Name, snap.FileCount, snap.Created.Format("2006-01-02 15:04:05"))
	}
}
