package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/gateway"
	"github.com/skydeck-dev/skydeck/internal/snapshot"
)

// completeEnvironmentNames completes environment names for compose.
func completeEnvironmentNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	all, err := gateway.ListEnvironments(cfg.EnvironmentsDir())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, name := range all {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeSnapshotNames completes snapshot names for rollback.
func completeSnapshotNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	snapshots, err := snapshot.List(cfg.SnapshotsDir())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, snap := range snapshots {
		if strings.HasPrefix(snap.Name, toComplete) {
			names = append(names, snap.Name)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
