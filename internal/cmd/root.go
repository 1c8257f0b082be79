// Package cmd provides the CLI commands for skydeck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "skydeck",
	Short: "Deployment toolkit for the remote-ID HTTP gateway",
	Long: `skydeck - deployment toolkit for the remote-ID HTTP gateway

Composes the Kubernetes manifests for the gateway from per-environment
metadata files and manages the airspace-zone fixtures used by the
automated test harness.

MANIFEST COMMANDS
  compose [env]         Compose Ingress, Service, and Deployment manifests
    --dry-run, -n       Print manifests without writing
    --values, -f <file> Apply a values overlay before interpolation
    --secrets, -s <file> Apply a sops-encrypted values overlay
    --pre-shared-cert <name>  Use a pre-shared certificate instead of a
                        managed one
    --out, -o <dir>     Override the output directory
  environments          List available environment metadata files
  migrate               Add apiVersion/kind headers to legacy metadata

FIXTURE COMMANDS
  zones list            List airspace-zone fixture files
  zones check           Validate every fixture file
  zones new <file>      Scaffold a new fixture file

DIAGNOSTICS
  doctor                Check binaries, metadata, and fixtures

RECOVERY
  rollback --list       List manifest snapshots
  rollback <snapshot>   Restore a manifest snapshot

MAINTENANCE
  update                Update skydeck to the latest release`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("skydeck version {{.Version}}\n")
}
