package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/gateway"
	"github.com/skydeck-dev/skydeck/internal/lock"
	"github.com/skydeck-dev/skydeck/internal/secrets"
	"github.com/skydeck-dev/skydeck/internal/snapshot"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

var (
	composeDryRun    bool
	composeValues    string
	composeSecrets   string
	composePreshared string
	composeOutputDir string
)

// composeCmd represents the compose command.
var composeCmd = &cobra.Command{
	Use:   "compose [environment]",
	Short: "Compose gateway manifests for an environment",
	Long: `Compose the Ingress, Service, and Deployment manifests for the
remote-ID HTTP gateway from an environment's metadata file.

The metadata file lives under deploy/environments/ and names the static
IP, hostname, ports, and image for one environment. Plain files may use
${var} placeholders; .tmpl files are rendered as Go templates with sprig
functions. Values come from --values (plain YAML) and --secrets
(sops-encrypted YAML), with secrets layered on top.

By default the ingress references a managed certificate and a
ManagedCertificate manifest is emitted alongside it. With
--pre-shared-cert the ingress is annotated with the named certificate
and no ManagedCertificate is produced.

Examples:
  # Print the prod manifests without writing
  skydeck compose prod --dry-run

  # Write manifests to deploy/manifests/prod/
  skydeck compose prod

  # Use a pre-shared certificate
  skydeck compose prod --pre-shared-cert gateway-cert-2026

  # Layer values onto a templated environment
  skydeck compose staging -f overrides.yml -s secrets.sops.yaml`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEnvironmentNames,
	Run:               runCompose,
}

func init() {
	composeCmd.Flags().BoolVarP(&composeDryRun, "dry-run", "n", false, "Print manifests without writing")
	composeCmd.Flags().StringVarP(&composeValues, "values", "f", "", "Values overlay file (YAML)")
	composeCmd.Flags().StringVarP(&composeSecrets, "secrets", "s", "", "sops-encrypted values overlay file (falls back to SKYDECK_SECRETS_FILE)")
	composeCmd.Flags().StringVar(&composePreshared, "pre-shared-cert", "", "Use a pre-shared certificate instead of a managed one")
	composeCmd.Flags().StringVarP(&composeOutputDir, "out", "o", "", "Output directory (default deploy/manifests/<environment>)")

	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) {
	env := args[0]

	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	variables, err := collectValues()
	if err != nil {
		ui.Fatal("%v", err)
	}

	path, err := gateway.FindEnvironment(cfg.EnvironmentsDir(), env)
	if err != nil {
		ui.Fatal("%v", err)
	}

	md, err := gateway.LoadMetadata(path, variables)
	if err != nil {
		ui.Fatal("load %s: %v", filepath.Base(path), err)
	}

	bundle := buildBundle(*md)

	if err := gateway.ValidateBundle(bundle); err != nil {
		ui.Fatal("validate manifests: %v", err)
	}

	if composeDryRun {
		rendered, err := gateway.RenderBundle(bundle)
		if err != nil {
			ui.Fatal("render manifests: %v", err)
		}
		fmt.Print(rendered)
		return
	}

	outDir := composeOutputDir
	if outDir == "" {
		outDir = filepath.Join(cfg.ManifestsDir(), env)
	}

	err = lock.WithLock(cfg.DeployDir, "compose", func() error {
		name, err := snapshot.Create(cfg.SnapshotsDir(), outDir)
		if err != nil {
			return fmt.Errorf("snapshot manifests: %w", err)
		}
		if name != "" {
			ui.Info("Snapshot created: %s", name)
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		written, err := gateway.WriteBundle(bundle, outDir)
		if err != nil {
			return fmt.Errorf("write manifests: %w", err)
		}

		for _, file := range written {
			ui.Item("%s", file)
		}
		return nil
	})
	if err != nil {
		ui.Fatal("%v", err)
	}

	ui.Success("Composed %s manifests in %s", env, outDir)
}

// collectValues loads the --values file and layers the decrypted
// --secrets file (or SKYDECK_SECRETS_FILE) on top of it.
func collectValues() (map[string]any, error) {
	var values map[string]any

	if composeValues != "" {
		loaded, err := gateway.LoadValues(composeValues)
		if err != nil {
			return nil, err
		}
		values = loaded
	}

	secretsFile := composeSecrets
	if secretsFile == "" {
		secretsFile = os.Getenv("SKYDECK_SECRETS_FILE")
	}
	if secretsFile != "" {
		decrypted, err := secrets.DecryptValues(secretsFile)
		if err != nil {
			return nil, err
		}
		values = secrets.MergeValues(values, decrypted)
	}

	return values, nil
}

// buildBundle composes the full manifest set, swapping the managed
// certificate for a pre-shared one when requested.
func buildBundle(md gateway.Metadata) gateway.Document {
	if composePreshared == "" {
		return gateway.BuildAll(md)
	}

	return gateway.Document{
		"ingress":    gateway.BuildPresharedCertIngress(md, composePreshared),
		"service":    gateway.BuildService(md),
		"deployment": gateway.BuildDeployment(md),
	}
}
