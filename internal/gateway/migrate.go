package gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skydeck-dev/skydeck/internal/fileutil"
)

// MigrationResult represents the result of migrating a single metadata file.
type MigrationResult struct {
	// Path is the file path that was processed.
	Path string

	// WasVersioned indicates if the file already had apiVersion/kind.
	WasVersioned bool

	// Migrated indicates if the file was migrated (or would be in dry-run).
	Migrated bool
}

// MigrateOptions configures migration behavior.
type MigrateOptions struct {
	// DryRun if true, don't write changes to disk.
	DryRun bool
}

// metadataHeader carries just the version fields of a metadata file.
type metadataHeader struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
}

// MigrateToV1 adds apiVersion and kind headers to an unversioned metadata
// file. Already-versioned content is returned unchanged.
func MigrateToV1(data []byte) ([]byte, bool, error) {
	var header metadataHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, false, fmt.Errorf("parse metadata header: %w", err)
	}

	if header.APIVersion != "" && header.Kind != "" {
		return data, false, nil
	}

	migrated := fmt.Sprintf("apiVersion: %s\nkind: %s\n%s", APIVersionV1, KindGatewayMetadata, data)
	return []byte(migrated), true, nil
}

// MigrateFile migrates a single metadata file to v1.
func MigrateFile(path string, opts MigrateOptions) (*MigrationResult, error) {
	result := &MigrationResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	migrated, changed, err := MigrateToV1(data)
	if err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	if !changed {
		result.WasVersioned = true
		return result, nil
	}

	result.Migrated = true
	if opts.DryRun {
		return result, nil
	}

	if err := fileutil.WriteFileAtomic(path, migrated, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return result, nil
}
