// Package config handles project discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the skydeck project configuration.
type Config struct {
	// Root is the project root directory (contains deploy/).
	Root string

	// DeployDir is the path to the deploy directory.
	DeployDir string
}

// FindRoot searches upward from the current directory to find the project root.
// The project root is identified by a deploy/ directory containing environments/.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		envDir := filepath.Join(dir, "deploy", "environments")
		if info, err := os.Stat(envDir); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no deploy/environments/ directory)")
}

// Load finds the project root and returns a Config.
func Load() (*Config, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}

	return &Config{
		Root:      root,
		DeployDir: filepath.Join(root, "deploy"),
	}, nil
}

// EnvironmentsDir returns the path to the gateway metadata files.
func (c *Config) EnvironmentsDir() string {
	return filepath.Join(c.DeployDir, "environments")
}

// ManifestsDir returns the output directory for rendered manifests.
func (c *Config) ManifestsDir() string {
	return filepath.Join(c.DeployDir, "manifests")
}

// SnapshotsDir returns the path to the snapshots directory.
func (c *Config) SnapshotsDir() string {
	return filepath.Join(c.DeployDir, ".skydeck", "snapshots")
}

// ZonesDir returns the path to the airspace zone fixtures.
func (c *Config) ZonesDir() string {
	return filepath.Join(c.Root, "fixtures", "geozones")
}
