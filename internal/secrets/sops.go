// Package secrets loads sops-encrypted values files used as metadata
// variable overlays.
package secrets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/getsops/sops/v3/decrypt"
	"gopkg.in/yaml.v3"
)

// DecryptValues decrypts a sops-encrypted values file and returns its
// top-level mapping. The input format is inferred from the extension;
// anything that is not .json is treated as YAML.
func DecryptValues(path string) (map[string]any, error) {
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	plaintext, err := decrypt.File(path, format)
	if err != nil {
		return nil, fmt.Errorf("decrypt %s: %w", filepath.Base(path), err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("parse decrypted values from %s: %w", filepath.Base(path), err)
	}
	return values, nil
}

// MergeValues layers override on top of base. Nested mappings merge
// recursively; everything else is replaced by the override.
func MergeValues(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		if overrideMap, ok := value.(map[string]any); ok {
			if baseMap, ok := merged[key].(map[string]any); ok {
				merged[key] = MergeValues(baseMap, overrideMap)
				continue
			}
		}
		merged[key] = value
	}
	return merged
}
