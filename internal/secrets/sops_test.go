package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptValuesMissingFile(t *testing.T) {
	_, err := DecryptValues(filepath.Join(t.TempDir(), "missing.sops.yaml"))
	assert.Error(t, err)
}

func TestDecryptValuesUnencryptedFile(t *testing.T) {
	// A plain YAML file carries no sops metadata, so decryption must fail
	// rather than silently passing plaintext through.
	path := filepath.Join(t.TempDir(), "plain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: prod\n"), 0644))

	_, err := DecryptValues(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt plain.yaml")
}

func TestMergeValues(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		override map[string]any
		want     map[string]any
	}{
		{
			name:     "override wins",
			base:     map[string]any{"env": "dev", "port": 8080},
			override: map[string]any{"env": "prod"},
			want:     map[string]any{"env": "prod", "port": 8080},
		},
		{
			name:     "nested maps merge",
			base:     map[string]any{"gateway": map[string]any{"port": 8080, "hostname": "a"}},
			override: map[string]any{"gateway": map[string]any{"port": 9090}},
			want:     map[string]any{"gateway": map[string]any{"port": 9090, "hostname": "a"}},
		},
		{
			name:     "map replaces scalar",
			base:     map[string]any{"gateway": "legacy"},
			override: map[string]any{"gateway": map[string]any{"port": 1}},
			want:     map[string]any{"gateway": map[string]any{"port": 1}},
		},
		{
			name:     "nil base",
			base:     nil,
			override: map[string]any{"env": "prod"},
			want:     map[string]any{"env": "prod"},
		},
		{
			name:     "nil override",
			base:     map[string]any{"env": "dev"},
			override: nil,
			want:     map[string]any{"env": "dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeValues(tt.base, tt.override))
		})
	}
}
