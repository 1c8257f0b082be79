package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMetadataYAML = `apiVersion: skydeck.dev/v1
kind: GatewayMetadata
namespace: rid-prod
gateway:
  ipName: rid-gateway-ip
  hostname: gateway.rid.example.com
  port: 8080
  image: registry.example.com/http-gateway:1.4.2
backend:
  port: 8081
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMetadata(t *testing.T) {
	path := writeTempFile(t, "prod.yml", validMetadataYAML)

	md, err := LoadMetadata(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "rid-prod", md.Namespace)
	assert.Equal(t, "rid-gateway-ip", md.Gateway.IPName)
	assert.Equal(t, 8080, md.Gateway.Port)
	assert.Equal(t, 8081, md.Backend.Port)
}

func TestLoadMetadataInterpolation(t *testing.T) {
	content := `namespace: rid-${env}
gateway:
  ipName: rid-gateway-ip
  hostname: gateway.${env}.example.com
  port: ${port}
  image: registry.example.com/http-gateway:1.4.2
backend:
  port: 8081
`
	path := writeTempFile(t, "env.yml", content)

	md, err := LoadMetadata(path, map[string]any{"env": "staging", "port": 9090})
	require.NoError(t, err)

	assert.Equal(t, "rid-staging", md.Namespace)
	assert.Equal(t, "gateway.staging.example.com", md.Gateway.Hostname)
	assert.Equal(t, 9090, md.Gateway.Port)
}

func TestLoadMetadataMissingVariable(t *testing.T) {
	path := writeTempFile(t, "env.yml", "namespace: ${env}\n")

	_, err := LoadMetadata(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing variables: ${env}")
}

func TestLoadMetadataTemplate(t *testing.T) {
	content := `apiVersion: skydeck.dev/v1
kind: GatewayMetadata
namespace: rid-{{ .env }}
gateway:
  ipName: rid-gateway-ip
  hostname: gateway.{{ .env }}.example.com
  port: 8080
  image: registry.example.com/http-gateway:{{ .tag | default "latest" }}
backend:
  port: 8081
`
	path := writeTempFile(t, "prod.yml.tmpl", content)

	md, err := LoadMetadata(path, map[string]any{"env": "prod"})
	require.NoError(t, err)

	assert.Equal(t, "rid-prod", md.Namespace)
	assert.Equal(t, "registry.example.com/http-gateway:latest", md.Gateway.Image)
}

func TestLoadMetadataHeaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{
			name:    "unsupported api version",
			header:  "apiVersion: skydeck.dev/v2\nkind: GatewayMetadata\n",
			wantErr: ErrUnsupportedAPIVersion,
		},
		{
			name:    "wrong kind",
			header:  "apiVersion: skydeck.dev/v1\nkind: Fleet\n",
			wantErr: ErrKindMismatch,
		},
	}

	body := `namespace: rid-prod
gateway:
  ipName: ip
  hostname: h.example.com
  port: 8080
  image: img:1
backend:
  port: 8081
`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "bad.yml", tt.header+body)

			_, err := LoadMetadata(path, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMetadataMissingField(t *testing.T) {
	content := `namespace: rid-prod
gateway:
  ipName: rid-gateway-ip
  port: 8080
  image: img:1
backend:
  port: 8081
`
	path := writeTempFile(t, "incomplete.yml", content)

	_, err := LoadMetadata(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "gateway.hostname")
}

func TestListEnvironments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yml"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "staging.yaml"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dev.yml.tmpl"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	names, err := ListEnvironments(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"prod", "staging", "dev"}, names)
}

func TestFindEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yml"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dev.yml.tmpl"), []byte("x: 1"), 0644))

	path, err := FindEnvironment(dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prod.yml"), path)

	path, err = FindEnvironment(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dev.yml.tmpl"), path)

	_, err = FindEnvironment(dir, "missing")
	assert.Error(t, err)
}

func TestLoadValues(t *testing.T) {
	path := writeTempFile(t, "values.yml", "env: prod\nport: 8443\n")

	values, err := LoadValues(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", values["env"])
	assert.Equal(t, 8443, values["port"])
}
