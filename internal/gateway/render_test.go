package gateway

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	md := testMetadata()

	tests := []struct {
		name      string
		doc       Document
		wantKinds []string
	}{
		{
			name:      "full bundle yields four resources",
			doc:       BuildAll(md),
			wantKinds: []string{"Deployment", "Ingress", "ManagedCertificate", "Service"},
		},
		{
			name:      "composite ingress yields ingress and certificate",
			doc:       BuildManagedCertIngress(md),
			wantKinds: []string{"Ingress", "ManagedCertificate"},
		},
		{
			name:      "concrete resource yields itself",
			doc:       BuildService(md),
			wantKinds: []string{"Service"},
		},
		{
			name:      "empty document yields nothing",
			doc:       Document{},
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kinds []string
			for _, res := range Flatten(tt.doc) {
				kinds = append(kinds, res["kind"].(string))
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestFlattenIsDeterministic(t *testing.T) {
	bundle := BuildAll(testMetadata())

	first := Flatten(bundle)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Flatten(bundle))
	}
}

func TestRenderBundle(t *testing.T) {
	bundle := BuildAll(testMetadata())

	out, err := RenderBundle(bundle)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "---\n"), "four resources separated by three dividers")
	assert.Contains(t, out, "kind: Ingress")
	assert.Contains(t, out, "kind: ManagedCertificate")
	assert.Contains(t, out, "kind: Service")
	assert.Contains(t, out, "kind: Deployment")
	assert.Contains(t, out, AnnotationStaticIP+": rid-gateway-ip")
}

func TestWriteBundle(t *testing.T) {
	outDir := t.TempDir()
	bundle := BuildAll(testMetadata())

	written, err := WriteBundle(bundle, outDir)
	require.NoError(t, err)
	require.Len(t, written, 4)

	wantFiles := []string{"deployment.yaml", "ingress.yaml", "managedcertificate.yaml", "service.yaml"}
	for i, name := range wantFiles {
		assert.Equal(t, filepath.Join(outDir, name), written[i])

		data, err := os.ReadFile(written[i])
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestValidateResource(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{
			name:    "valid service",
			doc:     BuildService(testMetadata()),
			wantErr: nil,
		},
		{
			name:    "grouping node is not a resource",
			doc:     Document{"ingress": Document{}},
			wantErr: ErrNotAResource,
		},
		{
			name: "unexpected kind",
			doc: Document{
				"apiVersion": "v1",
				"kind":       "ConfigMap",
				"metadata":   Document{"name": "x"},
			},
			wantErr: ErrUnexpectedKind,
		},
		{
			name: "missing name",
			doc: Document{
				"apiVersion": "apps/v1",
				"kind":       "Deployment",
				"metadata":   Document{},
			},
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResource(tt.doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBundle(t *testing.T) {
	md := testMetadata()

	assert.NoError(t, ValidateBundle(BuildAll(md)))
	assert.NoError(t, ValidateBundle(BuildManagedCertIngress(md)))
	assert.ErrorIs(t, ValidateBundle(Document{}), ErrNotAResource)
}
