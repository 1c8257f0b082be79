package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydeck-dev/skydeck/internal/gateway"
)

func composeTestMetadata() gateway.Metadata {
	return gateway.Metadata{
		APIVersion: gateway.APIVersionV1,
		Kind:       gateway.KindGatewayMetadata,
		Namespace:  "rid-prod",
		Gateway: gateway.GatewaySpec{
			IPName:   "rid-gateway-ip",
			Hostname: "gateway.rid.example.com",
			Port:     8080,
			Image:    "registry.example.com/http-gateway:1.4.2",
		},
		Backend: gateway.BackendSpec{Port: 8081},
	}
}

func kindsOf(bundle gateway.Document) []string {
	var kinds []string
	for _, res := range gateway.Flatten(bundle) {
		kind, _ := res["kind"].(string)
		kinds = append(kinds, kind)
	}
	return kinds
}

func TestBuildBundleManagedCert(t *testing.T) {
	composePreshared = ""
	t.Cleanup(func() { composePreshared = "" })

	bundle := buildBundle(composeTestMetadata())
	require.NoError(t, gateway.ValidateBundle(bundle))

	assert.ElementsMatch(t,
		[]string{"Ingress", "ManagedCertificate", "Service", "Deployment"},
		kindsOf(bundle))
}

func TestBuildBundlePresharedCert(t *testing.T) {
	composePreshared = "gateway-cert-2026"
	t.Cleanup(func() { composePreshared = "" })

	bundle := buildBundle(composeTestMetadata())
	require.NoError(t, gateway.ValidateBundle(bundle))

	kinds := kindsOf(bundle)
	assert.ElementsMatch(t, []string{"Ingress", "Service", "Deployment"}, kinds)
	assert.NotContains(t, kinds, "ManagedCertificate")

	ingress, ok := bundle["ingress"].(gateway.Document)
	require.True(t, ok)
	metadata := ingress["metadata"].(gateway.Document)
	annotations := metadata["annotations"].(gateway.Document)
	assert.Equal(t, "gateway-cert-2026", annotations[gateway.AnnotationPresharedCert])
}

func TestCollectValuesNoFlags(t *testing.T) {
	composeValues = ""
	composeSecrets = ""
	t.Setenv("SKYDECK_SECRETS_FILE", "")

	values, err := collectValues()
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestCollectValuesFromFile(t *testing.T) {
	composeValues = writeCmdTempFile(t, "values.yml", "env: prod\nport: 8443\n")
	composeSecrets = ""
	t.Setenv("SKYDECK_SECRETS_FILE", "")
	t.Cleanup(func() { composeValues = "" })

	values, err := collectValues()
	require.NoError(t, err)
	assert.Equal(t, "prod", values["env"])
	assert.Equal(t, 8443, values["port"])
}

func TestCollectValuesMissingFile(t *testing.T) {
	composeValues = "/nonexistent/values.yml"
	composeSecrets = ""
	t.Cleanup(func() { composeValues = "" })

	_, err := collectValues()
	assert.Error(t, err)
}
