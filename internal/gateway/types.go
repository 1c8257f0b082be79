package gateway

import (
	"errors"
	"fmt"
)

// API version and kind constants for skydeck metadata files.
const (
	// APIVersionV1 is the current API version for skydeck metadata.
	APIVersionV1 = "skydeck.dev/v1"

	// KindGatewayMetadata identifies a gateway metadata file.
	KindGatewayMetadata = "GatewayMetadata"
)

// SupportedAPIVersions lists all API versions that can be loaded.
var SupportedAPIVersions = []string{APIVersionV1}

// Resource naming and annotation keys. The consuming orchestration system
// matches on these literally, so they must not change.
const (
	// GatewayName is the name shared by the Ingress, Service, and Deployment.
	GatewayName = "http-gateway"

	// CertificateName is the name of the co-produced ManagedCertificate.
	CertificateName = "http-gateway-certificate"

	// AnnotationStaticIP binds the Ingress to a reserved global static IP.
	AnnotationStaticIP = "kubernetes.io/ingress.global-static-ip-name"

	// AnnotationManagedCerts references ManagedCertificate resources from the Ingress.
	AnnotationManagedCerts = "networking.gke.io/managed-certificates"

	// AnnotationPresharedCert references an externally issued certificate by name.
	AnnotationPresharedCert = "ingress.gcp.kubernetes.io/pre-shared-cert"

	// AnnotationPrometheusScrape tags the Service for metric collection.
	AnnotationPrometheusScrape = "prometheus.io/scrape"
)

// Document is a generic manifest tree of scalar/sequence/mapping nodes.
type Document = map[string]any

// ErrMissingField indicates a required metadata field is empty or zero.
var ErrMissingField = errors.New("missing metadata field")

// Metadata is the immutable input record for one composition.
type Metadata struct {
	// APIVersion identifies the schema version (e.g., "skydeck.dev/v1").
	APIVersion string `yaml:"apiVersion,omitempty"`

	// Kind identifies the metadata type (e.g., "GatewayMetadata").
	Kind string `yaml:"kind,omitempty"`

	// Namespace is the deployment environment namespace.
	Namespace string `yaml:"namespace"`

	// Gateway describes the public-facing gateway.
	Gateway GatewaySpec `yaml:"gateway"`

	// Backend describes the internal gRPC backend the gateway forwards to.
	Backend BackendSpec `yaml:"backend"`
}

// GatewaySpec holds the gateway-side parameters.
type GatewaySpec struct {
	// IPName is the reserved static IP resource name.
	IPName string `yaml:"ipName"`

	// Hostname is the public DNS name used for certificate issuance.
	Hostname string `yaml:"hostname"`

	// Port is the port the gateway listens on.
	Port int `yaml:"port"`

	// Image is the gateway container image reference.
	Image string `yaml:"image"`
}

// BackendSpec holds the backend-side parameters.
type BackendSpec struct {
	// Port is the port of the internal backend service.
	Port int `yaml:"port"`
}

// Validate fails fast on any missing required field. Composition assumes
// validated metadata; there is no partial output.
func (m Metadata) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{m.Namespace != "", "namespace"},
		{m.Gateway.IPName != "", "gateway.ipName"},
		{m.Gateway.Hostname != "", "gateway.hostname"},
		{m.Gateway.Port > 0, "gateway.port"},
		{m.Gateway.Image != "", "gateway.image"},
		{m.Backend.Port > 0, "backend.port"},
	}

	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrMissingField, c.field)
		}
	}

	return nil
}
