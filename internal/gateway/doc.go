// Package gateway composes the Kubernetes manifests that deploy the
// remote-ID HTTP gateway.
//
// Composition is a pure data transformation: each builder starts from a
// base template and layers metadata-derived overrides on top with DeepMerge.
// The merge rule is deep-structural override: mapping keys union, nested
// mappings merge recursively, and everything else (sequences, scalars,
// mixed-type conflicts) is replaced wholesale by the override value.
//
// A composed bundle contains four resources:
//
//   - Ingress with a reserved static IP, terminated either by a
//     ManagedCertificate co-produced for the gateway hostname or by a
//     pre-shared certificate referenced by name
//   - ManagedCertificate (managed variant only)
//   - NodePort Service scraped by Prometheus
//   - Deployment running the gateway container in front of the gRPC backend
//
// The package performs no I/O during composition; loading metadata files
// and writing rendered manifests are separate, explicit steps.
package gateway
