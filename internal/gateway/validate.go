package gateway

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Validation errors for composed documents.
var (
	// ErrNotAResource indicates a document without apiVersion/kind.
	ErrNotAResource = errors.New("not a resource document")

	// ErrUnexpectedKind indicates a resource kind the composer never produces.
	ErrUnexpectedKind = errors.New("unexpected resource kind")

	// ErrMissingName indicates a resource without metadata.name.
	ErrMissingName = errors.New("missing metadata.name")
)

// composedKinds are the only resource kinds the composer produces.
var composedKinds = map[string]bool{
	"Ingress":            true,
	"ManagedCertificate": true,
	"Service":            true,
	"Deployment":         true,
}

// ValidateResource checks that a document is a well-formed resource the
// downstream apply step will accept: parseable apiVersion, a kind the
// composer produces, and a named metadata block.
func ValidateResource(doc Document) error {
	apiVersion, _ := doc["apiVersion"].(string)
	kind, _ := doc["kind"].(string)
	if apiVersion == "" || kind == "" {
		return ErrNotAResource
	}

	if _, err := schema.ParseGroupVersion(apiVersion); err != nil {
		return fmt.Errorf("parse apiVersion %q: %w", apiVersion, err)
	}

	if !composedKinds[kind] {
		return fmt.Errorf("%w: %s", ErrUnexpectedKind, kind)
	}

	meta, _ := doc["metadata"].(Document)
	if name, _ := meta["name"].(string); name == "" {
		return fmt.Errorf("%w on %s", ErrMissingName, kind)
	}

	return nil
}

// ValidateBundle validates every concrete resource in a composed bundle.
func ValidateBundle(bundle Document) error {
	resources := Flatten(bundle)
	if len(resources) == 0 {
		return ErrNotAResource
	}

	for _, res := range resources {
		if err := ValidateResource(res); err != nil {
			return err
		}
	}

	return nil
}
