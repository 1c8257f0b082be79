package gateway

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/skydeck-dev/skydeck/internal/fileutil"
)

// isResource reports whether a document is a concrete resource rather than
// a grouping node. Concrete resources carry apiVersion and kind.
func isResource(doc Document) bool {
	_, hasVersion := doc["apiVersion"].(string)
	_, hasKind := doc["kind"].(string)
	return hasVersion && hasKind
}

// Flatten walks a composed document and extracts the concrete resources in
// deterministic (key-sorted) order. Grouping nodes like the managed-cert
// ingress composite are traversed, not emitted.
func Flatten(doc Document) []Document {
	if isResource(doc) {
		return []Document{doc}
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var resources []Document
	for _, k := range keys {
		if child, ok := doc[k].(Document); ok {
			resources = append(resources, Flatten(child)...)
		}
	}

	return resources
}

// MarshalDocument renders a single document as YAML.
func MarshalDocument(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

// RenderBundle renders all resources in a composed bundle as one multi-doc
// YAML stream for dry-run display.
func RenderBundle(bundle Document) (string, error) {
	var parts []string
	for _, res := range Flatten(bundle) {
		data, err := MarshalDocument(res)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(data))
	}

	return strings.Join(parts, "---\n"), nil
}

// WriteBundle writes each resource in a composed bundle to outDir as
// <kind>.yaml, atomically. Returns the written file paths.
func WriteBundle(bundle Document, outDir string) ([]string, error) {
	var written []string
	for _, res := range Flatten(bundle) {
		kind, _ := res["kind"].(string)

		data, err := MarshalDocument(res)
		if err != nil {
			return written, fmt.Errorf("marshal %s: %w", kind, err)
		}

		path := filepath.Join(outDir, strings.ToLower(kind)+".yaml")
		if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
