package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// Metadata file validation errors.
var (
	// ErrUnsupportedAPIVersion indicates an unknown or unsupported API version.
	ErrUnsupportedAPIVersion = errors.New("unsupported API version")

	// ErrKindMismatch indicates the kind is not GatewayMetadata.
	ErrKindMismatch = errors.New("kind mismatch")
)

// TemplateExt marks metadata files that go through text/template with sprig
// functions before parsing.
const TemplateExt = ".tmpl"

// LoadMetadata reads a gateway metadata file, resolves variables, parses it,
// and validates it. Plain files get ${var} interpolation; *.tmpl files are
// rendered as Go templates with sprig functions and the variables map as the
// root context.
func LoadMetadata(path string, variables map[string]any) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var content string
	if strings.HasSuffix(path, TemplateExt) {
		content, err = renderTemplate(filepath.Base(path), raw, variables)
	} else {
		content, err = Interpolate(string(raw), variables)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve metadata %s: %w", path, err)
	}

	var md Metadata
	if err := yaml.Unmarshal([]byte(content), &md); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	if err := validateHeader(md); err != nil {
		return nil, fmt.Errorf("metadata %s: %w", path, err)
	}
	if err := md.Validate(); err != nil {
		return nil, fmt.Errorf("metadata %s: %w", path, err)
	}

	return &md, nil
}

// validateHeader checks apiVersion and kind when present. Empty values are
// allowed for unversioned legacy files; `skydeck migrate` adds the headers.
func validateHeader(md Metadata) error {
	if md.APIVersion != "" {
		supported := false
		for _, v := range SupportedAPIVersions {
			if md.APIVersion == v {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("%w: %s (supported: %v)", ErrUnsupportedAPIVersion, md.APIVersion, SupportedAPIVersions)
		}
	}

	if md.Kind != "" && md.Kind != KindGatewayMetadata {
		return fmt.Errorf("%w: got %s, expected %s", ErrKindMismatch, md.Kind, KindGatewayMetadata)
	}

	return nil
}

// renderTemplate renders a templated metadata file with sprig functions.
func renderTemplate(name string, raw []byte, variables map[string]any) (string, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	return buf.String(), nil
}

// ListEnvironments returns the environment names available in dir,
// derived from the metadata file names.
func ListEnvironments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("environments directory not found: %s", dir)
		}
		return nil, fmt.Errorf("read environments directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		name = strings.TrimSuffix(name, TemplateExt)
		ext := filepath.Ext(name)
		if ext == ".yml" || ext == ".yaml" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}

	return names, nil
}

// FindEnvironment resolves an environment name to its metadata file path.
func FindEnvironment(dir, name string) (string, error) {
	candidates := []string{
		name + ".yml",
		name + ".yaml",
		name + ".yml" + TemplateExt,
		name + ".yaml" + TemplateExt,
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("environment not found: %s", name)
}

// LoadValues loads a plain YAML values overlay file.
func LoadValues(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parse values file: %w", err)
	}

	return values, nil
}
