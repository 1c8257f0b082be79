// Package preflight checks the host for external binaries the CLI shells
// out to or that operators typically use alongside it.
package preflight

import (
	"os/exec"
)

// BinaryCheck names a binary and how to install it.
type BinaryCheck struct {
	Name        string
	Required    bool
	InstallHint string
}

// requiredBinaries must be present for every workflow.
var requiredBinaries = []BinaryCheck{}

// optionalBinaries unlock specific features when present.
var optionalBinaries = []BinaryCheck{
	{
		Name:        "kubectl",
		Required:    false,
		InstallHint: "Install kubectl: https://kubernetes.io/docs/tasks/tools/",
	},
	{
		Name:        "sops",
		Required:    false,
		InstallHint: "Install sops: brew install sops",
	},
	{
		Name:        "age",
		Required:    false,
		InstallHint: "Install age: brew install age",
	},
}

// CheckAll runs every check. Missing required binaries come back as errors,
// missing optional ones as warnings.
func CheckAll() (warnings []string, errors []string) {
	for _, bin := range requiredBinaries {
		if !IsBinaryAvailable(bin.Name) {
			errors = append(errors, bin.Name+": "+bin.InstallHint)
		}
	}
	for _, bin := range optionalBinaries {
		if !IsBinaryAvailable(bin.Name) {
			warnings = append(warnings, bin.Name+": "+bin.InstallHint)
		}
	}
	return warnings, errors
}

// IsBinaryAvailable reports whether name is on PATH.
func IsBinaryAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// AllBinaries returns every configured check.
func AllBinaries() []BinaryCheck {
	return append(append([]BinaryCheck{}, requiredBinaries...), optionalBinaries...)
}
