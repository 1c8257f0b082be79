package ui

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// captureColorOutput captures output from the color package.
// The color package uses color.Output which defaults to os.Stdout.
func captureColorOutput(fn func()) string {
	oldNoColor := color.NoColor
	oldOutput := color.Output

	color.NoColor = true

	r, w, _ := os.Pipe()
	color.Output = w

	oldStdout := os.Stdout
	os.Stdout = w

	fn()

	w.Close()

	color.Output = oldOutput
	color.NoColor = oldNoColor
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	r.Close()

	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureColorOutput(func() {
		Success("composed %d manifests", 4)
	})
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "composed 4 manifests")
}

func TestError(t *testing.T) {
	output := captureColorOutput(func() {
		Error("validation failed")
	})
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "validation failed")
}

func TestWarning(t *testing.T) {
	output := captureColorOutput(func() {
		Warning("no snapshots found")
	})
	assert.Contains(t, output, "⚠")
	assert.Contains(t, output, "no snapshots found")
}

func TestInfo(t *testing.T) {
	output := captureColorOutput(func() {
		Info("snapshot created: %s", "manifests-1")
	})
	assert.Contains(t, output, "snapshot created: manifests-1")
}

func TestHeader(t *testing.T) {
	output := captureColorOutput(func() {
		Header("Environments:")
	})
	assert.Contains(t, output, "Environments:")
}

func TestItem(t *testing.T) {
	output := captureColorOutput(func() {
		Item("prod")
	})
	assert.Contains(t, output, "  - prod")
}
