// Package snapshot manages point-in-time copies of the rendered manifest
// directory so a bad compose can be rolled back.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skydeck-dev/skydeck/internal/fileutil"
)

const (
	// Prefix is the prefix for snapshot directory names.
	Prefix = "manifests-"
	// DateFormat includes nanoseconds so same-second composes never collide.
	DateFormat = "20060102-150405.000000000"
	// MaxSnapshots is the retention limit.
	MaxSnapshots = 10
)

// Info holds metadata about one snapshot.
type Info struct {
	Name      string
	Path      string
	Created   time.Time
	FileCount int
}

// Create copies srcDir into a new timestamped snapshot under snapDir.
// Returns the snapshot name, or an empty string if srcDir had nothing
// to snapshot.
func Create(snapDir, srcDir string) (string, error) {
	if !dirHasContent(srcDir) {
		return "", nil
	}

	name := Prefix + time.Now().Format(DateFormat)
	path := filepath.Join(snapDir, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	if err := fileutil.CopyDir(srcDir, path); err != nil {
		if cleanupErr := os.RemoveAll(path); cleanupErr != nil {
			return "", fmt.Errorf("copy manifests to snapshot: %w (cleanup also failed: %v)", err, cleanupErr)
		}
		return "", fmt.Errorf("copy manifests to snapshot: %w", err)
	}

	if err := Cleanup(snapDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to cleanup old snapshots: %v\n", err)
	}

	return name, nil
}

// List returns available snapshots under snapDir, newest first.
func List(snapDir string) ([]Info, error) {
	entries, err := os.ReadDir(snapDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshots directory: %w", err)
	}

	var snapshots []Info
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), Prefix) {
			continue
		}

		path := filepath.Join(snapDir, entry.Name())
		created, err := time.Parse(DateFormat, strings.TrimPrefix(entry.Name(), Prefix))
		if err != nil {
			info, statErr := entry.Info()
			if statErr != nil {
				continue
			}
			created = info.ModTime()
		}

		snapshots = append(snapshots, Info{
			Name:      entry.Name(),
			Path:      path,
			Created:   created,
			FileCount: countFiles(path),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Created.After(snapshots[j].Created)
	})

	return snapshots, nil
}

// Restore replaces destDir with the named snapshot. The copy lands in a
// temp directory first and is swapped in with renames so a failure never
// leaves destDir half-written.
func Restore(snapDir, name, destDir string) error {
	snapshotPath := filepath.Join(snapDir, name)
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		return fmt.Errorf("snapshot not found: %s", name)
	}

	restoreID := uuid.New().String()[:8]
	tempDir := destDir + ".restore-temp-" + restoreID
	oldDir := destDir + ".restore-old-" + restoreID

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return fmt.Errorf("create temp restore directory: %w", err)
	}

	if err := fileutil.CopyDir(snapshotPath, tempDir); err != nil {
		os.RemoveAll(tempDir)
		return fmt.Errorf("copy snapshot to temp: %w", err)
	}

	_, statErr := os.Stat(destDir)
	destExists := statErr == nil

	if destExists {
		if err := os.Rename(destDir, oldDir); err != nil {
			os.RemoveAll(tempDir)
			return fmt.Errorf("rename current manifests: %w", err)
		}
	}

	if err := os.Rename(tempDir, destDir); err != nil {
		if destExists {
			if recoverErr := os.Rename(oldDir, destDir); recoverErr != nil {
				os.RemoveAll(tempDir)
				return fmt.Errorf("rename temp to manifests: %w (recovery also failed: %v)", err, recoverErr)
			}
		}
		os.RemoveAll(tempDir)
		return fmt.Errorf("rename temp to manifests: %w", err)
	}

	if destExists {
		os.RemoveAll(oldDir)
	}

	return nil
}

// Cleanup removes snapshots beyond the retention limit. Removal errors are
// collected so one stuck directory does not stop the rest.
func Cleanup(snapDir string) error {
	snapshots, err := List(snapDir)
	if err != nil {
		return err
	}

	if len(snapshots) <= MaxSnapshots {
		return nil
	}

	var errs []string
	for _, snap := range snapshots[MaxSnapshots:] {
		if err := os.RemoveAll(snap.Path); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", snap.Name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to remove %d snapshot(s): %s", len(errs), strings.Join(errs, "; "))
	}

	return nil
}

func dirHasContent(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	return len(entries) > 0
}

func countFiles(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
