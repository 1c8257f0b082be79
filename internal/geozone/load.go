package geozone

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads and decodes one fixture file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read fixture: %w", err)
	}

	var set Set
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse fixture %s: %w", filepath.Base(path), err)
	}
	return set, nil
}

// LoadDir loads every .json fixture in dir, keyed by file name.
// Results are returned in sorted file-name order.
func LoadDir(dir string) (map[string]Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fixtures dir: %w", err)
	}

	sets := make(map[string]Set)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		set, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sets[entry.Name()] = set
	}
	return sets, nil
}

// ListFixtures returns the fixture file names in dir, sorted.
func ListFixtures(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fixtures dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
