// Package store persists the pipeline's two durable artifacts: the seen-set
// between runs and the per-run new-product export.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shopwatch/internal/detect"
)

// LoadSeenSet reads the seen-set from path. A missing file means a first run
// and yields an empty set. A file that exists but cannot be decoded is an
// error: treating it as empty would re-report every product ever seen, so
// the run aborts and a human fixes or removes the file.
func LoadSeenSet(path string) (detect.SeenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return detect.NewSeenSet(), nil
		}
		return nil, fmt.Errorf("failed to read seen store %s: %w", path, err)
	}

	if len(data) == 0 {
		return detect.NewSeenSet(), nil
	}

	var set detect.SeenSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("seen store %s is corrupt, refusing to continue: %w", path, err)
	}
	if set == nil {
		set = detect.NewSeenSet()
	}

	return set, nil
}

// SaveSeenSet writes the seen-set to path. The write goes to a temp file in
// the same directory first and is renamed into place, so a crash mid-write
// never leaves a truncated store behind.
func SaveSeenSet(path string, set detect.SeenSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode seen store: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write seen store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close seen store temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace seen store %s: %w", path, err)
	}

	return nil
}
