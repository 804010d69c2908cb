// Package jsonfile implements the suite's stores on plain JSON files.
// Each repository keeps its records in memory behind a read-write mutex and
// rewrites its file atomically (temp file + rename) on every mutation, so a
// crash mid-write never leaves a truncated file behind.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readFile decodes the JSON file at path into v. A missing or empty file is
// not an error; v is left untouched.
func readFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeFile atomically replaces the file at path with the JSON encoding of v.
func writeFile(path string, v interface{}, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// pingDir reports whether the directory holding path is accessible.
func pingDir(path string) error {
	_, err := os.Stat(filepath.Dir(path))
	return err
}
