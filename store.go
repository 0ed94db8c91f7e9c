package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadPlatforms reads the platforms store document in full.
func LoadPlatforms(path string) (*PlatformsData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading platforms store %s: %w", path, err)
	}

	var store PlatformsData
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parsing platforms store %s: %w", path, err)
	}

	return &store, nil
}

// SavePlatforms rewrites the whole platforms store document, pretty-printed.
// The write goes through a temp file in the same directory and a rename, so
// a failed write never leaves a half-written store behind.
func SavePlatforms(path string, store *PlatformsData) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling platforms store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".platforms-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing platforms store %s: %w", path, err)
	}

	return nil
}

// LoadStudios reads the studios store document in full.
func LoadStudios(path string) (*StudiosData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading studios store %s: %w", path, err)
	}

	var store StudiosData
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parsing studios store %s: %w", path, err)
	}

	return &store, nil
}
