// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"caritas/cli/internal/xdg"
)

// fileBackend persists entries as a JSON object in the XDG state dir.
// Used only when no native keychain backend is available. The file is
// written with 0600 permissions.
type fileBackend struct {
	path string
}

func newFileBackend() *fileBackend {
	dir, err := xdg.StateDir()
	if err != nil {
		// Leave path empty; every operation will fail and the Store
		// reports that as best-effort false/absent.
		return &fileBackend{}
	}
	return &fileBackend{path: filepath.Join(dir, "credentials.json")}
}

func (f *fileBackend) load() (map[string]string, error) {
	if f.path == "" {
		return nil, errors.New("credential file path unavailable")
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt file is treated as empty rather than fatal.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (f *fileBackend) save(entries map[string]string) error {
	if f.path == "" {
		return errors.New("credential file path unavailable")
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *fileBackend) Get(key string) (string, error) {
	entries, err := f.load()
	if err != nil {
		return "", err
	}
	return entries[key], nil
}

func (f *fileBackend) Set(key, value string) error {
	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.save(entries)
}

func (f *fileBackend) Remove(key string) error {
	entries, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.save(entries)
}
