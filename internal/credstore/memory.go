// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

// memBackend keeps entries in process memory only. It backs the scratch
// scope: values vanish when the CLI exits.
type memBackend struct {
	entries map[string]string
}

func newMemBackend() *memBackend {
	return &memBackend{entries: map[string]string{}}
}

func (m *memBackend) Get(key string) (string, error) {
	return m.entries[key], nil
}

func (m *memBackend) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *memBackend) Remove(key string) error {
	delete(m.entries, key)
	return nil
}
