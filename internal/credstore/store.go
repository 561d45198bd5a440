// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore provides centralized, thread-safe credential storage for caritas.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving sensitive data such as
// authentication tokens and the cached user record.
//
// Two scopes are offered: a persistent store backed by the OS keychain (with a
// private file fallback when no native keychain is available) and a scratch
// store that lives only for the lifetime of the process. All operations are
// best-effort: a failed read, write, or parse is reported as absence or a
// false result, never as an error to the caller.
package credstore

import (
	"encoding/json"
	"sync"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "caritas"

// Keys used for storing secrets in credential storage. Each entry is
// independent; there is no transactional guarantee across them.
const (
	KeyAuthToken    = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyUserData     = "user_data"
)

// backend is the minimal contract a storage scope must satisfy.
type backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Store provides thread-safe, best-effort access to one storage scope.
// Values are serialized to JSON text on write and parsed on read.
type Store struct {
	mu sync.RWMutex
	b  backend
}

// Open returns the persistent credential store. It prefers a native OS
// keychain backend and falls back to a private file in the XDG state dir
// when no keychain is available. Open itself never fails; an unusable
// filesystem simply yields a store whose operations report failure.
func Open() *Store {
	if b, err := openRing(); err == nil {
		return &Store{b: b}
	}
	return &Store{b: newFileBackend()}
}

// NewScratch returns a process-lifetime scratch store for ephemeral values.
func NewScratch() *Store {
	return &Store{b: newMemBackend()}
}

func newWithBackend(b backend) *Store {
	return &Store{b: b}
}

// Set serializes v and writes it under key. Reports false on any failure.
func (s *Store) Set(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Set(key, string(data)) == nil
}

// Get reads key and parses the stored text into v. A missing entry and an
// entry that fails to parse are indistinguishable: both report false.
func (s *Store) Get(key string, v any) bool {
	s.mu.RLock()
	raw, err := s.b.Get(key)
	s.mu.RUnlock()
	if err != nil || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

// Has reports whether a non-empty entry exists under key.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := s.b.Get(key)
	return err == nil && raw != ""
}

// Remove deletes key. Reports false on failure; removing a missing key
// is a success.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Remove(key) == nil
}

// ClearCredentials removes the token, refresh token, and cached user record
// as a single logical operation. Individual removal failures are ignored;
// every key is attempted regardless.
func (s *Store) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.b.Remove(KeyAuthToken)
	_ = s.b.Remove(KeyRefreshToken)
	_ = s.b.Remove(KeyUserData)
}
