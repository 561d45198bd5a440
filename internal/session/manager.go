// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"sync"

	"caritas/cli/internal/auth"
	apperrors "caritas/cli/internal/errors"
	"caritas/cli/internal/logging"
)

// Manager owns the process-wide Session. Construct one at startup with
// NewManager and pass it to whatever needs session state; there is no
// package-level instance.
type Manager struct {
	// flight serializes Login/Logout/CheckAuth. TryLock rejection maps to
	// a busy Result instead of blocking the caller.
	flight sync.Mutex

	// mu protects sess and state for concurrent readers.
	mu    sync.RWMutex
	sess  Session
	state State

	svc *auth.Service
}

// NewManager builds a Manager and runs the initial credential check.
// The check reads credential storage only; no network call happens here.
func NewManager(svc *auth.Service) *Manager {
	m := &Manager{svc: svc, state: StateAnonymous}
	m.flight.Lock()
	defer m.flight.Unlock()
	m.check()
	return m
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Login exchanges the identifier/secret pair for a session. The call never
// panics and never returns a Go error: failures come back as a Result with
// a kind and a human-readable message, and leave the session
// unauthenticated with no user set.
func (m *Manager) Login(ctx context.Context, identifier, secret string) Result {
	if !m.flight.TryLock() {
		return failure(FailBusy, "another session operation is in progress")
	}
	defer m.flight.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.svc.Login(ctx, identifier, secret)
	if err != nil {
		m.setUnauthenticated()
		return loginFailure(err)
	}

	m.mu.Lock()
	m.sess.User = user
	m.sess.IsAuthenticated = true
	m.state = StateAuthenticated
	m.mu.Unlock()
	return success()
}

// Logout ends the session. The backend call is best-effort; local state is
// cleared unconditionally, so the returned Result is a failure only when
// another operation was in flight.
func (m *Manager) Logout(ctx context.Context) Result {
	if !m.flight.TryLock() {
		return failure(FailBusy, "another session operation is in progress")
	}
	defer m.flight.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	m.svc.Logout(ctx)
	m.setUnauthenticated()
	return success()
}

// CheckAuth re-runs the construction-time credential check. Storage access
// only; callable at any time.
func (m *Manager) CheckAuth() Result {
	if !m.flight.TryLock() {
		return failure(FailBusy, "another session operation is in progress")
	}
	defer m.flight.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	m.check()
	return success()
}

// check reads stored credentials and sets the session accordingly.
// Callers must hold the flight lock.
func (m *Manager) check() {
	authenticated := m.svc.IsAuthenticated()
	var next Session
	if authenticated {
		next.IsAuthenticated = true
		if u, ok := m.svc.CurrentUser(); ok {
			next.User = u
		}
	}

	m.mu.Lock()
	m.sess.User = next.User
	m.sess.IsAuthenticated = next.IsAuthenticated
	if authenticated {
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
	m.mu.Unlock()
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.sess.IsLoading = loading
	if loading {
		m.state = StateChecking
	}
	m.mu.Unlock()
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.sess.User = nil
	m.sess.IsAuthenticated = false
	m.state = StateUnauthenticated
	m.mu.Unlock()
}

// loginFailure maps a login error to a caller-facing Result. Messages are
// masked so storage or transport details cannot leak credentials.
func loginFailure(err error) Result {
	msg := logging.Mask(err.Error())
	switch apperrors.KindOf(err) {
	case apperrors.InvalidCredentials:
		return failure(FailInvalidCredentials, "invalid email or password")
	case apperrors.NetworkError:
		return failure(FailNetwork, msg)
	default:
		return failure(FailUnknown, msg)
	}
}
