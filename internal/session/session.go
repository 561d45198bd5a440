// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the application-wide authentication state.
//
// A Manager owns exactly one Session and is the only writer to it. On
// construction it decides the initial authenticated/unauthenticated state
// from stored credentials alone; Login and Logout then move the session
// through its states while keeping credential storage in sync. None of the
// operations return a Go error: every outcome is a Result value, so callers
// never need to distinguish thrown failures from reported ones.
//
// Login, Logout, and CheckAuth are guarded by a single-flight lock: a call
// arriving while another is in flight is rejected with a busy Result rather
// than racing on the shared state.
package session

import (
	"caritas/cli/internal/api"
)

// State names the lifecycle phase of the session.
type State string

const (
	// StateAnonymous is the zero state before the first check has run.
	StateAnonymous State = "anonymous"
	// StateChecking is active while a check, login, or logout is in flight.
	StateChecking State = "checking"
	// StateAuthenticated means stored credentials indicate a live session.
	StateAuthenticated State = "authenticated"
	// StateUnauthenticated means there is no live session.
	StateUnauthenticated State = "unauthenticated"
)

// Session is a snapshot of the current authentication state.
// User is non-nil only when IsAuthenticated is true.
type Session struct {
	User            api.UserRecord
	IsAuthenticated bool
	IsLoading       bool
}

// FailureKind discriminates login failures for the caller.
type FailureKind string

const (
	// FailInvalidCredentials means the backend rejected the identifier/secret.
	FailInvalidCredentials FailureKind = "invalid_credentials"
	// FailNetwork means the backend could not be reached or misbehaved.
	FailNetwork FailureKind = "network_error"
	// FailBusy means another session operation was already in flight.
	FailBusy FailureKind = "busy"
	// FailUnknown covers everything else.
	FailUnknown FailureKind = "unknown"
)

// Result is the outcome of a session operation. Kind and Message are set
// only when OK is false.
type Result struct {
	OK      bool
	Kind    FailureKind
	Message string
}

func success() Result {
	return Result{OK: true}
}

func failure(kind FailureKind, message string) Result {
	return Result{Kind: kind, Message: message}
}
