// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides authentication services for the Caritas CLI.
// It pairs the backend API client with credential storage: network login and
// logout go through the backend, while the is-authenticated and current-user
// checks are synchronous reads of stored credentials that never touch the
// network. Tokens and the cached user record live in the OS keychain.
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"caritas/cli/internal/api"
	"caritas/cli/internal/credstore"
	apperrors "caritas/cli/internal/errors"
	"caritas/cli/internal/token"
)

var verboseAuth = os.Getenv("CARITAS_VERBOSE") == "1"

// Service centralizes authentication-related operations against the backend
// and local credential storage.
type Service struct {
	be    api.API
	creds *credstore.Store
}

// NewService constructs an auth Service over the given backend client and
// persistent credential store.
func NewService(be api.API, creds *credstore.Store) *Service {
	return &Service{be: be, creds: creds}
}

// IsAuthenticated reports whether stored credentials indicate a live session.
// This is a local check only: the token must be present and, when it is a
// JWT, not past its exp claim. No network call happens here.
func (s *Service) IsAuthenticated() bool {
	tok, ok := s.AccessToken()
	if !ok {
		return false
	}
	return !token.Expired(tok, time.Now())
}

// CurrentUser returns the cached user record from credential storage.
// Reports false when no record is stored or the stored record fails to parse.
func (s *Service) CurrentUser() (api.UserRecord, bool) {
	var user api.UserRecord
	if !s.creds.Get(credstore.KeyUserData, &user) {
		return nil, false
	}
	return user, true
}

// AccessToken returns the stored access token without validation.
func (s *Service) AccessToken() (string, bool) {
	var tok string
	if !s.creds.Get(credstore.KeyAuthToken, &tok) || tok == "" {
		return "", false
	}
	return tok, true
}

// Login performs the network login and persists the resulting credentials.
// The access token must be stored for the session to count as authenticated,
// so a failed token write fails the login; the refresh token and user record
// are saved best-effort.
func (s *Service) Login(ctx context.Context, identifier, secret string) (api.UserRecord, error) {
	res, err := s.be.Login(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}

	if !s.creds.Set(credstore.KeyAuthToken, res.AccessToken) {
		return nil, apperrors.New(apperrors.StorageFailure, "could not persist access token")
	}
	if res.RefreshToken != "" {
		_ = s.creds.Set(credstore.KeyRefreshToken, res.RefreshToken)
	}
	if res.User != nil {
		_ = s.creds.Set(credstore.KeyUserData, res.User)
	}

	if verboseAuth {
		fmt.Printf("[DEBUG] auth.Login: credentials stored for %v\n", res.User["email"])
	}
	return res.User, nil
}

// Logout performs remote logout (best-effort) and clears local credentials.
// Local state is cleared even when the backend call fails, so logout cannot
// fail from the caller's perspective.
func (s *Service) Logout(ctx context.Context) {
	if tok, ok := s.AccessToken(); ok {
		if err := s.be.Logout(ctx, tok); err != nil && verboseAuth {
			fmt.Printf("[DEBUG] auth.Logout: remote logout failed: %v\n", err)
		}
	}
	s.creds.ClearCredentials()
}

// ResetLocalAuth clears local credentials without any remote call.
func (s *Service) ResetLocalAuth() {
	s.creds.ClearCredentials()
}

// RefreshAccessToken attempts to refresh the access token using the stored
// refresh token. On success the new tokens replace the stored ones.
// Returns true if refresh was successful, false otherwise.
func (s *Service) RefreshAccessToken(ctx context.Context) (bool, error) {
	var refresh string
	if !s.creds.Get(credstore.KeyRefreshToken, &refresh) || refresh == "" {
		return false, nil
	}

	newAccess, newRefresh, err := s.be.RefreshToken(ctx, refresh)
	if err != nil {
		return false, err
	}

	if !s.creds.Set(credstore.KeyAuthToken, newAccess) {
		return false, apperrors.New(apperrors.StorageFailure, "could not persist access token")
	}
	if newRefresh != "" {
		_ = s.creds.Set(credstore.KeyRefreshToken, newRefresh)
	}
	return true, nil
}

// ValidAccessToken returns an access token expected to be accepted by the
// backend, refreshing a locally expired one first. When both tokens are
// expired, local credentials are cleared and an error is returned.
func (s *Service) ValidAccessToken(ctx context.Context) (string, error) {
	tok, ok := s.AccessToken()
	if !ok {
		return "", apperrors.New(apperrors.InvalidCredentials, "not logged in")
	}
	if !token.Expired(tok, time.Now()) {
		return tok, nil
	}

	if refreshed, _ := s.RefreshAccessToken(ctx); refreshed {
		if newTok, ok := s.AccessToken(); ok {
			return newTok, nil
		}
	}

	// Refresh failed - both tokens expired, session is over.
	s.ResetLocalAuth()
	return "", apperrors.New(apperrors.InvalidCredentials, "session expired, please log in again")
}

// WhoAmI validates the current session and returns the user record when
// valid. It prefers the backend's me endpoint (which caches), attempts a
// token refresh on a 401, and falls back to the stored user record when
// offline.
func (s *Service) WhoAmI(ctx context.Context) (api.UserRecord, bool) {
	tok, ok := s.AccessToken()
	if !ok {
		return nil, false
	}

	user, err := s.be.GetMe(ctx, tok)
	if err == nil && user != nil {
		_ = s.creds.Set(credstore.KeyUserData, user)
		return user, true
	}

	if apperrors.KindOf(err) == apperrors.InvalidCredentials {
		if refreshed, _ := s.RefreshAccessToken(ctx); refreshed {
			if newTok, ok := s.AccessToken(); ok {
				if user, err := s.be.GetMe(ctx, newTok); err == nil && user != nil {
					_ = s.creds.Set(credstore.KeyUserData, user)
					return user, true
				}
			}
		} else {
			// Both tokens expired, log out locally.
			s.ResetLocalAuth()
			return nil, false
		}
	}

	// Offline or backend trouble: fall back to the stored record.
	return s.CurrentUser()
}
