// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"time"

	apperrors "caritas/cli/internal/errors"
)

// Login posts the identifier/secret pair to the login endpoint.
// Token fields are extracted liberally to be resilient to backend changes;
// the user record is returned verbatim.
func (c *Client) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	body := map[string]string{
		"email":    identifier,
		"password": secret,
	}
	var raw map[string]any
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Login, "", body, &raw); err != nil {
		if apperrors.KindOf(err) == apperrors.InvalidCredentials {
			return nil, apperrors.New(apperrors.InvalidCredentials, "invalid email or password")
		}
		return nil, err
	}

	access := extractAccessToken(raw)
	if access == "" {
		return nil, apperrors.New(apperrors.Unknown, "no access token in response")
	}

	res := &LoginResult{
		AccessToken:  access,
		RefreshToken: extractRefreshToken(raw),
		User:         extractUser(raw),
	}

	// Seed the me-cache so whoami works offline right after login.
	if res.User != nil {
		c.meCache = res.User
		c.meCacheTime = time.Now()
	}
	return res, nil
}

// Logout calls the logout endpoint with the Authorization header.
// It invalidates the access token on the backend and drops the local
// user-record cache.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	err := c.doJSON(ctx, http.MethodPost, c.endpoints.Logout, accessToken, nil, nil)

	// Clear cache on logout regardless of outcome
	c.meCache = nil
	c.meCacheTime = time.Time{}

	return err
}

// GetMe calls the me endpoint with the Authorization header.
// Results are cached in memory to support offline mode and reduce backend
// calls; the cache is served whenever the backend cannot supply a fresh
// record, except on an explicit 401.
func (c *Client) GetMe(ctx context.Context, accessToken string) (UserRecord, error) {
	if c.meCache != nil && time.Since(c.meCacheTime) < meCacheTTL {
		return c.meCache, nil
	}

	var user UserRecord
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Me, accessToken, nil, &user); err != nil {
		if apperrors.KindOf(err) == apperrors.InvalidCredentials {
			return nil, err
		}
		if c.meCache != nil {
			return c.meCache, nil
		}
		return nil, err
	}

	c.meCache = user
	c.meCacheTime = time.Now()
	return user, nil
}

// RefreshToken exchanges a refresh token for a new access token.
// The backend may rotate the refresh token; when it does, the new one is
// returned alongside.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	body := map[string]string{
		"refresh_token": refreshToken,
	}
	var raw map[string]any
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.RefreshToken, "", body, &raw); err != nil {
		if apperrors.KindOf(err) == apperrors.InvalidCredentials {
			return "", "", apperrors.New(apperrors.InvalidCredentials, "refresh token expired or invalid")
		}
		return "", "", err
	}

	newAccess := extractAccessToken(raw)
	if newAccess == "" {
		return "", "", apperrors.New(apperrors.Unknown, "no access token in response")
	}
	return newAccess, extractRefreshToken(raw), nil
}

// extractAccessToken extracts the access token from the response payload.
// It tries multiple common field names to be resilient to different
// response formats.
func extractAccessToken(result map[string]any) string {
	for _, key := range []string{"access_token", "accessToken", "token"} {
		if v, ok := result[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// extractRefreshToken extracts the refresh token from the response payload.
// Returns empty string if no refresh token is present (which is valid - the
// backend may not rotate it).
func extractRefreshToken(result map[string]any) string {
	for _, key := range []string{"refresh_token", "refreshToken"} {
		if v, ok := result[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// extractUser extracts the user record from the response payload.
// Falls back to the whole payload minus token fields when no nested user
// object is present.
func extractUser(result map[string]any) UserRecord {
	if u, ok := result["user"].(map[string]any); ok {
		return UserRecord(u)
	}
	user := UserRecord{}
	for k, v := range result {
		switch k {
		case "access_token", "accessToken", "token", "refresh_token", "refreshToken", "success":
			continue
		}
		user[k] = v
	}
	if len(user) == 0 {
		return nil
	}
	return user
}
