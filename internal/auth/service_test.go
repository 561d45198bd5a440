// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"caritas/cli/internal/api"
	"caritas/cli/internal/credstore"
	apperrors "caritas/cli/internal/errors"
)

// fakeBackend implements api.API for tests.
type fakeBackend struct {
	loginResult  *api.LoginResult
	loginErr     error
	logoutCalls  int
	logoutErr    error
	meResult     api.UserRecord
	meErr        error
	refreshed    string
	refreshErr   error
	refreshCalls int
}

func (f *fakeBackend) GetVersion(ctx context.Context) (string, error) { return "test", nil }

func (f *fakeBackend) Login(ctx context.Context, identifier, secret string) (*api.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeBackend) Logout(ctx context.Context, accessToken string) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeBackend) GetMe(ctx context.Context, accessToken string) (api.UserRecord, error) {
	return f.meResult, f.meErr
}

func (f *fakeBackend) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return "", "", f.refreshErr
	}
	return f.refreshed, "", nil
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	s, err := tok.SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoginStoresCredentials(t *testing.T) {
	creds := credstore.NewScratch()
	be := &fakeBackend{loginResult: &api.LoginResult{
		AccessToken:  "acc",
		RefreshToken: "ref",
		User:         api.UserRecord{"email": "a@b.com"},
	}}
	svc := NewService(be, creds)

	user, err := svc.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user["email"] != "a@b.com" {
		t.Errorf("user = %v", user)
	}

	if !svc.IsAuthenticated() {
		t.Error("IsAuthenticated = false after login")
	}
	if tok, ok := svc.AccessToken(); !ok || tok != "acc" {
		t.Errorf("AccessToken = %q/%v, want acc/true", tok, ok)
	}
	if got, ok := svc.CurrentUser(); !ok || got["email"] != "a@b.com" {
		t.Errorf("CurrentUser = %v/%v", got, ok)
	}
}

func TestLoginFailureLeavesNoCredentials(t *testing.T) {
	creds := credstore.NewScratch()
	be := &fakeBackend{loginErr: apperrors.New(apperrors.InvalidCredentials, "invalid email or password")}
	svc := NewService(be, creds)

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after failed login")
	}
	if creds.Has(credstore.KeyAuthToken) {
		t.Error("token stored despite failed login")
	}
}

func TestLogoutClearsLocalStateEvenWhenRemoteFails(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, "acc")
	creds.Set(credstore.KeyRefreshToken, "ref")
	creds.Set(credstore.KeyUserData, api.UserRecord{"email": "a@b.com"})

	be := &fakeBackend{logoutErr: apperrors.New(apperrors.NetworkError, "backend unreachable")}
	svc := NewService(be, creds)

	svc.Logout(context.Background())

	if be.logoutCalls != 1 {
		t.Errorf("remote logout calls = %d, want 1", be.logoutCalls)
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after logout")
	}
	for _, key := range []string{credstore.KeyAuthToken, credstore.KeyRefreshToken, credstore.KeyUserData} {
		if creds.Has(key) {
			t.Errorf("%s still present after logout", key)
		}
	}
}

func TestIsAuthenticatedExpiredToken(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, expiredJWT(t))
	svc := NewService(&fakeBackend{}, creds)

	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true with expired token")
	}
}

func TestIsAuthenticatedOpaqueToken(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, "opaque-token")
	svc := NewService(&fakeBackend{}, creds)

	// Opaque tokens cannot be checked locally, so they count as live.
	if !svc.IsAuthenticated() {
		t.Error("IsAuthenticated = false with opaque token")
	}
}

func TestValidAccessTokenRefreshesExpired(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, expiredJWT(t))
	creds.Set(credstore.KeyRefreshToken, "ref")

	be := &fakeBackend{refreshed: "acc-new"}
	svc := NewService(be, creds)

	tok, err := svc.ValidAccessToken(context.Background())
	if err != nil {
		t.Fatalf("ValidAccessToken: %v", err)
	}
	if tok != "acc-new" {
		t.Errorf("token = %q, want acc-new", tok)
	}
	if be.refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want 1", be.refreshCalls)
	}
}

func TestValidAccessTokenRefreshFailureClearsSession(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, expiredJWT(t))
	creds.Set(credstore.KeyRefreshToken, "ref")

	be := &fakeBackend{refreshErr: apperrors.New(apperrors.InvalidCredentials, "refresh token expired or invalid")}
	svc := NewService(be, creds)

	if _, err := svc.ValidAccessToken(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if creds.Has(credstore.KeyAuthToken) {
		t.Error("token still present after failed refresh")
	}
}

func TestWhoAmIOfflineFallsBackToStoredUser(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, "acc")
	creds.Set(credstore.KeyUserData, api.UserRecord{"email": "a@b.com"})

	be := &fakeBackend{meErr: apperrors.New(apperrors.NetworkError, "backend unreachable")}
	svc := NewService(be, creds)

	user, ok := svc.WhoAmI(context.Background())
	if !ok {
		t.Fatal("WhoAmI = false, want stored fallback")
	}
	if user["email"] != "a@b.com" {
		t.Errorf("user = %v", user)
	}
}

func TestWhoAmIUnauthorizedWithoutRefreshLogsOut(t *testing.T) {
	creds := credstore.NewScratch()
	creds.Set(credstore.KeyAuthToken, "acc")
	creds.Set(credstore.KeyUserData, api.UserRecord{"email": "a@b.com"})

	be := &fakeBackend{meErr: apperrors.New(apperrors.InvalidCredentials, "unauthorized")}
	svc := NewService(be, creds)

	if _, ok := svc.WhoAmI(context.Background()); ok {
		t.Error("WhoAmI = true with rejected token and no refresh token")
	}
	if creds.Has(credstore.KeyAuthToken) {
		t.Error("token still present after rejected session")
	}
}
