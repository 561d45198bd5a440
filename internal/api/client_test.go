// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caritas/cli/internal/config"
	"caritas/cli/internal/content"
	apperrors "caritas/cli/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, config.DefaultEndpoints(), 5*time.Second), srv
}

func TestLoginSuccess(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "pw" {
			t.Errorf("credentials not forwarded: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "acc-1",
			"refresh_token": "ref-1",
			"user":          map[string]any{"email": "a@b.com", "name": "Admin"},
		})
	}))

	res, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "acc-1" || res.RefreshToken != "ref-1" {
		t.Errorf("tokens = %q/%q, want acc-1/ref-1", res.AccessToken, res.RefreshToken)
	}
	if res.User["email"] != "a@b.com" {
		t.Errorf("user = %v, want email a@b.com", res.User)
	}
}

func TestLoginFlatResponse(t *testing.T) {
	// Backends that return camelCase tokens and a flat user object.
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "acc-2",
			"email":       "a@b.com",
		})
	}))

	res, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "acc-2" {
		t.Errorf("AccessToken = %q, want acc-2", res.AccessToken)
	}
	if res.RefreshToken != "" {
		t.Errorf("RefreshToken = %q, want empty", res.RefreshToken)
	}
	if res.User["email"] != "a@b.com" {
		t.Errorf("user = %v, want flat fields collected", res.User)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad credentials"}`, http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.InvalidCredentials {
		t.Errorf("kind = %v, want InvalidCredentials", kind)
	}
}

func TestLoginNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", config.DefaultEndpoints(), time.Second)

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.NetworkError {
		t.Errorf("kind = %v, want NetworkError", kind)
	}
}

func TestLoginServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.NetworkError {
		t.Errorf("kind = %v, want NetworkError for 5xx", kind)
	}
}

func TestGetMeCaches(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"email": "a@b.com"})
	}))

	for i := 0; i < 3; i++ {
		user, err := c.GetMe(context.Background(), "tok")
		if err != nil {
			t.Fatalf("GetMe: %v", err)
		}
		if user["email"] != "a@b.com" {
			t.Errorf("user = %v", user)
		}
	}
	if calls != 1 {
		t.Errorf("backend calls = %d, want 1 (cache)", calls)
	}
}

func TestGetMeUnauthorizedBypassesCache(t *testing.T) {
	status := http.StatusOK
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "unauthorized", status)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"email": "a@b.com"})
	}))

	if _, err := c.GetMe(context.Background(), "tok"); err != nil {
		t.Fatalf("GetMe: %v", err)
	}

	// Expire the cache and make the backend reject the token.
	c.meCacheTime = time.Now().Add(-meCacheTTL - time.Minute)
	status = http.StatusUnauthorized

	_, err := c.GetMe(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error on 401")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.InvalidCredentials {
		t.Errorf("kind = %v, want InvalidCredentials", kind)
	}
}

func TestRefreshToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["refresh_token"] != "ref-1" {
			t.Errorf("refresh_token = %q", body["refresh_token"])
		}
		json.NewEncoder(w).Encode(map[string]any{"access_token": "acc-2"})
	}))

	access, refresh, err := c.RefreshToken(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if access != "acc-2" {
		t.Errorf("access = %q, want acc-2", access)
	}
	if refresh != "" {
		t.Errorf("refresh = %q, want empty (not rotated)", refresh)
	}
}

func TestPostCRUD(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/posts":
			json.NewEncoder(w).Encode([]content.Post{{ID: "1", Title: "Hello", Slug: "hello"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/posts":
			var p content.Post
			json.NewDecoder(r.Body).Decode(&p)
			p.ID = "2"
			json.NewEncoder(w).Encode(p)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/admin/posts/2":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	ctx := context.Background()

	posts, err := c.ListPosts(ctx, "tok")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello" {
		t.Errorf("posts = %+v", posts)
	}

	created, err := c.CreatePost(ctx, "tok", content.Post{Title: "New", Slug: "new"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if created.ID != "2" {
		t.Errorf("created.ID = %q, want 2", created.ID)
	}

	if err := c.DeletePost(ctx, "tok", "2"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
}

func TestGetVersion(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"version": "1.4.2"})
	}))

	v, err := c.GetVersion(context.Background())
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if v != "1.4.2" {
		t.Errorf("version = %q, want 1.4.2", v)
	}
}
