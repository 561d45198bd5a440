// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api provides the HTTP client for the Caritas content backend.
// It defines the contracts the CLI depends on for authentication and for
// managing site content. The backend is an opaque HTTPS deployment; the
// client assumes only the endpoint paths from the configuration and decodes
// responses liberally.
package api

import (
	"context"

	"caritas/cli/internal/content"
)

// UserRecord is the account document returned by the backend. The session
// layer stores and returns it without interpreting its fields; display code
// may pick out common fields such as email.
type UserRecord map[string]any

// LoginResult carries everything a successful login returns.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         UserRecord
}

// API defines the authentication operations the CLI depends on.
// Implementations may call the real backend or provide fakes for tests.
type API interface {
	GetVersion(ctx context.Context) (string, error)
	// Login exchanges an identifier/secret pair for tokens and the user record.
	Login(ctx context.Context, identifier, secret string) (*LoginResult, error)
	// Logout invalidates the current access token on the backend.
	Logout(ctx context.Context, accessToken string) error
	// GetMe retrieves the current user's record from the backend.
	GetMe(ctx context.Context, accessToken string) (UserRecord, error)
	// RefreshToken exchanges a refresh token for a new access token.
	// Returns the new access token and optionally a new refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken string, newRefreshToken string, err error)
}

// ContentAPI defines the admin CRUD operations for site content.
type ContentAPI interface {
	ListPosts(ctx context.Context, accessToken string) ([]content.Post, error)
	GetPost(ctx context.Context, accessToken, id string) (*content.Post, error)
	CreatePost(ctx context.Context, accessToken string, p content.Post) (*content.Post, error)
	UpdatePost(ctx context.Context, accessToken string, p content.Post) (*content.Post, error)
	DeletePost(ctx context.Context, accessToken, id string) error

	ListCategories(ctx context.Context, accessToken string) ([]content.Category, error)
	CreateCategory(ctx context.Context, accessToken string, c content.Category) (*content.Category, error)
	DeleteCategory(ctx context.Context, accessToken, id string) error

	ListAwards(ctx context.Context, accessToken string) ([]content.Award, error)
	CreateAward(ctx context.Context, accessToken string, a content.Award) (*content.Award, error)
	DeleteAward(ctx context.Context, accessToken, id string) error

	ListPublications(ctx context.Context, accessToken string) ([]content.Publication, error)
	CreatePublication(ctx context.Context, accessToken string, p content.Publication) (*content.Publication, error)
	DeletePublication(ctx context.Context, accessToken, id string) error

	GetProfile(ctx context.Context, accessToken string) (*content.Profile, error)
	UpdateProfile(ctx context.Context, accessToken string, p content.Profile) (*content.Profile, error)
}
