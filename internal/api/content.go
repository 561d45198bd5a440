// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"

	"caritas/cli/internal/content"
)

// Content CRUD over the admin endpoints. Collection resources follow the
// usual /resource and /resource/{id} shapes; profile is a singleton.

func (c *Client) ListPosts(ctx context.Context, accessToken string) ([]content.Post, error) {
	var out []content.Post
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Posts, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPost(ctx context.Context, accessToken, id string) (*content.Post, error) {
	var out content.Post
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Posts+"/"+id, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(ctx context.Context, accessToken string, p content.Post) (*content.Post, error) {
	var out content.Post
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Posts, accessToken, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, accessToken string, p content.Post) (*content.Post, error) {
	var out content.Post
	if err := c.doJSON(ctx, http.MethodPut, c.endpoints.Posts+"/"+p.ID, accessToken, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, accessToken, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoints.Posts+"/"+id, accessToken, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context, accessToken string) ([]content.Category, error) {
	var out []content.Category
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Categories, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, accessToken string, cat content.Category) (*content.Category, error) {
	var out content.Category
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Categories, accessToken, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, accessToken, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoints.Categories+"/"+id, accessToken, nil, nil)
}

func (c *Client) ListAwards(ctx context.Context, accessToken string) ([]content.Award, error) {
	var out []content.Award
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Awards, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAward(ctx context.Context, accessToken string, a content.Award) (*content.Award, error) {
	var out content.Award
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Awards, accessToken, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAward(ctx context.Context, accessToken, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoints.Awards+"/"+id, accessToken, nil, nil)
}

func (c *Client) ListPublications(ctx context.Context, accessToken string) ([]content.Publication, error) {
	var out []content.Publication
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Publications, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePublication(ctx context.Context, accessToken string, p content.Publication) (*content.Publication, error) {
	var out content.Publication
	if err := c.doJSON(ctx, http.MethodPost, c.endpoints.Publications, accessToken, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePublication(ctx context.Context, accessToken, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoints.Publications+"/"+id, accessToken, nil, nil)
}

func (c *Client) GetProfile(ctx context.Context, accessToken string) (*content.Profile, error) {
	var out content.Profile
	if err := c.doJSON(ctx, http.MethodGet, c.endpoints.Profile, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, accessToken string, p content.Profile) (*content.Profile, error) {
	var out content.Profile
	if err := c.doJSON(ctx, http.MethodPut, c.endpoints.Profile, accessToken, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
