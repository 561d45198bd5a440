// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package content defines the records managed through the admin console:
// posts, categories, awards, publications, and the organization profile.
// The backend stores these as opaque JSON documents; the shapes here cover
// the fields the CLI reads and writes.
package content

import "time"

// Post is a blog entry on the public site.
type Post struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CategoryID  string     `json:"category_id,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Category groups posts on the public site.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Award is a recognition listed on the portfolio page.
type Award struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Issuer string `json:"issuer,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// Publication is an article or book listed on the portfolio page.
type Publication struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Publisher string `json:"publisher,omitempty"`
	Year      int    `json:"year,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Profile is the singleton organization profile shown on the public site.
type Profile struct {
	Name    string `json:"name"`
	Mission string `json:"mission,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	About   string `json:"about,omitempty"`
}
