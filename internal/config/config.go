// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to credential storage.
// Environment variables override values from the config file.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"caritas/cli/internal/xdg"
)

// DefaultBaseURL is the production content backend.
const DefaultBaseURL = "https://script.caritas.ngo"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel  string    `json:"log_level" env:"CARITAS_LOG_LEVEL"`
	API       APIConfig `json:"api"`
	Endpoints Endpoints `json:"endpoints"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL        string `json:"base_url" env:"CARITAS_API_BASE_URL"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"CARITAS_API_TIMEOUT_SECONDS"`
}

// Endpoints lists the REST paths exposed by the content backend.
// The backend itself is opaque; only these paths are assumed.
type Endpoints struct {
	Login        string `json:"login"`
	Logout       string `json:"logout"`
	RefreshToken string `json:"token_refresh"`
	Me           string `json:"account_whoami"`
	Health       string `json:"health"`
	Version      string `json:"version"`
	Posts        string `json:"posts"`
	Categories   string `json:"categories"`
	Awards       string `json:"awards"`
	Publications string `json:"publications"`
	Profile      string `json:"profile"`
}

// DefaultEndpoints returns the production endpoint paths.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:        "/api/admin/login",
		Logout:       "/api/admin/logout",
		RefreshToken: "/api/admin/refresh-token",
		Me:           "/api/admin/me",
		Health:       "/api/health",
		Version:      "/api/version",
		Posts:        "/api/admin/posts",
		Categories:   "/api/admin/categories",
		Awards:       "/api/admin/awards",
		Publications: "/api/admin/publications",
		Profile:      "/api/admin/profile",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file yields defaults. Environment
// variables are applied on top of whatever the file provided.
func Load() (Config, error) {
	c := defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return c, err
		}
	} else if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	c.Endpoints = fillEndpoints(c.Endpoints)
	return c, nil
}

// fillEndpoints substitutes default paths for any endpoint the config file
// left empty, so a partial endpoints block stays usable.
func fillEndpoints(e Endpoints) Endpoints {
	d := DefaultEndpoints()
	if e.Login == "" {
		e.Login = d.Login
	}
	if e.Logout == "" {
		e.Logout = d.Logout
	}
	if e.RefreshToken == "" {
		e.RefreshToken = d.RefreshToken
	}
	if e.Me == "" {
		e.Me = d.Me
	}
	if e.Health == "" {
		e.Health = d.Health
	}
	if e.Version == "" {
		e.Version = d.Version
	}
	if e.Posts == "" {
		e.Posts = d.Posts
	}
	if e.Categories == "" {
		e.Categories = d.Categories
	}
	if e.Awards == "" {
		e.Awards = d.Awards
	}
	if e.Publications == "" {
		e.Publications = d.Publications
	}
	if e.Profile == "" {
		e.Profile = d.Profile
	}
	return e
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

func defaults() Config {
	return Config{
		LogLevel: "info",
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 10,
		},
		Endpoints: DefaultEndpoints(),
	}
}
