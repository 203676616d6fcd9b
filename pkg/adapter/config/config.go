// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the dashboard settings. Settings are read from
// an optional YAML file first and then overlaid with GDASH_*
// environment variables, so a deployment can run from environment
// alone. Unset settings fall back to built-in defaults and the merged
// result is validated before use.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"gopkg.in/yaml.v3"
)

// Default values for the optional settings.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultPageSize = 10
	DefaultDebounce = 500 * time.Millisecond
)

// API contains the remote backend connection settings. All dashboard
// data lives behind this one REST API; there is no local persistence.
type API struct {
	// BaseURL locates the backend API root, e.g.
	// https://api.example.com/api/v1 without a trailing slash.
	BaseURL string `yaml:"base-url" env:"GDASH_API_BASE_URL"`
	// Token, if set, is sent as a bearer token with every request.
	Token string `yaml:"token" env:"GDASH_API_TOKEN"`
	// Timeout bounds each individual request round-trip.
	Timeout Duration `yaml:"timeout" env:"GDASH_API_TIMEOUT"`
}

// Lists contains the table view settings.
type Lists struct {
	// PageSize is the initial records-per-page of the listings.
	PageSize int `yaml:"page-size" env:"GDASH_PAGE_SIZE"`
	// Debounce is how long the search input must stay quiet before
	// a fetch is triggered.
	Debounce Duration `yaml:"debounce" env:"GDASH_SEARCH_DEBOUNCE"`
}

// Log contains the logging settings.
type Log struct {
	Level  string `yaml:"level" env:"GDASH_LOG_LEVEL"`   // debug, info, warn, or error
	Format string `yaml:"format" env:"GDASH_LOG_FORMAT"` // text or json
}

// Config aggregates all settings which are required by different
// parts of the project, such as the gateway adapter or use cases.
// It is implemented with primitive fields and locally defined
// structs, not models which are defined in lower layers, so it can
// change freely without affecting them.
type Config struct {
	API   API   `yaml:"api"`
	Lists Lists `yaml:"lists"`
	Log   Log   `yaml:"log"`
}

// Load reads the settings from the YAML file at `path`, if it exists,
// overlays them with environment variables, fills defaults, and
// validates the result. A missing file is not an error (environment
// variables may carry all required settings), but an unreadable or
// malformed file is.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("decoding %q: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// fall through to the environment
		default:
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	return c, nil
}

func (c *Config) fillDefaults() {
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultTimeout)
	}
	if c.Lists.PageSize == 0 {
		c.Lists.PageSize = DefaultPageSize
	}
	if c.Lists.Debounce == 0 {
		c.Lists.Debounce = Duration(DefaultDebounce)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks that the merged settings are complete and
// consistent. It never mutates `c`.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		return errors.New("api.base-url is required")
	case err != nil:
		return fmt.Errorf("api.base-url: %w", err)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf(
			"api.base-url scheme (%q) is not http or https", u.Scheme,
		)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout (%v) is not positive", c.API.Timeout)
	}
	if c.Lists.PageSize < 1 {
		return fmt.Errorf(
			"lists.page-size (%d) is not positive", c.Lists.PageSize,
		)
	}
	if c.Lists.Debounce <= 0 {
		return fmt.Errorf(
			"lists.debounce (%v) is not positive", c.Lists.Debounce,
		)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level (%q) is not recognized", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format (%q) is not recognized", c.Log.Format)
	}
	return nil
}
