package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptFeedURL sets the spreadsheet export endpoint.
func OptFeedURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Feed URL", s) {
			c.Feed.URL = s
		}
	}
}

// OptFeedFormat sets the feed format.
// Valid values: "csv", "xlsx".
func OptFeedFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Feed.Format", s) {
			c.Feed.Format = s
		}
	}
}

// OptFeedTimeoutSec sets the timeout of the fetch attempt in seconds.
func OptFeedTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Feed Timeout", i) {
			c.Feed.TimeoutSec = i
		}
	}
}

// OptFeedDefaultPopularity sets popularity used for rows without one.
func OptFeedDefaultPopularity(i int) Option {
	return func(c *Config) {
		if isValidRange("Feed Default Popularity", i, 1, 100) {
			c.Feed.DefaultPopularity = i
		}
	}
}

// OptNamesPageSize sets the number of names per page.
func OptNamesPageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Names Page Size", i) {
			c.Names.PageSize = i
		}
	}
}

// OptNamesLang sets the preferred display language.
// Valid values: "en", "hi".
func OptNamesLang(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Names.Lang", s) {
			c.Names.Lang = s
		}
	}
}

// OptServerPort sets the port of the HTTP API.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidRange("Server Port", i, 1, 65535) {
			c.Server.Port = i
		}
	}
}

// OptServerAllowedOrigins sets the CORS allow-list.
// Blank entries are dropped.
func OptServerAllowedOrigins(ss []string) Option {
	var origins []string
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s != "" {
			origins = append(origins, s)
		}
	}
	return func(c *Config) {
		if len(origins) > 0 {
			c.Server.AllowedOrigins = origins
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptUseMock makes the catalog skip the feed and use mock data.
// Runtime-only field - not in ToOptions().
func OptUseMock(b bool) Option {
	return func(c *Config) {
		c.UseMock = b
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
