// Package config provides configuration management for NameNest.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Feed: url, format, timeout_sec, default_popularity
//   - Names: page_size, lang
//   - Server: port, allowed_origins
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - UseMock (skip the network and load the fallback catalog)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NAMENEST_ prefix with underscores for nesting:
//
//	NAMENEST_FEED_URL=https://example.com/names.csv
//	NAMENEST_FEED_FORMAT=csv
//	NAMENEST_SERVER_PORT=8080
//	NAMENEST_LOG_LEVEL=info
//
// A .env file in the working directory is loaded before the environment
// is read.
package config

// DefaultFeedURL is the public CSV export of the NameNest spreadsheet.
const DefaultFeedURL = "https://docs.google.com/spreadsheets/d/" +
	"1E9CJZq9e767GKxyua2KT0kaLBnySEQvoBfR_n52JVCc/gviz/tq?tqx=out:csv"

// Config represents the complete NameNest configuration.
type Config struct {
	// Feed contains settings of the remote spreadsheet feed.
	Feed FeedConfig `mapstructure:"feed" yaml:"feed"`

	// Names contains settings for browsing the name directory.
	Names NamesConfig `mapstructure:"names" yaml:"names"`

	// Server contains settings of the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// UseMock skips the feed entirely and loads generated mock data.
	UseMock bool

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// FeedConfig describes where and how the name feed is retrieved.
type FeedConfig struct {
	// URL is the spreadsheet export endpoint.
	URL string `mapstructure:"url" yaml:"url"`

	// Format of the exported feed: "csv" or "xlsx".
	Format string `mapstructure:"format" yaml:"format"`

	// TimeoutSec bounds the single fetch attempt.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// DefaultPopularity is used for rows with missing or non-numeric
	// popularity. Must be within [1,100].
	DefaultPopularity int `mapstructure:"default_popularity" yaml:"default_popularity"`
}

// NamesConfig contains settings for browsing names.
type NamesConfig struct {
	// PageSize is the number of names shown per page.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// Lang is the preferred display language: "en" or "hi".
	Lang string `mapstructure:"lang" yaml:"lang"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	// Port the HTTP API listens on.
	Port int `mapstructure:"port" yaml:"port"`

	// AllowedOrigins is the CORS allow-list. Empty means "*".
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Feed: FeedConfig{
			URL:               DefaultFeedURL,
			Format:            "csv",
			TimeoutSec:        10,
			DefaultPopularity: 50,
		},
		Names: NamesConfig{
			PageSize: 20,
			Lang:     "en",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			Destination: "file",
		},
	}

	return res
}
