package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "namenest"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/namenest by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for persistent user data.
// Returns ~/.local/share/namenest by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/namenest/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/namenest/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// FavoritesFilePath returns the path of the favorites database.
// Returns ~/.local/share/namenest/favorites.db by default.
func FavoritesFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "favorites.db")
}
