package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "rolecheck"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/rolecheck by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/rolecheck/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/rolecheck/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
