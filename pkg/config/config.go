// Package config provides configuration management for rolecheck.
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
//
// # Environment Variables
//
// Use ROLECHECK_ prefix with underscores for nesting:
//
//	ROLECHECK_LOG_LEVEL=debug
//	ROLECHECK_CHECK_FORMAT=json
//	ROLECHECK_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete rolecheck configuration.
type Config struct {
	// Check contains settings of role loading and conformance checks.
	Check CheckConfig `mapstructure:"check" yaml:"check"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of source directories parsed concurrently.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CheckConfig contains settings of role loading and conformance checks.
type CheckConfig struct {
	// SourceDirs are directories with Go packages. Their interfaces
	// become roles, their named types become subjects.
	SourceDirs []string `mapstructure:"source_dirs" yaml:"source_dirs"`

	// RoleFiles are YAML files with role and type definitions.
	RoleFiles []string `mapstructure:"role_files" yaml:"role_files"`

	// Format of the check report, 'text' or 'json'.
	Format string `mapstructure:"format" yaml:"format"`

	// LooseNames makes checks ignore parameter names and compare
	// parameter kinds only.
	LooseNames bool `mapstructure:"loose_names" yaml:"loose_names"`

	// WithProgress shows a progress bar while source directories
	// are parsed.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
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
		Check: CheckConfig{
			Format: "text",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
