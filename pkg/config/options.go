package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourceDirs sets directories with Go packages to load roles and
// subjects from. Empty entries are dropped, an empty list is ignored.
func OptSourceDirs(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Check.SourceDirs = ss
		}
	}
}

// OptRoleFiles sets YAML files with role and type definitions.
func OptRoleFiles(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Check.RoleFiles = ss
		}
	}
}

// OptFormat sets the report format.
// Valid values: "text", "json".
func OptFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Check.Format", s) {
			c.Check.Format = s
		}
	}
}

// OptLooseNames sets whether parameter names are ignored by checks.
func OptLooseNames(b bool) Option {
	return func(c *Config) {
		c.Check.LooseNames = b
	}
}

// OptWithProgress sets whether a progress bar is shown during loading.
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.Check.WithProgress = b
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

// OptJobsNumber sets the number of source directories parsed concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
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

func cleanList(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
