// Package iofs prepares the file system layout of rolecheck: its
// configuration and log directories and the default config file.
package iofs

import (
	"os"

	"github.com/gnames/rolecheck/pkg/config"
	"github.com/gnames/rolecheck/pkg/templates"
)

// EnsureDirs creates configuration and log directories if they do not
// exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml, unless the file
// already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644)
	if err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteRolesExample writes an example of role definitions to the given
// path. It refuses to overwrite an existing file.
func WriteRolesExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return FileExistsError(path)
	}

	err := os.WriteFile(path, []byte(templates.RolesYAML), 0644)
	if err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
