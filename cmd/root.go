/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/internal/iofs"
	"github.com/gnames/rolecheck/internal/iologger"
	app "github.com/gnames/rolecheck/pkg"
	"github.com/gnames/rolecheck/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// A new command tree is built on every call, so tests do not share
// flag state.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "rolecheck",
		Short:   "Rolecheck verifies that types implement declared roles",
		Long: `Rolecheck verifies that types implement declared roles.

A role is a named set of public methods with their parameter lists. For
every method of a role rolecheck generates a case "defines #Method(params)"
and checks that a subject defines the method with the same parameters.

Roles and subjects are loaded from:
  - YAML definition files (--roles), bound under their own names
    (for example Shop::Payments::Gateway);
  - directories with Go packages (--src), where interfaces become roles
    and other named types become subjects, bound as <package>.<Type>.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (ROLECHECK_*)
  3. Config file (~/.config/rolecheck/config.yaml)
  4. Built-in defaults

Examples:
  # Write an example of role definitions
  rolecheck init roles.yaml

  # Show cases generated for a role
  rolecheck list --roles roles.yaml Shop::Payments::Gateway

  # Check a Go type against a Go interface
  rolecheck check --src ./pkg/store store.Store store.memStore`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "rolecheck version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for rolecheck")

	addCheckFlags(rootCmd)

	rootCmd.AddCommand(getInitCmd())
	rootCmd.AddCommand(getListCmd())
	rootCmd.AddCommand(getCheckCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("ROLECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Check configuration
	v.BindEnv("check.source_dirs", "ROLECHECK_CHECK_SOURCE_DIRS")
	v.BindEnv("check.role_files", "ROLECHECK_CHECK_ROLE_FILES")
	v.BindEnv("check.format", "ROLECHECK_CHECK_FORMAT")
	v.BindEnv("check.loose_names", "ROLECHECK_CHECK_LOOSE_NAMES")
	v.BindEnv("check.with_progress", "ROLECHECK_CHECK_WITH_PROGRESS")

	// Log configuration
	v.BindEnv("log.level", "ROLECHECK_LOG_LEVEL")
	v.BindEnv("log.format", "ROLECHECK_LOG_FORMAT")
	v.BindEnv("log.destination", "ROLECHECK_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "ROLECHECK_JOBS_NUMBER")

	v.AutomaticEnv()
}
