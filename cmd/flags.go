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
	"github.com/gnames/rolecheck/pkg/config"
	"github.com/spf13/cobra"
)

// addCheckFlags adds persistent flags that control loading of roles
// and running of checks.
func addCheckFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringSliceP("src", "s", nil,
		"directories with Go packages (repeatable)")
	pf.StringSliceP("roles", "r", nil,
		"YAML files with role definitions (repeatable)")
	pf.StringP("format", "f", "text",
		"report format: text or json")
	pf.BoolP("loose-names", "l", false,
		"compare parameter kinds only, ignore parameter names")
	pf.IntP("jobs", "j", 0,
		"number of source directories parsed concurrently")
	pf.BoolP("progress", "p", false,
		"show progress bar while parsing sources")
}

// flagOptions converts explicitly set flags to config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("src") {
		ss, _ := flags.GetStringSlice("src")
		res = append(res, config.OptSourceDirs(ss))
	}
	if flags.Changed("roles") {
		ss, _ := flags.GetStringSlice("roles")
		res = append(res, config.OptRoleFiles(ss))
	}
	if flags.Changed("format") {
		s, _ := flags.GetString("format")
		res = append(res, config.OptFormat(s))
	}
	if flags.Changed("loose-names") {
		b, _ := flags.GetBool("loose-names")
		res = append(res, config.OptLooseNames(b))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if flags.Changed("progress") {
		b, _ := flags.GetBool("progress")
		res = append(res, config.OptWithProgress(b))
	}
	return res
}
