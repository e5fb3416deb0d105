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
	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/internal/iofs"
	"github.com/spf13/cobra"
)

// getInitCmd returns the init command.
func getInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write an example of role definitions",
		Long: `Write an example of role definitions to FILE (roles.yaml by
default). An existing file is never overwritten.

Examples:
  rolecheck init
  rolecheck init shop-roles.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "roles.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := iofs.WriteRolesExample(path); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Example of role definitions is written to <em>%s</em>", path)
			return nil
		},
	}

	return initCmd
}
