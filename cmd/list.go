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

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list ROLE",
		Short: "List conformance cases generated for a role",
		Long: `List conformance cases generated for a role.

Every public method declared directly by the role produces one case,
labeled "defines #Method(params)". Methods inherited from parent roles
do not produce cases.

Examples:
  rolecheck list --roles roles.yaml Shop::Payments::Gateway
  rolecheck list --src ./internal/store store.Store`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runList(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return listCmd
}

func runList(cmd *cobra.Command, roleID string) error {
	ns, err := loadNamespace(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	r, err := ns.Resolve(roleID)
	if err != nil {
		return err
	}

	cases := conformance.Generate(r, caseOptions(cfg)...)
	labels := gnlib.Map(cases, func(c conformance.Case) string {
		return c.Label
	})

	out := cmd.OutOrStdout()
	if cfg.Check.Format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		data, err := enc.Encode(map[string]any{
			"role":  r.Name,
			"cases": labels,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s interface\n", r.Name)
	for _, v := range labels {
		fmt.Fprintf(out, "  %s\n", v)
	}
	if len(labels) == 0 {
		gn.Info("Role <em>%s</em> declares no public methods", r.Name)
	}
	return nil
}
