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
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/internal/ioreport"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check ROLE SUBJECT",
		Short: "Check that a subject implements a role",
		Long: `Check that a subject implements a role.

Both ROLE and SUBJECT are looked up among loaded definitions. Segments
of a path are separated by '::' or '.'. For every method declared by
the role the subject must define a public method with the same
parameter list. Methods may come from the subject's parents.

The command exits with non-zero status if any case fails.

Examples:
  rolecheck check --roles roles.yaml \
    Shop::Payments::Gateway Shop::Payments::Stripe

  rolecheck check --src ./internal/store --format json \
    store.Store store.memStore`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, args[0], args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return checkCmd
}

func runCheck(cmd *cobra.Command, roleID, subjectID string) error {
	ns, err := loadNamespace(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	r, err := ns.Resolve(roleID)
	if err != nil {
		return err
	}

	subject, ok := ns.Lookup(subjectID)
	if !ok {
		return SubjectNotFoundError(subjectID)
	}

	rep := ioreport.New(r.Name, subject.Name)
	var intr conformance.TypeIntrospector
	for _, v := range conformance.Generate(r, caseOptions(cfg)...) {
		rep.Add(v, v.Check(intr, subject))
	}
	rep.Finish()

	if err = rep.Write(cmd.OutOrStdout(), cfg.Check.Format); err != nil {
		return err
	}

	slog.Info("Conformance check finished",
		"run_id", rep.RunID,
		"role", rep.Role,
		"subject", rep.Subject,
		"passed", rep.Passed,
		"failed", rep.Failed,
	)

	if rep.Failed > 0 {
		return ConformanceError(rep.Role, rep.Subject, rep.Failed)
	}
	return nil
}
