// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/report"
)

func newReportCmd() *cobra.Command {
	var output string
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "report [password]",
		Short: "Generate a security assessment report for a password",
		Long: `Writes a plain-text security assessment report. The report never
contains the password itself. With --output the report is written to a file
(compressed when the path ends in ".zst"); an existing directory receives a
timestamped file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFromArgs(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			defer pw.Zero()
			res, err := appAnalyzer.Analyze(pw.Reveal())
			if err != nil {
				return err
			}
			v, _, _ := resolveBuildVersion(nil)
			text := report.SecurityReport(res, now(), v)

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			path := resolveOutputPath(output, "security_report", "txt")
			if err := report.WriteTextFile(path, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("report.written", path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to this file or directory")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	return cmd
}
