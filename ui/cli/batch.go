// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/logging"
	"github.com/toeirei/passaudit/internal/report"
)

// now is swapped out in tests.
var now = time.Now

func newBatchCmd() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Analyze a list of passwords, one per line",
		Long: `Analyzes every non-blank line of a file (or stdin when the file is "-"
or omitted) and prints a table with masked passwords and a summary.
With --output the results are exported as CSV or JSON. An output path ending
in ".zst" is compressed; an existing directory receives a timestamped file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			passwords, err := readPasswordFile(cmd, src)
			if err != nil {
				return err
			}
			if len(passwords) == 0 {
				return fmt.Errorf("%s", i18n.T("batch.empty"))
			}

			results, err := appAnalyzer.AnalyzeBatch(passwords)
			if err != nil {
				return err
			}
			rows, err := report.NewRows(passwords, results, appMasker)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Table(rows))
			s := report.Summarize(rows)
			fmt.Fprintln(out, i18n.T("batch.summary", s.Total, s.Strong, s.Weak, s.Common))

			if output == "" {
				return nil
			}
			f := report.FormatCSV
			if cmd.Flags().Changed("format") {
				if f, err = report.ParseFormat(format); err != nil {
					return err
				}
			} else {
				f = report.FormatFromPath(output, report.FormatCSV)
			}
			path := resolveOutputPath(output, "password_analysis", string(f))
			if err := report.ExportFile(path, f, rows); err != nil {
				return err
			}
			logging.Infof("exported %d rows to %s", len(rows), path)
			fmt.Fprintln(out, i18n.T("batch.exported", len(rows), path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Export results to this file or directory")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or json")
	return cmd
}

// resolveOutputPath places a timestamped file inside output when output is
// an existing directory.
func resolveOutputPath(output, prefix, ext string) string {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, report.DefaultFileName(prefix, ext, now()))
	}
	return output
}
