// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/report"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(20)
)

func newCheckCmd() *cobra.Command {
	var fromStdin, asJSON bool
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Analyze a single password",
		Long: `Analyzes one password and prints its score, entropy, composition,
detected patterns, issues and recommendations.
Without an argument the password is read from a hidden prompt, or from the
first line of stdin when stdin is not a terminal or --stdin is given.`,
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
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			writeAnalysis(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the analysis as JSON")
	return cmd
}

// writeAnalysis prints a human-readable analysis with localized labels.
func writeAnalysis(w io.Writer, a analyzer.Analysis) {
	strength := report.StrengthOf(a.Score)
	field := func(key string, value string) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(i18n.T(key)), value)
	}

	field("check.score", fmt.Sprintf("%d/100 (%s)", a.Score, strength.Label()))
	field("check.length", fmt.Sprintf("%d", a.Length))
	field("check.entropy", fmt.Sprintf("%.2f bits", a.Entropy))
	field("check.variety", fmt.Sprintf("%d/4 %s", a.Variety, compositionSummary(a.Composition)))
	field("check.common", yesNo(a.IsCommon))

	list := func(key string, items []string, numbered bool) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s\n", headingStyle.Render(i18n.T(key)))
		for i, item := range items {
			if numbered {
				fmt.Fprintf(w, "  %d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(w, "  • %s\n", item)
			}
		}
	}
	list("check.patterns", a.Patterns, false)
	list("check.issues", a.Issues, false)
	list("check.recommendations", a.Recommendations, true)
}

// compositionSummary lists the classes present, e.g. "(lowercase, numbers)".
func compositionSummary(c analyzer.Composition) string {
	var parts []string
	if c.Lowercase {
		parts = append(parts, i18n.T("class.lowercase"))
	}
	if c.Uppercase {
		parts = append(parts, i18n.T("class.uppercase"))
	}
	if c.Digit {
		parts = append(parts, i18n.T("class.numbers"))
	}
	if c.Special {
		parts = append(parts, i18n.T("class.special"))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func yesNo(b bool) string {
	if b {
		return i18n.T("common.yes")
	}
	return i18n.T("common.no")
}
