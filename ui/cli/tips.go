// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/internal/tips"
)

func newTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "tips [section]",
		Short:     "Show password security education content",
		Long:      "Shows best practices, common mistakes, attack methods, tools, entropy and compliance guidance.\nSections: " + strings.Join(tips.Sections, ", "),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: tips.Sections,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tips.Load()
			if err != nil {
				return err
			}
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			out, err := t.Render(section)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
