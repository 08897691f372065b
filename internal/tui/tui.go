// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/logging"
)

// Run starts the interactive analyzer and blocks until the user quits.
func Run(an *analyzer.Analyzer, opts Options) error {
	logging.Debugf("starting interactive analyzer")
	if _, err := tea.NewProgram(newModel(an, opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("TUI run error: %w", err)
	}
	return nil
}
