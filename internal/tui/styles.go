// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal analyzer for Passaudit.
// This file defines the shared lipgloss styles.
package tui // import "github.com/toeirei/passaudit/internal/tui"

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passaudit/internal/report"
)

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorSpecial   = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			PaddingBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	detailsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	statusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorHighlight)
)

// strengthColor returns the bar colour for a strength band.
func strengthColor(s report.Strength) lipgloss.Color {
	switch s {
	case report.Strong:
		return colorSuccess
	case report.Medium:
		return colorSpecial
	default:
		return colorError
	}
}

func strengthStyle(s report.Strength) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(strengthColor(s))
}
