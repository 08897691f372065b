// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/passaudit/internal/analyzer"
)

// Row is one line of a batch result. The password is always masked.
type Row struct {
	Password       string   `json:"password"`
	Score          int      `json:"score"`
	Strength       Strength `json:"strength"`
	Length         int      `json:"length"`
	Entropy        float64  `json:"entropy"`
	CharacterTypes int      `json:"character_types"`
	Common         bool     `json:"common_password"`
	IssuesCount    int      `json:"issues_count"`
}

// Summary aggregates a batch.
type Summary struct {
	Total  int `json:"total"`
	Strong int `json:"strong"`
	Weak   int `json:"weak"`
	Common int `json:"common"`
}

// Header is the column order used by tables and CSV exports.
var Header = []string{"Password", "Score", "Strength", "Length", "Entropy", "Character Types", "Common Password", "Issues Count"}

// NewRows pairs each password with its analysis. Both slices must have the
// same length and order.
func NewRows(passwords []string, results []analyzer.Analysis, m Masker) ([]Row, error) {
	if len(passwords) != len(results) {
		return nil, fmt.Errorf("got %d results for %d passwords", len(results), len(passwords))
	}
	rows := make([]Row, len(passwords))
	for i, a := range results {
		rows[i] = Row{
			Password:       m.Mask(passwords[i]),
			Score:          a.Score,
			Strength:       StrengthOf(a.Score),
			Length:         a.Length,
			Entropy:        round2(a.Entropy),
			CharacterTypes: a.Variety,
			Common:         a.IsCommon,
			IssuesCount:    len(a.Issues),
		}
	}
	return rows, nil
}

// Summarize counts strong, weak and common rows.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.Strength {
		case Strong:
			s.Strong++
		case Weak:
			s.Weak++
		}
		if r.Common {
			s.Common++
		}
	}
	return s
}

// Record renders r in Header order.
func (r Row) Record() []string {
	return []string{
		r.Password,
		strconv.Itoa(r.Score),
		string(r.Strength),
		strconv.Itoa(r.Length),
		strconv.FormatFloat(r.Entropy, 'f', 2, 64),
		strconv.Itoa(r.CharacterTypes),
		yesNo(r.Common),
		strconv.Itoa(r.IssuesCount),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	strongStyle = cellStyle.Foreground(lipgloss.Color("40"))
	mediumStyle = cellStyle.Foreground(lipgloss.Color("208"))
	weakStyle   = cellStyle.Foreground(lipgloss.Color("196"))
)

// Table renders rows as a bordered terminal table with the strength column
// coloured.
func Table(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Header...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 && row >= 0 && row < len(rows) {
				switch rows[row].Strength {
				case Strong:
					return strongStyle
				case Medium:
					return mediumStyle
				default:
					return weakStyle
				}
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(r.Record()...)
	}
	return t.Render()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
