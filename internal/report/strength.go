// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import "github.com/toeirei/passaudit/internal/i18n"

// Strength is the coarse label shown next to a score.
type Strength string

const (
	Strong Strength = "Strong"
	Medium Strength = "Medium"
	Weak   Strength = "Weak"
)

// Score thresholds shared by strength labels and risk levels.
const (
	StrongThreshold = 80
	MediumThreshold = 60
)

// StrengthOf maps a score to its label.
func StrengthOf(score int) Strength {
	switch {
	case score >= StrongThreshold:
		return Strong
	case score >= MediumThreshold:
		return Medium
	default:
		return Weak
	}
}

// RiskLevel maps a score to the report's risk level.
func RiskLevel(score int) string {
	switch StrengthOf(score) {
	case Strong:
		return "LOW"
	case Medium:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}

// Label returns the strength name in the active language.
func (s Strength) Label() string {
	switch s {
	case Strong:
		return i18n.T("strength.strong")
	case Medium:
		return i18n.T("strength.medium")
	default:
		return i18n.T("strength.weak")
	}
}
