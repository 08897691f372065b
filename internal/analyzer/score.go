// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

const (
	maxScore          = 100
	perClassBonus     = 5
	perPatternPenalty = 3
	maxPatternPenalty = 15
	commonPenalty     = 20
)

// Score combines the analysis inputs into a strength score in [0,100].
// Bonuses and penalties are applied in a fixed order and the total is
// clamped only once at the end.
func Score(length int, c Composition, entropy float64, patternCount int, isCommon bool) int {
	score := 0

	switch {
	case length >= 12:
		score += 25
	case length >= 8:
		score += 15
	case length >= 6:
		score += 10
	case length >= 4:
		score += 5
	}

	variety := c.Variety()
	score += variety * perClassBonus

	switch {
	case entropy >= 60:
		score += 30
	case entropy >= 40:
		score += 20
	case entropy >= 20:
		score += 10
	case entropy >= 10:
		score += 5
	}

	score -= min(patternCount*perPatternPenalty, maxPatternPenalty)

	if isCommon {
		score -= commonPenalty
	}

	if length >= 16 && variety >= 3 {
		score += 10
	}

	if entropy >= 80 {
		score += 15
	}

	return max(0, min(maxScore, score))
}
