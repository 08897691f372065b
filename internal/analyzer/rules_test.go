// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Composition
	}{
		{"", Composition{}},
		{"abc", Composition{Lowercase: true}},
		{"ABC", Composition{Uppercase: true}},
		{"007", Composition{Digit: true}},
		{" ", Composition{Special: true}},
		{"aB3$", Composition{true, true, true, true}},
		{"é", Composition{Special: true}},
		{"٣", Composition{Special: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.in), "%q", tt.in)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"none", "Xk9#Pm7$", []string{}},
		{"alpha run", "xABCx", []string{PatternSequentialAlpha}},
		{"alpha run at end", "kkxyz", []string{PatternSequentialAlpha}},
		{"reverse alpha ignored", "cba", []string{}},
		{"numeric 890", "x890", []string{PatternSequentialNumeric}},
		{"numeric 901 ignored", "x901", []string{PatternSubstitutionI}},
		{"numeric 012 ignored", "x012", []string{PatternSubstitutionI}},
		{"repeat", "xxx", []string{PatternRepeated}},
		{"repeat needs three", "xx", []string{}},
		{"repeat is case sensitive", "aAa", []string{}},
		{"newline repeat ignored", "\n\n\n", []string{}},
		{"keyboard walks each reported", "QWERTasdf", []string{
			PatternKeyboardPrefix + "qwert",
			PatternKeyboardPrefix + "asdf",
		}},
		{"qazws", "qazwsx", []string{PatternKeyboardPrefix + "qazws"}},
		{"substitution a", "p@ss", []string{PatternSubstitutionA}},
		{"substitution a suppressed", "p@sa", []string{}},
		{"substitution e", "h3llo", []string{PatternSubstitutionE}},
		{"substitution e suppressed by upper E", "h3llE", []string{}},
		{"substitution i", "h!t", []string{PatternSubstitutionI}},
		{"year", "x1987x", []string{PatternSubstitutionI, PatternYear}},
		{"year 20xx", "ab2031", []string{PatternSubstitutionE, PatternSubstitutionI, PatternYear}},
		{"date", "x0931", []string{PatternSubstitutionE, PatternSubstitutionI, PatternDate}},
		{"date invalid month", "x1331", []string{PatternSubstitutionE, PatternSubstitutionI}},
		{"date invalid day", "x0932", []string{PatternSubstitutionE}},
		{"common word", "MyWelcome", []string{PatternCommonWord}},
		{"common word with digits", "admin99", []string{PatternCommonWord}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.in))
		})
	}
}

func TestDetect_RuleOrder(t *testing.T) {
	got := Detect("abc123aaa qwerty 1990 0101 password")
	assert.Equal(t, []string{
		PatternSequentialAlpha,
		PatternSequentialNumeric,
		PatternRepeated,
		PatternKeyboardPrefix + "qwert",
		PatternSubstitutionI,
		PatternYear,
		PatternDate,
		PatternCommonWord,
	}, got)
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, 0.0, Estimate(0, Composition{}, 0, DefaultSpecialCharsetSize))
	assert.Equal(t, 0.0, Estimate(5, Composition{}, 0, DefaultSpecialCharsetSize))
	assert.InDelta(t, 8*math.Log2(26), Estimate(8, Composition{Lowercase: true}, 0, 32), 1e-9)
	assert.InDelta(t, 8*math.Log2(26)-5, Estimate(8, Composition{Lowercase: true}, 1, 32), 1e-9)
	assert.InDelta(t, 12*math.Log2(94), Estimate(12, Composition{true, true, true, true}, 0, 32), 1e-9)
	assert.Equal(t, 0.0, Estimate(3, Composition{Digit: true}, 4, 32), "floored at zero")
}

func TestScore(t *testing.T) {
	all := Composition{true, true, true, true}
	lower := Composition{Lowercase: true}
	tests := []struct {
		name     string
		length   int
		comp     Composition
		entropy  float64
		patterns int
		common   bool
		want     int
	}{
		{"nothing", 0, Composition{}, 0, 0, false, 0},
		{"length 4", 4, lower, 0, 0, false, 10},
		{"length 6", 6, lower, 10, 0, false, 20},
		{"length 8", 8, lower, 20, 0, false, 30},
		{"length 12", 12, lower, 40, 0, false, 50},
		{"entropy 60", 12, all, 60, 0, false, 75},
		{"pattern penalty capped", 12, all, 60, 9, false, 60},
		{"common penalty", 8, lower, 20, 1, true, 7},
		{"long varied bonus", 16, all, 79, 0, false, 85},
		{"high entropy saturates", 16, all, 120, 0, false, 100},
		{"clamped at zero", 3, Composition{Digit: true}, 0, 5, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.length, tt.comp, tt.entropy, tt.patterns, tt.common))
		})
	}
}

func TestIssues_Order(t *testing.T) {
	a := Analysis{
		Length:      5,
		Composition: Composition{Lowercase: true},
		Variety:     1,
		Entropy:     10,
		IsCommon:    true,
		Patterns:    []string{"x", "y", "z"},
	}
	assert.Equal(t, []string{
		"Password is too short (minimum 8 characters recommended)",
		"Password lacks character variety (use uppercase, lowercase, numbers, and symbols)",
		"Missing uppercase letters",
		"Missing numbers",
		"Missing special characters",
		"Low password entropy (predictable)",
		"Multiple predictable patterns detected",
		"Password found in common password databases",
		"Contains common dictionary words",
	}, Issues("LOGIN", a))
}

func TestRecommendations_GenericBlock(t *testing.T) {
	weak := Recommendations(Analysis{Length: 12, Composition: Composition{true, true, true, true}, Entropy: 50, Score: 79})
	assert.Equal(t, genericRecommendations, weak)

	strong := Recommendations(Analysis{Length: 12, Composition: Composition{true, true, true, true}, Entropy: 50, Score: 80})
	assert.Empty(t, strong)
}
