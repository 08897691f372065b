// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import "strings"

// dictionaryWords trigger the "common dictionary words" issue.
var dictionaryWords = []string{"admin", "user", "password", "login", "welcome", "secret", "123"}

// genericRecommendations are appended as a block to any password scoring
// below strongScore.
var genericRecommendations = []string{
	"Consider using a passphrase with random words",
	"Use a password manager to generate and store strong passwords",
	"Enable two-factor authentication for additional security",
}

const strongScore = 80

// Issues lists the problems found in password, in a fixed order. a must
// already carry every field except Issues and Recommendations.
func Issues(password string, a Analysis) []string {
	issues := make([]string, 0, 8)
	add := func(cond bool, msg string) {
		if cond {
			issues = append(issues, msg)
		}
	}

	add(a.Length < 8, "Password is too short (minimum 8 characters recommended)")
	add(a.Variety < 3, "Password lacks character variety (use uppercase, lowercase, numbers, and symbols)")
	add(!a.Composition.Uppercase, "Missing uppercase letters")
	add(!a.Composition.Digit, "Missing numbers")
	add(!a.Composition.Special, "Missing special characters")
	add(a.Entropy < 30, "Low password entropy (predictable)")
	add(len(a.Patterns) > 2, "Multiple predictable patterns detected")
	add(a.IsCommon, "Password found in common password databases")
	add(containsAny(strings.ToLower(password), dictionaryWords), "Contains common dictionary words")

	return issues
}

// Recommendations lists improvement suggestions for a, in a fixed order.
func Recommendations(a Analysis) []string {
	recs := make([]string, 0, 10)
	add := func(cond bool, msg string) {
		if cond {
			recs = append(recs, msg)
		}
	}

	add(a.Length < 12, "Increase password length to at least 12 characters")
	add(!a.Composition.Uppercase, "Add uppercase letters (A-Z)")
	add(!a.Composition.Lowercase, "Add lowercase letters (a-z)")
	add(!a.Composition.Digit, "Add numbers (0-9)")
	add(!a.Composition.Special, "Add special characters (!@#$%^&*)")
	add(len(a.Patterns) > 0, "Avoid predictable patterns and sequences")
	add(a.IsCommon, "Use a unique password not found in common lists")
	add(a.Entropy < 50, "Increase randomness by avoiding predictable combinations")

	if a.Score < strongScore {
		recs = append(recs, genericRecommendations...)
	}
	return recs
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
