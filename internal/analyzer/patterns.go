// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import "strings"

// Pattern descriptions reported by Detect.
const (
	PatternSequentialAlpha   = "Contains sequential alphabetic characters"
	PatternSequentialNumeric = "Contains sequential numeric characters"
	PatternRepeated          = "Contains 3+ repeated characters"
	PatternKeyboardPrefix    = "Contains keyboard pattern: "
	PatternSubstitutionA     = "Uses common character substitution (4/@/a)"
	PatternSubstitutionE     = "Uses common character substitution (3/e)"
	PatternSubstitutionI     = "Uses common character substitution (1/!/i)"
	PatternYear              = "Contains year pattern"
	PatternDate              = "Contains date pattern"
	PatternCommonWord        = "Contains common word with numbers"
)

// keyboardWalks are checked in this order; each one found adds a finding.
var keyboardWalks = []string{"qwert", "asdf", "zxcv", "12345", "qazws"}

// commonWords fire the common-word rule. Trailing digits are optional, so a
// bare substring match is sufficient.
var commonWords = []string{"password", "admin", "user", "login", "welcome", "secret"}

// subject is the per-call view of a password shared by all rules.
type subject struct {
	raw   string
	lower string
}

// rule inspects a password and returns zero or more findings.
type rule func(s subject) []string

// rules is evaluated in order; the order of Detect's output follows it.
var rules = []rule{
	ruleSequentialAlpha,
	ruleSequentialNumeric,
	ruleRepeated,
	ruleKeyboardWalks,
	ruleSubstitutions,
	ruleYear,
	ruleDate,
	ruleCommonWord,
}

// Detect returns the descriptions of every weak pattern found in password.
// The result is never nil.
func Detect(password string) []string {
	s := subject{raw: password, lower: strings.ToLower(password)}
	findings := make([]string, 0, 4)
	for _, r := range rules {
		findings = append(findings, r(s)...)
	}
	return findings
}

func one(desc string, fired bool) []string {
	if fired {
		return []string{desc}
	}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ruleSequentialAlpha matches abc, bcd, ... xyz in the lower-cased input.
func ruleSequentialAlpha(s subject) []string {
	b := s.lower
	for i := 0; i+2 < len(b); i++ {
		if b[i] >= 'a' && b[i] <= 'x' && b[i+1] == b[i]+1 && b[i+2] == b[i]+2 {
			return []string{PatternSequentialAlpha}
		}
	}
	return nil
}

// nextDigit steps along 1234567890; '9' is followed by '0'.
func nextDigit(b byte) byte {
	if b == '9' {
		return '0'
	}
	return b + 1
}

// ruleSequentialNumeric matches 123, 234, ... 789 and 890. Runs starting at
// '9' or '0' do not count.
func ruleSequentialNumeric(s subject) []string {
	b := s.raw
	for i := 0; i+2 < len(b); i++ {
		c := b[i]
		if !isDigit(c) || c == '0' || c == '9' {
			continue
		}
		if b[i+1] == nextDigit(c) && b[i+2] == nextDigit(b[i+1]) {
			return []string{PatternSequentialNumeric}
		}
	}
	return nil
}

// ruleRepeated matches any character appearing three or more times in a
// row. Line breaks never count as a repeated character.
func ruleRepeated(s subject) []string {
	var prev rune
	run := 0
	for _, r := range s.raw {
		if r == prev && r != '\n' {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= 3 && r != '\n' {
			return []string{PatternRepeated}
		}
	}
	return nil
}

func ruleKeyboardWalks(s subject) []string {
	var out []string
	for _, walk := range keyboardWalks {
		if strings.Contains(s.lower, walk) {
			out = append(out, PatternKeyboardPrefix+walk)
		}
	}
	return out
}

func ruleSubstitutions(s subject) []string {
	var out []string
	out = append(out, one(PatternSubstitutionA,
		strings.ContainsAny(s.raw, "4@") && !strings.Contains(s.lower, "a"))...)
	out = append(out, one(PatternSubstitutionE,
		strings.ContainsRune(s.raw, '3') && !strings.Contains(s.lower, "e"))...)
	out = append(out, one(PatternSubstitutionI,
		strings.ContainsAny(s.raw, "1!") && !strings.Contains(s.lower, "i"))...)
	return out
}

// ruleYear matches 19dd or 20dd.
func ruleYear(s subject) []string {
	b := s.raw
	for i := 0; i+3 < len(b); i++ {
		century := (b[i] == '1' && b[i+1] == '9') || (b[i] == '2' && b[i+1] == '0')
		if century && isDigit(b[i+2]) && isDigit(b[i+3]) {
			return []string{PatternYear}
		}
	}
	return nil
}

// ruleDate matches MMDD with a month of 01-12 and a day of 01-31.
func ruleDate(s subject) []string {
	b := s.raw
	for i := 0; i+3 < len(b); i++ {
		if isMonth(b[i], b[i+1]) && isDay(b[i+2], b[i+3]) {
			return []string{PatternDate}
		}
	}
	return nil
}

func isMonth(t, u byte) bool {
	switch t {
	case '0':
		return u >= '1' && u <= '9'
	case '1':
		return u >= '0' && u <= '2'
	}
	return false
}

func isDay(t, u byte) bool {
	switch t {
	case '0':
		return u >= '1' && u <= '9'
	case '1', '2':
		return isDigit(u)
	case '3':
		return u == '0' || u == '1'
	}
	return false
}

func ruleCommonWord(s subject) []string {
	for _, w := range commonWords {
		if strings.Contains(s.lower, w) {
			return []string{PatternCommonWord}
		}
	}
	return nil
}
