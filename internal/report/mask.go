// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import "strings"

// Masker hides all but the first Keep characters of a password.
type Masker struct {
	Keep int
	Char rune
}

// DefaultMasker keeps three characters and masks the rest with '*'.
var DefaultMasker = Masker{Keep: 3, Char: '*'}

// NewMasker builds a Masker from configuration values. An empty mask string
// falls back to '*' and a negative keep count to zero.
func NewMasker(keep int, mask string) Masker {
	m := Masker{Keep: max(keep, 0), Char: '*'}
	for _, r := range mask {
		m.Char = r
		break
	}
	return m
}

// Mask returns password with every character after the first Keep replaced.
// Passwords no longer than Keep are returned unchanged.
func (m Masker) Mask(password string) string {
	runes := []rune(password)
	if len(runes) <= m.Keep {
		return password
	}
	return string(runes[:m.Keep]) + strings.Repeat(string(m.Char), len(runes)-m.Keep)
}
