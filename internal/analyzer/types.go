// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import "errors"

// ErrInputTooLong is returned when a password exceeds the configured maximum
// length. Oversized input is rejected rather than truncated.
var ErrInputTooLong = errors.New("input too long")

// Corpus is the read-only set of known weak passwords consulted by the
// analyzer. Implementations must be safe for concurrent use.
type Corpus interface {
	Contains(password string) bool
}

// Composition records which character classes appear in a password.
// The flags indicate presence only, not counts.
type Composition struct {
	Lowercase bool `json:"lowercase" yaml:"lowercase"`
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Digit     bool `json:"numbers" yaml:"numbers"`
	Special   bool `json:"special_chars" yaml:"special_chars"`
}

// Variety returns the number of character classes present (0-4).
func (c Composition) Variety() int {
	n := 0
	for _, present := range []bool{c.Lowercase, c.Uppercase, c.Digit, c.Special} {
		if present {
			n++
		}
	}
	return n
}

// Analysis is the result of analyzing a single password.
type Analysis struct {
	Score           int         `json:"score" yaml:"score"`
	Length          int         `json:"length" yaml:"length"`
	Entropy         float64     `json:"entropy" yaml:"entropy"`
	Composition     Composition `json:"character_composition" yaml:"character_composition"`
	Variety         int         `json:"character_variety" yaml:"character_variety"`
	IsCommon        bool        `json:"is_common" yaml:"is_common"`
	Patterns        []string    `json:"patterns" yaml:"patterns"`
	Issues          []string    `json:"issues" yaml:"issues"`
	Recommendations []string    `json:"recommendations" yaml:"recommendations"`
}

// emptyAnalysis is returned for the empty password.
func emptyAnalysis() Analysis {
	return Analysis{
		Patterns:        []string{},
		Issues:          []string{"Password is empty"},
		Recommendations: []string{"Enter a password to begin analysis"},
	}
}

// noCorpus is used when an Analyzer is built without a corpus.
type noCorpus struct{}

func (noCorpus) Contains(string) bool { return false }
