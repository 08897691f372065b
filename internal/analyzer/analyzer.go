// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import (
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/toeirei/passaudit/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxLength bounds the cost of a single call. Longer input is
// rejected with ErrInputTooLong.
const DefaultMaxLength = 1024

// Analyzer evaluates passwords against a fixed rule set and a corpus of
// known weak passwords. It holds no mutable state and is safe for concurrent
// use.
type Analyzer struct {
	corpus      Corpus
	specialSize int
	maxLength   int
	workers     int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSpecialCharsetSize overrides the charset size credited for special
// characters. Non-positive values are ignored.
func WithSpecialCharsetSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.specialSize = n
		}
	}
}

// WithMaxLength overrides the maximum accepted password length in
// characters. Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxLength = n
		}
	}
}

// WithWorkers sets the number of goroutines used by AnalyzeBatch.
// Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New returns an Analyzer backed by corpus. A nil corpus treats every
// password as uncommon.
func New(corpus Corpus, opts ...Option) *Analyzer {
	if corpus == nil {
		corpus = noCorpus{}
	}
	a := &Analyzer{
		corpus:      corpus,
		specialSize: DefaultSpecialCharsetSize,
		maxLength:   DefaultMaxLength,
		workers:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MaxLength returns the maximum accepted password length.
func (a *Analyzer) MaxLength() int { return a.maxLength }

// checkLength returns the length of password in characters, or an error
// wrapping ErrInputTooLong.
func (a *Analyzer) checkLength(password string) (int, error) {
	n := utf8.RuneCountInString(password)
	if n > a.maxLength {
		return n, fmt.Errorf("%w: %d characters exceeds limit of %d", ErrInputTooLong, n, a.maxLength)
	}
	return n, nil
}

// Analyze evaluates a single password. The only error it returns wraps
// ErrInputTooLong.
func (a *Analyzer) Analyze(password string) (Analysis, error) {
	if password == "" {
		return emptyAnalysis(), nil
	}
	length, err := a.checkLength(password)
	if err != nil {
		return Analysis{}, err
	}

	comp := Classify(password)
	patterns := Detect(password)

	res := Analysis{
		Length:      length,
		Composition: comp,
		Variety:     comp.Variety(),
		IsCommon:    a.corpus.Contains(password),
		Patterns:    patterns,
	}
	res.Entropy = Estimate(length, comp, len(patterns), a.specialSize)
	res.Score = Score(length, comp, res.Entropy, len(patterns), res.IsCommon)
	res.Issues = Issues(password, res)
	res.Recommendations = Recommendations(res)
	return res, nil
}

// AnalyzeBatch analyzes passwords in parallel and returns the results in
// input order. Duplicates are analyzed independently. If any entry is too
// long the whole batch fails and the error names its 1-based position.
func (a *Analyzer) AnalyzeBatch(passwords []string) ([]Analysis, error) {
	for i, p := range passwords {
		if _, err := a.checkLength(p); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	results := make([]Analysis, len(passwords))
	if len(passwords) == 0 {
		return results, nil
	}
	logging.Debugf("analyzing batch of %d passwords with %d workers", len(passwords), a.workers)

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, p := range passwords {
		i, p := i, p
		g.Go(func() error {
			res, err := a.Analyze(p)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
