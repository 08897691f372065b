// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package corpus builds the read-only set of known weak passwords used by
// the analyzer. A bloom filter sits in front of the exact set so most
// uncommon passwords are rejected without touching the map; membership is
// still decided by the exact set.
package corpus

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultVariantTopN is how many of the leading seed entries receive
// generated case and suffix variants.
const DefaultVariantTopN = 20

// falsePositiveRate is the target rate for the bloom prefilter.
const falsePositiveRate = 0.001

// Corpus is an immutable set of normalized weak passwords. It is safe for
// concurrent use once built.
type Corpus struct {
	entries []string
	set     map[string]struct{}
	filter  *bloom.BloomFilter
}

// Option configures corpus construction.
type Option func(*options)

type options struct {
	topN int
}

// WithVariantTopN sets how many leading entries receive variants. Zero
// disables variant generation; negative values are ignored.
func WithVariantTopN(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.topN = n
		}
	}
}

// New builds a corpus from seed. Entries are lower-cased and de-duplicated
// keeping first-occurrence order; the first N of them then get upper-case,
// capitalized, suffixed and prefixed variants.
func New(seed []string, opts ...Option) *Corpus {
	o := options{topN: DefaultVariantTopN}
	for _, opt := range opts {
		opt(&o)
	}

	normalized := normalize(seed)
	all := slices.Clone(normalized)
	for _, pwd := range normalized[:min(o.topN, len(normalized))] {
		all = append(all, variants(pwd)...)
	}
	slices.Sort(all)
	all = slices.Compact(all)

	c := &Corpus{
		entries: all,
		set:     make(map[string]struct{}, len(all)),
		filter:  bloom.NewWithEstimates(uint(max(len(all), 1)), falsePositiveRate),
	}
	for _, e := range all {
		c.set[e] = struct{}{}
		c.filter.AddString(e)
	}
	return c
}

// Contains reports whether the lower-cased password is in the corpus.
func (c *Corpus) Contains(password string) bool {
	if c == nil {
		return false
	}
	probe := strings.ToLower(password)
	if !c.filter.TestString(probe) {
		return false
	}
	_, ok := c.set[probe]
	return ok
}

// Len returns the number of distinct entries, variants included.
func (c *Corpus) Len() int { return len(c.entries) }

// Entries returns a sorted copy of every entry.
func (c *Corpus) Entries() []string { return slices.Clone(c.entries) }

func normalize(seed []string) []string {
	seen := make(map[string]struct{}, len(seed))
	out := make([]string, 0, len(seed))
	for _, s := range seed {
		s = strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// variants returns the generated forms of a lower-case entry.
func variants(pwd string) []string {
	return []string{
		strings.ToUpper(pwd),
		capitalize(pwd),
		pwd + "1",
		pwd + "!",
		pwd + "123",
		"1" + pwd,
		"!" + pwd,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
