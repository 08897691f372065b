// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package corpus

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/passaudit/internal/logging"
)

//go:embed data/common_passwords.txt
var defaultSeed string

// DefaultSeed returns the embedded list of common passwords in its original
// order.
func DefaultSeed() []string {
	words, _ := ReadWordlist(strings.NewReader(defaultSeed))
	return words
}

// ReadWordlist reads one entry per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func ReadWordlist(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads a wordlist from disk. Files ending in ".zst" are
// decompressed with zstd.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader for %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	words, err := ReadWordlist(r)
	if err != nil {
		return nil, fmt.Errorf("could not read wordlist %s: %w", path, err)
	}
	return words, nil
}

// Load builds a corpus from the embedded seed followed by the entries of
// each extra file, in order.
func Load(files []string, opts ...Option) (*Corpus, error) {
	seed := DefaultSeed()
	for _, path := range files {
		words, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		logging.Debugf("loaded %d entries from wordlist %s", len(words), path)
		seed = append(seed, words...)
	}
	c := New(seed, opts...)
	logging.Debugf("common password corpus ready with %d entries", c.Len())
	return c, nil
}
