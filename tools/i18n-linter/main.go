// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks translation keys for consistency. It scans the Go
// sources for i18n.T calls and key-like literals and compares them with the
// YAML locale files.
//
// Usage:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var (
	// callRe matches i18n.T("some.key").
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// literalRe matches key-like literals passed through helpers.
	literalRe = regexp.MustCompile(`"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)
)

// result is the outcome of one lint run.
type result struct {
	// Undefined keys are passed to i18n.T but absent from the primary locale.
	Undefined []string
	// Orphaned keys exist in the primary locale but are never referenced.
	Orphaned []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
}

func (r result) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	res, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	printResult(os.Stdout, res)
	if res.failed() {
		os.Exit(1)
	}
}

// lint compares the keys used below root with the locale files in dir.
func lint(root, dir, primary string) (result, error) {
	res := result{Missing: map[string][]string{}}

	called, literals, err := findUsedKeys(root)
	if err != nil {
		return res, fmt.Errorf("scanning sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return res, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	for key := range called {
		if _, ok := primaryKeys[key]; !ok {
			res.Undefined = append(res.Undefined, key)
		}
	}
	for key := range primaryKeys {
		_, c := called[key]
		_, l := literals[key]
		if !c && !l {
			res.Orphaned = append(res.Orphaned, key)
		}
	}
	sort.Strings(res.Undefined)
	sort.Strings(res.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return res, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return res, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			res.Missing[filepath.Base(file)] = missing
		}
	}
	return res, nil
}

func printResult(w io.Writer, res result) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Undefined keys (used in code, absent from "+primaryLocale+")", res.Undefined)
	section("Orphaned keys (in "+primaryLocale+", never used)", res.Orphaned)

	names := make([]string, 0, len(res.Missing))
	for name := range res.Missing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		section("Missing keys in "+name, res.Missing[name])
	}

	switch {
	case res.failed():
		fmt.Fprintln(w, "FAIL: translation files are inconsistent")
	case len(res.Orphaned) > 0:
		fmt.Fprintln(w, "WARN: orphaned keys found")
	default:
		fmt.Fprintln(w, "OK: all translation files are consistent")
	}
}

// findUsedKeys scans non-test .go files below root. It returns keys passed
// directly to i18n.T and other key-like string literals separately.
func findUsedKeys(root string) (called, literals map[string]struct{}, err error) {
	called = map[string]struct{}{}
	literals = map[string]struct{}{}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[m[1]] = struct{}{}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			literals[m[1]] = struct{}{}
		}
		return nil
	})
	return called, literals, err
}

// loadKeysFromLocale reads a YAML file and returns its dotted leaf keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := map[string]struct{}{}
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated leaf keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
