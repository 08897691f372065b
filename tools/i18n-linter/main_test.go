// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	p := filepath.Join(t.TempDir(), "active.en.yaml")
	writeFile(t, p, "top:\n  sub: value\n  deeper:\n    leaf: x\nother: v\n")
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	for _, k := range []string{"top.sub", "top.deeper.leaf", "other"} {
		if _, ok := got[k]; !ok {
			t.Fatalf("expected key %s, got %v", k, got)
		}
	}
	if _, ok := got["top"]; ok {
		t.Fatalf("intermediate maps must not be keys")
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("used.key")
	_ = i18n.T("undefined.key")
	label("via.helper")
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
func g() { _ = i18n.T("test.only") }`)
	writeFile(t, filepath.Join(root, "tools", "x.go"), `package x
func h() { _ = i18n.T("tool.key") }`)

	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "active.en.yaml"), "used:\n  key: a\nvia:\n  helper: b\nunused:\n  key: c\n")
	writeFile(t, filepath.Join(locales, "active.de.yaml"), "used:\n  key: a\n")

	res, err := lint(root, locales, "active.en.yaml")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if strings.Join(res.Undefined, ",") != "undefined.key" {
		t.Fatalf("unexpected undefined keys: %v", res.Undefined)
	}
	if strings.Join(res.Orphaned, ",") != "unused.key" {
		t.Fatalf("unexpected orphaned keys: %v", res.Orphaned)
	}
	if strings.Join(res.Missing["active.de.yaml"], ",") != "unused.key,via.helper" {
		t.Fatalf("unexpected missing keys: %v", res.Missing)
	}
	if !res.failed() {
		t.Fatalf("expected failure")
	}

	var buf bytes.Buffer
	printResult(&buf, res)
	if !strings.Contains(buf.String(), "FAIL") || !strings.Contains(buf.String(), "Missing keys in active.de.yaml") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestLint_RepositoryLocales(t *testing.T) {
	root := filepath.Join("..", "..")
	res, err := lint(root, filepath.Join(root, localesDir), primaryLocale)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(res.Undefined) > 0 || len(res.Missing) > 0 {
		var buf bytes.Buffer
		printResult(&buf, res)
		t.Fatalf("repository translations are inconsistent:\n%s", buf.String())
	}
}
