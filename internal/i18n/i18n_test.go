// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"io/fs"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("strength.strong"); got != "Strong" {
		t.Fatalf("expected 'Strong', got %q", got)
	}
	if got := T("tui.length", 7); got != "Length: 7" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("batch.summary", 4, 1, 2, 3); got != "Total: 4  Strong: 1  Weak: 2  Common: 3" {
		t.Fatalf("unexpected summary: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("strength.strong"); got != "Stark" {
		t.Fatalf("expected German 'Stark', got %q", got)
	}
	if got := T("common.yes"); got != "Ja" {
		t.Fatalf("expected German 'Ja', got %q", got)
	}
}

func TestT_Fallbacks(t *testing.T) {
	Init("fr")
	defer Init("en")
	if got := T("strength.weak"); got != "Weak" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected message ID for missing key, got %q", got)
	}

	Init("not a language!")
	if GetLang() != "en" {
		t.Fatalf("invalid language should normalize to en, got %q", GetLang())
	}
}

// flatten collects dotted keys from a decoded locale document.
func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		keys[prefix] = struct{}{}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, keys)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		t.Fatalf("read locales: %v", err)
	}
	sets := map[string]map[string]struct{}{}
	for _, f := range files {
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			t.Fatalf("read %s: %v", f.Name(), err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			t.Fatalf("parse %s: %v", f.Name(), err)
		}
		keys := map[string]struct{}{}
		flatten("", doc, keys)
		sets[f.Name()] = keys
	}

	en := sets["active.en.yaml"]
	if len(en) == 0 {
		t.Fatalf("primary locale is empty")
	}
	for name, keys := range sets {
		var missing []string
		for k := range en {
			if _, ok := keys[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			t.Fatalf("%s is missing keys: %s", name, strings.Join(missing, ", "))
		}
	}
}
