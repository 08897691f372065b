// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/i18n"
)

func TestStrengthOf(t *testing.T) {
	tests := []struct {
		score int
		want  Strength
		risk  string
	}{
		{0, Weak, "HIGH"},
		{59, Weak, "HIGH"},
		{60, Medium, "MEDIUM"},
		{79, Medium, "MEDIUM"},
		{80, Strong, "LOW"},
		{100, Strong, "LOW"},
	}
	for _, tt := range tests {
		if got := StrengthOf(tt.score); got != tt.want {
			t.Fatalf("StrengthOf(%d) = %s, want %s", tt.score, got, tt.want)
		}
		if got := RiskLevel(tt.score); got != tt.risk {
			t.Fatalf("RiskLevel(%d) = %s, want %s", tt.score, got, tt.risk)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"abcd", "abc*"},
		{"password", "pas*****"},
		{"äöüßx", "äöü**"},
	}
	for _, tt := range tests {
		if got := DefaultMasker.Mask(tt.in); got != tt.want {
			t.Fatalf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	m := NewMasker(1, "#")
	if got := m.Mask("secret"); got != "s#####" {
		t.Fatalf("custom masker = %q", got)
	}
	if got := NewMasker(-2, "").Mask("ab"); got != "**" {
		t.Fatalf("negative keep = %q", got)
	}
}

func sampleRows(t *testing.T) []Row {
	t.Helper()
	an := analyzer.New(nil)
	pw := []string{"password1", "Xk9#Pm7$Vr5%Tz8&"}
	res, err := an.AnalyzeBatch(pw)
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	res[0].IsCommon = true
	rows, err := NewRows(pw, res, DefaultMasker)
	if err != nil {
		t.Fatalf("NewRows: %v", err)
	}
	return rows
}

func TestNewRows(t *testing.T) {
	rows := sampleRows(t)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Password != "pas******" {
		t.Fatalf("password not masked: %q", rows[0].Password)
	}
	if rows[1].Strength != Strong || rows[1].Score != 100 || rows[1].CharacterTypes != 4 {
		t.Fatalf("unexpected strong row: %+v", rows[1])
	}
	if rows[1].IssuesCount != 0 {
		t.Fatalf("strong row has %d issues", rows[1].IssuesCount)
	}
	if e := rows[0].Entropy * 100; math.Abs(e-math.Round(e)) > 1e-6 {
		t.Fatalf("entropy not rounded: %v", rows[0].Entropy)
	}

	if _, err := NewRows([]string{"a"}, nil, DefaultMasker); err == nil {
		t.Fatalf("expected error on length mismatch")
	}
}

func TestSummarize(t *testing.T) {
	rows := []Row{
		{Strength: Strong},
		{Strength: Medium, Common: true},
		{Strength: Weak, Common: true},
		{Strength: Weak},
	}
	got := Summarize(rows)
	want := Summary{Total: 4, Strong: 1, Weak: 2, Common: 2}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatalf("empty summary should be zero")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 records, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "Password,Score,Strength,Length,Entropy,Character Types,Common Password,Issues Count" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][6] != "Yes" || records[2][6] != "No" {
		t.Fatalf("unexpected common column: %q %q", records[1][6], records[2][6])
	}
	if records[2][2] != "Strong" {
		t.Fatalf("unexpected strength: %q", records[2][2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows(t)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc struct {
		Summary Summary `json:"summary"`
		Results []Row   `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Summary.Total != 2 || doc.Summary.Strong != 1 || doc.Summary.Common != 1 {
		t.Fatalf("unexpected summary: %+v", doc.Summary)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(doc.Results))
	}

	buf.Reset()
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON(nil): %v", err)
	}
	if !strings.Contains(buf.String(), `"results": []`) {
		t.Fatalf("empty results should encode as []: %s", buf.String())
	}
}

func TestFormats(t *testing.T) {
	if f, err := ParseFormat(" JSON "); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(JSON) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
	cases := map[string]Format{
		"out.csv":      FormatCSV,
		"out.json":     FormatJSON,
		"out.JSON.zst": FormatJSON,
		"out.txt":      FormatCSV,
	}
	for path, want := range cases {
		if got := FormatFromPath(path, FormatCSV); got != want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	if got := DefaultFileName("password_analysis", "csv", now); got != "password_analysis_20260102_150405.csv" {
		t.Fatalf("DefaultFileName = %q", got)
	}
}

func TestExportFile_Zstd(t *testing.T) {
	dir := t.TempDir()
	rows := sampleRows(t)

	plain := filepath.Join(dir, "out.csv")
	if err := ExportFile(plain, FormatCSV, rows); err != nil {
		t.Fatalf("ExportFile plain: %v", err)
	}
	want, err := os.ReadFile(plain)
	if err != nil {
		t.Fatalf("read plain: %v", err)
	}

	packed := filepath.Join(dir, "out.csv.zst")
	if err := ExportFile(packed, FormatCSV, rows); err != nil {
		t.Fatalf("ExportFile zst: %v", err)
	}
	f, err := os.Open(packed)
	if err != nil {
		t.Fatalf("open zst: %v", err)
	}
	defer func() { _ = f.Close() }()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("decompressed export differs from plain export")
	}
}

func TestExportFile_BadPath(t *testing.T) {
	err := ExportFile(filepath.Join(t.TempDir(), "missing", "out.csv"), FormatCSV, nil)
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestTable(t *testing.T) {
	out := Table(sampleRows(t))
	for _, want := range []string{"Password", "Issues Count", "pas******", "Strong"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestSecurityReport(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	an := analyzer.New(nil)

	weak, err := an.Analyze("password")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	weak.IsCommon = true
	out := SecurityReport(weak, now, "v1.2.3")
	for _, want := range []string{
		"CYBERSECURITY PASSWORD ASSESSMENT REPORT",
		"Report Generated: 2026-03-04 05:06:07",
		"Assessment Tool: passaudit v1.2.3",
		"Password Length: 8 characters",
		"Risk Level: HIGH",
		"• Uppercase letters: No",
		"• Status: FOUND",
		"1. Increase password length to at least 12 characters",
		"2. Add uppercase letters (A-Z)",
		"Patterns Detected:",
		"CONCLUSION",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	strong, err := an.Analyze("Xk9#Pm7$Vr5%Tz8&")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	out = SecurityReport(strong, now, "dev")
	for _, want := range []string{
		"Risk Level: LOW",
		"• No significant security issues detected",
		"• Status: NOT FOUND",
		"No specific recommendations - password meets security standards.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Patterns Detected:") {
		t.Fatalf("strong report should not list patterns")
	}
}

func TestStrengthLabel(t *testing.T) {
	i18n.Init("en")
	if got := Medium.Label(); got != "Medium" {
		t.Fatalf("Medium.Label() = %q", got)
	}
	i18n.SetLang("de")
	defer i18n.Init("en")
	if got := Strong.Label(); got != "Stark" {
		t.Fatalf("Strong.Label() in German = %q", got)
	}
}
