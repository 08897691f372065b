// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want csv or json)", s)
	}
}

// FormatFromPath infers the format from a file name such as
// "results.json.zst". It returns def when the extension is not recognised.
func FormatFromPath(path string, def Format) Format {
	base := strings.TrimSuffix(strings.ToLower(path), ".zst")
	switch {
	case strings.HasSuffix(base, ".json"):
		return FormatJSON
	case strings.HasSuffix(base, ".csv"):
		return FormatCSV
	}
	return def
}

// DefaultFileName returns names like "password_analysis_20260102_150405.csv".
func DefaultFileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// batchDocument is the JSON export layout.
type batchDocument struct {
	Summary Summary `json:"summary"`
	Results []Row   `json:"results"`
}

// WriteJSON writes rows and their summary as indented JSON.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(batchDocument{Summary: Summarize(rows), Results: rows})
}

// Write encodes rows in the given format.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, rows)
	default:
		return WriteCSV(w, rows)
	}
}

// ExportFile writes rows to path, compressing with zstd when the path ends
// in ".zst".
func ExportFile(path string, format Format, rows []Row) error {
	return writeFile(path, func(w io.Writer) error { return Write(w, format, rows) })
}

// WriteTextFile writes a text document to path, compressing with zstd when
// the path ends in ".zst".
func WriteTextFile(path, text string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func writeFile(path string, encode func(io.Writer) error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(path, ".zst") {
		if err := encode(file); err != nil {
			return fmt.Errorf("could not write %s: %w", path, err)
		}
		return file.Close()
	}

	zw, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if err := encode(zw); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish zstd stream: %w", err)
	}
	return file.Close()
}
