// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/logging"
	"github.com/toeirei/passaudit/internal/security"
	"golang.org/x/term"
)

// maxLineBytes bounds a single batch input line.
const maxLineBytes = 1 << 20

// maxSecretBytes bounds the single line read by check and report.
const maxSecretBytes = 16 << 10

var errNoInput = errors.New("no password given")

// isTerminal reports whether r is an interactive terminal. Tests replace it.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readPasswordNoEcho reads a line without echo. Tests replace it.
var readPasswordNoEcho = func(r io.Reader) ([]byte, error) {
	f := r.(*os.File)
	return term.ReadPassword(int(f.Fd()))
}

// passwordFromArgs resolves the password for check and report: the
// positional argument, one line of stdin with --stdin, or a hidden prompt.
// Callers should Zero the result.
func passwordFromArgs(cmd *cobra.Command, args []string, fromStdin bool) (security.Secret, error) {
	if len(args) > 0 {
		logging.Warnf("passwords given as arguments may be stored in shell history; prefer the prompt or --stdin")
		return security.FromString(args[0]), nil
	}
	in := cmd.InOrStdin()
	if fromStdin || !isTerminal(in) {
		return readFirstLine(in)
	}

	fmt.Fprint(cmd.ErrOrStderr(), i18n.T("prompt.password"))
	raw, err := readPasswordNoEcho(in)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("could not read password: %w", err)
	}
	pw := security.FromBytes(raw)
	clear(raw)
	return pw, nil
}

// readFirstLine returns the first line of r without its line ending.
func readFirstLine(r io.Reader) (security.Secret, error) {
	br := bufio.NewReaderSize(r, maxSecretBytes)
	line, err := br.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		clear(line)
		return nil, fmt.Errorf("%w: input line exceeds %d bytes", analyzer.ErrInputTooLong, maxSecretBytes)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read password: %w", err)
	}
	if errors.Is(err, io.EOF) && len(line) == 0 {
		return nil, errNoInput
	}
	pw := security.FromBytes(bytes.TrimRight(line, "\r\n"))
	clear(line)
	return pw, nil
}

// readLines returns the trimmed, non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read passwords: %w", err)
	}
	return out, nil
}

// readPasswordFile reads one password per line from path, or from stdin
// when path is "-". Paths ending in ".zst" are decompressed.
func readPasswordFile(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return readLines(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open password file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if !strings.HasSuffix(path, ".zst") {
		return readLines(f)
	}
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("could not open zstd stream: %w", err)
	}
	defer zr.Close()
	return readLines(zr)
}
