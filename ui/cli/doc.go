// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the passaudit command-line interface with cobra.
// Running without a subcommand starts the interactive analyzer.
package cli
