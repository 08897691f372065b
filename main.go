// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passaudit.
//
// Usage:
//
//	go run . [flags]
//	./passaudit [command] [flags]
//
// Without a command the interactive analyzer starts. See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/passaudit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "passaudit: %v\n", err)
		os.Exit(1)
	}
}
