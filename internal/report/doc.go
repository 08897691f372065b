// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report turns analyzer results into presentable output: strength
// labels, masked passwords, batch tables and summaries, CSV/JSON exports
// and the plain-text security assessment report.
package report
