// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package analyzer implements the password strength engine.
//
// An Analyzer combines a read-only common-password corpus with a fixed set
// of rules: character classification, weak-pattern detection, entropy
// estimation, scoring and the derivation of issues and recommendations.
// Every step is a pure function of its input, so a single Analyzer can be
// shared by any number of goroutines without locking.
//
// Presentation concerns (masking, reports, exports, interactive views) live
// in other packages and only consume the Analysis record returned here.
package analyzer
