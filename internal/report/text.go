// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/toeirei/passaudit/internal/analyzer"
)

// ReportTimeLayout is the timestamp format used in security reports.
const ReportTimeLayout = "2006-01-02 15:04:05"

var bestPractices = []string{
	"Use unique passwords for each account",
	"Enable two-factor authentication where available",
	"Use a reputable password manager",
	"Regularly update passwords for sensitive accounts",
	"Never share passwords or store them in plain text",
}

// SecurityReport renders a plain-text assessment of a. The password itself
// is never included. version is shown as the assessment tool version.
func SecurityReport(a analyzer.Analysis, now time.Time, version string) string {
	var b strings.Builder
	section := func(title string) {
		fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	b.WriteString("CYBERSECURITY PASSWORD ASSESSMENT REPORT\n")
	b.WriteString("========================================\n\n")
	fmt.Fprintf(&b, "Report Generated: %s\n", now.Format(ReportTimeLayout))
	fmt.Fprintf(&b, "Assessment Tool: passaudit %s\n\n", version)

	section("EXECUTIVE SUMMARY")
	fmt.Fprintf(&b, "Password Length: %d characters\n", a.Length)
	fmt.Fprintf(&b, "Security Score: %d/100\n", a.Score)
	fmt.Fprintf(&b, "Risk Level: %s\n", RiskLevel(a.Score))
	fmt.Fprintf(&b, "Entropy: %.2f bits\n\n", a.Entropy)

	section("DETAILED ANALYSIS")
	b.WriteString("\nCharacter Composition:\n")
	fmt.Fprintf(&b, "• Lowercase letters: %s\n", yesNo(a.Composition.Lowercase))
	fmt.Fprintf(&b, "• Uppercase letters: %s\n", yesNo(a.Composition.Uppercase))
	fmt.Fprintf(&b, "• Numbers: %s\n", yesNo(a.Composition.Digit))
	fmt.Fprintf(&b, "• Special characters: %s\n\n", yesNo(a.Composition.Special))

	b.WriteString("Security Issues Identified:\n")
	if len(a.Issues) == 0 {
		b.WriteString("• No significant security issues detected\n")
	}
	for _, issue := range a.Issues {
		fmt.Fprintf(&b, "• %s\n", issue)
	}

	if len(a.Patterns) > 0 {
		b.WriteString("\nPatterns Detected:\n")
		for _, p := range a.Patterns {
			fmt.Fprintf(&b, "• %s\n", p)
		}
	}

	b.WriteString("\nCommon Password Database Check:\n")
	if a.IsCommon {
		b.WriteString("• Status: FOUND - Password appears in common password lists\n\n")
	} else {
		b.WriteString("• Status: NOT FOUND - Password not in common databases\n\n")
	}

	section("RECOMMENDATIONS")
	if len(a.Recommendations) == 0 {
		b.WriteString("No specific recommendations - password meets security standards.\n")
	}
	for i, rec := range a.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	section("SECURITY BEST PRACTICES")
	for i, p := range bestPractices {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	b.WriteString("\n")

	section("CONCLUSION")
	b.WriteString("This assessment provides a snapshot of password security based on current best practices.\n")
	b.WriteString("Regular security assessments and adherence to best practices are recommended for maintaining optimal security posture.\n\n")
	b.WriteString("---\n")
	b.WriteString("Report generated by passaudit\n")
	return b.String()
}
