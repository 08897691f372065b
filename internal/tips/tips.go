// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tips provides the security education content shown by the
// `tips` command.
package tips

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed data/tips.yaml
var tipsYAML []byte

// Attack describes one password attack method.
type Attack struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Defense     string `yaml:"defense"`
}

// Group is a titled list of tips.
type Group struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Level is one entropy threshold.
type Level struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Entropy explains password entropy.
type Entropy struct {
	Definition  string   `yaml:"definition"`
	Calculation string   `yaml:"calculation"`
	Levels      []Level  `yaml:"levels"`
	Factors     []string `yaml:"factors"`
}

// Tips is the full education catalogue.
type Tips struct {
	BestPractices []string `yaml:"best_practices"`
	Mistakes      []string `yaml:"mistakes"`
	Attacks       []Attack `yaml:"attacks"`
	Tools         []Group  `yaml:"tools"`
	Entropy       Entropy  `yaml:"entropy"`
	Compliance    []Group  `yaml:"compliance"`
}

// Section names accepted by Render, in display order.
const (
	SectionBestPractices = "best-practices"
	SectionMistakes      = "mistakes"
	SectionAttacks       = "attacks"
	SectionTools         = "tools"
	SectionEntropy       = "entropy"
	SectionCompliance    = "compliance"
)

// Sections lists every section name in display order.
var Sections = []string{
	SectionBestPractices,
	SectionMistakes,
	SectionAttacks,
	SectionTools,
	SectionEntropy,
	SectionCompliance,
}

var (
	loadOnce sync.Once
	loaded   *Tips
	loadErr  error
)

// Load parses the embedded catalogue. The result is cached.
func Load() (*Tips, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(tipsYAML)
	})
	return loaded, loadErr
}

// Parse decodes a catalogue from YAML.
func Parse(data []byte) (*Tips, error) {
	var t Tips
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("could not parse tips: %w", err)
	}
	return &t, nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	defenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)

// Render formats one section for the terminal. An empty name renders every
// section.
func (t *Tips) Render(section string) (string, error) {
	if section == "" {
		parts := make([]string, 0, len(Sections))
		for _, s := range Sections {
			out, err := t.Render(s)
			if err != nil {
				return "", err
			}
			parts = append(parts, out)
		}
		return strings.Join(parts, "\n"), nil
	}

	var b strings.Builder
	switch section {
	case SectionBestPractices:
		b.WriteString(titleStyle.Render("Password Security Best Practices") + "\n")
		numbered(&b, t.BestPractices)
	case SectionMistakes:
		b.WriteString(titleStyle.Render("Common Password Mistakes to Avoid") + "\n")
		bullets(&b, t.Mistakes, "  ")
	case SectionAttacks:
		b.WriteString(titleStyle.Render("How Passwords Are Attacked") + "\n")
		for _, a := range t.Attacks {
			fmt.Fprintf(&b, "\n%s\n  %s\n  %s\n", headingStyle.Render(a.Name), a.Description,
				defenseStyle.Render("Defense: "+a.Defense))
		}
	case SectionTools:
		b.WriteString(titleStyle.Render("Security Tools and Tips") + "\n")
		groups(&b, t.Tools)
	case SectionEntropy:
		e := t.Entropy
		b.WriteString(titleStyle.Render("Understanding Password Entropy") + "\n")
		fmt.Fprintf(&b, "%s\n%s\n\n", e.Definition, e.Calculation)
		for _, l := range e.Levels {
			fmt.Fprintf(&b, "  %s: %s\n", headingStyle.Render(l.Label), l.Value)
		}
		b.WriteString("\n" + headingStyle.Render("Factors") + "\n")
		bullets(&b, e.Factors, "  ")
	case SectionCompliance:
		b.WriteString(titleStyle.Render("Compliance Guidelines") + "\n")
		groups(&b, t.Compliance)
	default:
		return "", fmt.Errorf("unknown tips section %q (available: %s)", section, strings.Join(Sections, ", "))
	}
	return b.String(), nil
}

func numbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%2d. %s\n", i+1, item)
	}
}

func bullets(b *strings.Builder, items []string, indent string) {
	for _, item := range items {
		fmt.Fprintf(b, "%s• %s\n", indent, item)
	}
}

func groups(b *strings.Builder, gs []Group) {
	for _, g := range gs {
		b.WriteString("\n" + headingStyle.Render(g.Title) + "\n")
		bullets(b, g.Items, "  ")
	}
}
