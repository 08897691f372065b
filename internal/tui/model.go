// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/logging"
	"github.com/toeirei/passaudit/internal/report"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// headerLines is the space taken by everything above the details pane.
	headerLines = 10
	minDetails  = 3
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct{ err error }

// model is the single-screen analyzer. Every edit of the input re-runs the
// analysis.
type model struct {
	analyzer *analyzer.Analyzer
	opts     Options

	input    textinput.Model
	bar      progress.Model
	details  viewport.Model
	help     help.Model
	keys     keyMap
	result   analyzer.Analysis
	err      error
	reveal   bool
	status   string
	statusOK bool
	width    int
	height   int
}

func newModel(an *analyzer.Analyzer, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.Prompt = i18n.T("tui.prompt")
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = an.MaxLength()
	ti.Focus()

	m := model{
		analyzer: an,
		opts:     opts.withDefaults(),
		input:    ti,
		bar:      progress.New(progress.WithSolidFill(string(colorError)), progress.WithoutPercentage()),
		details:  viewport.New(defaultWidth, defaultHeight-headerLines),
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.resize(defaultWidth, defaultHeight)
	m.analyze()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshDetails()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("clipboard copy failed: %v", msg.err)
			m.status, m.statusOK = i18n.T("tui.copy_failed", msg.err), false
		} else {
			m.status, m.statusOK = i18n.T("tui.copied"), true
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reveal):
			m.reveal = !m.reveal
			if m.reveal {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyReport()
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.analyze()
	}
	return m, cmd
}

// analyze re-evaluates the current input and refreshes the details pane.
func (m *model) analyze() {
	res, err := m.analyzer.Analyze(m.input.Value())
	m.result, m.err = res, err
	if err == nil {
		m.bar.FullColor = string(strengthColor(report.StrengthOf(res.Score)))
	}
	m.refreshDetails()
	m.details.GotoTop()
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	inner := max(width-docStyle.GetHorizontalFrameSize(), 20)
	m.input.Width = inner - lipgloss.Width(m.input.Prompt) - 1
	m.bar.Width = min(inner, 60)
	m.help.Width = inner
	m.details.Width = inner - detailsStyle.GetHorizontalFrameSize()
	m.details.Height = max(height-headerLines-docStyle.GetVerticalFrameSize()-detailsStyle.GetVerticalFrameSize(), minDetails)
}

func (m *model) refreshDetails() {
	m.details.SetContent(m.detailsContent())
}

func (m model) detailsContent() string {
	if m.input.Value() == "" {
		return helpStyle.Render(i18n.T("tui.empty_hint"))
	}
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}

	var b strings.Builder
	writeList := func(title string, items []string, numbered bool) {
		b.WriteString(sectionStyle.Render(title) + "\n")
		if len(items) == 0 {
			b.WriteString(helpStyle.Render("  "+i18n.T("tui.none")) + "\n")
		}
		for i, item := range items {
			if numbered {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(&b, "  • %s\n", item)
			}
		}
		b.WriteString("\n")
	}
	writeList(i18n.T("tui.section.issues"), m.result.Issues, false)
	writeList(i18n.T("tui.section.recommendations"), m.result.Recommendations, true)
	writeList(i18n.T("tui.section.patterns"), m.result.Patterns, false)
	return strings.TrimRight(b.String(), "\n")
}

// copyReport copies the text security report. It never contains the password.
func (m model) copyReport() tea.Cmd {
	if m.input.Value() == "" || m.err != nil {
		return nil
	}
	text := report.SecurityReport(m.result, m.opts.Now(), m.opts.Version)
	write := m.opts.Clipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(mainTitleStyle.Render(i18n.T("tui.title")) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	res := m.result
	strength := report.StrengthOf(res.Score)
	b.WriteString(m.bar.ViewAs(float64(res.Score)/100) + " ")
	if m.input.Value() == "" || m.err != nil {
		b.WriteString(helpStyle.Render(i18n.T("tui.score_empty")))
	} else {
		b.WriteString(strengthStyle(strength).Render(i18n.T("tui.score", res.Score, strength.Label())))
	}
	b.WriteString("\n")

	common := successStyle.Render(i18n.T("tui.common_no"))
	if res.IsCommon {
		common = errorStyle.Render(i18n.T("tui.common_yes"))
	}
	fmt.Fprintf(&b, "%s  %s  %s\n%s\n\n",
		i18n.T("tui.length", res.Length),
		i18n.T("tui.entropy", res.Entropy),
		i18n.T("tui.variety", res.Variety),
		common,
	)

	b.WriteString(detailsStyle.Render(m.details.View()) + "\n")

	status := ""
	if m.status != "" {
		if m.statusOK {
			status = statusMessageStyle.Render(m.status)
		} else {
			status = specialStyle.Render(m.status)
		}
	}
	inner := max(m.width-docStyle.GetHorizontalFrameSize(), 20)
	b.WriteString(alignFooter(m.help.View(m.keys), status, inner))

	return docStyle.Render(b.String())
}

// Options configures Run.
type Options struct {
	// Version is shown in copied reports.
	Version string
	// Now stamps copied reports. Defaults to time.Now.
	Now func() time.Time
	// Clipboard receives the copied report. Defaults to the system clipboard.
	Clipboard func(string) error
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.WriteAll
	}
	return o
}
