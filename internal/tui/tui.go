// Package tui is the interactive review screen: it walks the changes of a diff, lets the user accept or reject each one, and hands back the merged
// document on confirmation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/redlinehq/redline/internal/simplelogger"
	"github.com/redlinehq/redline/internal/textdiff"
)

// Result is what a review session produced. Merged is only meaningful when Confirmed.
type Result struct {
	Merged    string
	Confirmed bool
}

// Run opens the review screen for diff in an alternate screen buffer and blocks until the user confirms or quits.
func Run(diff []textdiff.DiffLine) (Result, error) {
	p := tea.NewProgram(newModel(diff), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run review ui: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return Result{}, fmt.Errorf("review ui returned unexpected model %T", final)
	}
	if !m.confirmed {
		return Result{}, nil
	}
	return Result{Merged: textdiff.Reconstruct(m.diff, m.accepted), Confirmed: true}, nil
}

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	AcceptAll key.Binding
	RejectAll key.Binding
	Confirm   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.AcceptAll, k.RejectAll, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next change")),
		Prev:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev change")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "accept/reject")),
		AcceptAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept all")),
		RejectAll: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reject all")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type styles struct {
	header    lipgloss.Style
	gutter    lipgloss.Style
	cursor    lipgloss.Style
	unchanged lipgloss.Style
	removed   lipgloss.Style
	added     lipgloss.Style
	emphasis  lipgloss.Style
	accepted  lipgloss.Style
	rejected  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		unchanged: lipgloss.NewStyle(),
		removed:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		added:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		emphasis:  lipgloss.NewStyle().Reverse(true),
		accepted:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		rejected:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

type model struct {
	diff     []textdiff.DiffLine
	changes  []int // indices into diff with Kind != Unchanged, in order
	cursor   int   // position within changes; -1 when there are none
	accepted map[int]bool

	viewport viewport.Model
	keys     keyMap
	help     help.Model
	styles   styles

	width     int
	height    int
	ready     bool
	confirmed bool
}

func newModel(diff []textdiff.DiffLine) model {
	var changes []int
	for i, line := range diff {
		if line.Kind != textdiff.Unchanged {
			changes = append(changes, i)
		}
	}
	cursor := -1
	if len(changes) > 0 {
		cursor = 0
	}
	return model{
		diff:     diff,
		changes:  changes,
		cursor:   cursor,
		accepted: make(map[int]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		viewportHeight := msg.Height - 2 // header + help line
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			simplelogger.Log("review: confirmed with %d/%d changes accepted", len(m.accepted), len(m.changes))
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.cursor >= 0 && m.cursor < len(m.changes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor >= 0 {
				idx := m.changes[m.cursor]
				if m.accepted[idx] {
					delete(m.accepted, idx)
				} else {
					m.accepted[idx] = true
				}
			}
		case key.Matches(msg, m.keys.AcceptAll):
			for _, idx := range m.changes {
				m.accepted[idx] = true
			}
		case key.Matches(msg, m.keys.RejectAll):
			m.accepted = make(map[int]bool)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the viewport content and keeps the cursor row visible.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLines())

	if m.cursor < 0 {
		return
	}
	row := m.changes[m.cursor]
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.help.View(m.keys)
}

func (m model) headerView() string {
	acceptedCount := 0
	for _, idx := range m.changes {
		if m.accepted[idx] {
			acceptedCount++
		}
	}
	header := fmt.Sprintf("redline review — %d changes, %d accepted", len(m.changes), acceptedCount)
	return m.styles.header.Render(runewidth.Truncate(header, maxInt(m.width, 1), "…"))
}

// renderLines renders one row per DiffLine. Changed rows get a status cell showing whether the change is currently accepted.
func (m model) renderLines() string {
	rows := make([]string, 0, len(m.diff))
	for i, line := range m.diff {
		rows = append(rows, m.renderRow(i, line))
	}
	return strings.Join(rows, "\n")
}

func (m model) renderRow(i int, line textdiff.DiffLine) string {
	cursorCell := " "
	if m.cursor >= 0 && m.changes[m.cursor] == i {
		cursorCell = m.styles.cursor.Render("▌")
	}

	gutter := m.styles.gutter.Render(fmt.Sprintf("%4d ", line.Number))

	statusCell := "    "
	if line.Kind != textdiff.Unchanged {
		if m.accepted[i] {
			statusCell = m.styles.accepted.Render("[✓] ")
		} else {
			statusCell = m.styles.rejected.Render("[ ] ")
		}
	}

	// Truncation happens on the plain text, before styling: go-runewidth counts ANSI escape bytes as printable.
	var body string
	switch line.Kind {
	case textdiff.Unchanged:
		body = m.styles.unchanged.Render(m.truncate("  " + *line.Original))
	case textdiff.Removed:
		body = m.styles.removed.Render(m.truncate("- " + *line.Original))
	case textdiff.Added:
		body = m.styles.added.Render(m.truncate("+ " + *line.Revised))
	case textdiff.Modified:
		body = m.renderModified(i, line)
	}

	return cursorCell + gutter + statusCell + body
}

// renderModified previews the side the current acceptance state would keep, with the changed tokens emphasized.
func (m model) renderModified(idx int, line textdiff.DiffLine) string {
	inline := textdiff.ComputeInlineDiff(*line.Original, *line.Revised)
	if inline == nil {
		return m.styles.added.Render(m.truncate("~ " + *line.Revised))
	}

	// Preview follows acceptance: accepted shows the revised side, rejected the original.
	segments := inline.Original
	style := m.styles.removed
	if m.accepted[idx] {
		segments = inline.Revised
		style = m.styles.added
	}

	var b strings.Builder
	b.WriteString(style.Render("~ "))
	remaining := m.bodyLimit() - 2
	for _, s := range segments {
		text := s.Text
		if remaining >= 0 {
			if runewidth.StringWidth(text) > remaining {
				text = runewidth.Truncate(text, remaining, "…")
			}
			remaining -= runewidth.StringWidth(text)
		}
		if text == "" {
			continue
		}
		if s.Changed {
			b.WriteString(m.styles.emphasis.Render(text))
		} else {
			b.WriteString(style.Render(text))
		}
		if remaining <= 0 && m.bodyLimit() > 0 {
			break
		}
	}
	return b.String()
}

// bodyLimit is the display width available to a row's text; non-positive means "no limit" (no window size yet).
func (m model) bodyLimit() int {
	return m.width - 10 // cursor + gutter + status cells
}

// truncate trims plain row text to the available width, accounting for display cell widths.
func (m model) truncate(s string) string {
	limit := m.bodyLimit()
	if limit < 1 {
		return s
	}
	return runewidth.Truncate(s, limit, "…")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
