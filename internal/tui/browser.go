// internal/tui/browser.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/preview"
	"github.com/ppr-ocean-ia/dcboard/internal/util"
)

const (
	listWidth    = 42
	headerHeight = 2
	footerHeight = 2
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	listStyle     = lipgloss.NewStyle().Width(listWidth).PaddingRight(2)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

// entry is one browsable table of the report.
type entry struct {
	section leaderboard.Section
	table   *leaderboard.PivotTable
}

func (e entry) title() string { return e.section.Title() }

// Model is the bubbletea model of the report browser.
type Model struct {
	title    string
	entries  []entry
	selected int
	viewport viewport.Model
	width    int
	height   int
}

// New builds a browser over the tables among items.
func New(title string, items []leaderboard.Item) *Model {
	m := &Model{title: title, viewport: viewport.New(80, 20)}
	for _, it := range items {
		if it.Kind == leaderboard.ItemTable && it.Table != nil {
			m.entries = append(m.entries, entry{section: it.Section, table: it.Table})
		}
	}
	m.refresh()
	return m
}

// Selected returns the index of the highlighted table.
func (m *Model) Selected() int { return m.selected }

// Len returns the number of browsable tables.
func (m *Model) Len() int { return len(m.entries) }

func (m *Model) Init() tea.Cmd { return nil }

// Update handles selection, scrolling and quitting.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
			return m, nil
		case "down", "j":
			m.move(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-listWidth, 10)
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.entries) {
		return
	}
	m.selected = next
	m.refresh()
}

// refresh loads the selected table into the viewport.
func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(emptyStyle.Render("No tables to display."))
		return
	}
	e := m.entries[m.selected]
	var b strings.Builder
	b.WriteString(sectionHeader.Render(e.title()))
	b.WriteString("\n\n")
	b.WriteString(preview.Table(e.table))
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m *Model) listView() string {
	var b strings.Builder
	for i, e := range m.entries {
		title := util.TruncateRunes(e.title(), listWidth-4)
		if i == m.selected {
			b.WriteString(cursorStyle.Render("> " + title))
		} else {
			b.WriteString(itemStyle.Render("  " + title))
		}
		b.WriteString("\n")
	}
	return listStyle.Render(b.String())
}

// View renders the section list beside the selected table.
func (m *Model) View() string {
	header := titleStyle.Render(m.title)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), m.viewport.View())
	footer := footerStyle.Render(fmt.Sprintf("%d/%d  ↑/↓ select • pgup/pgdn scroll • q quit", m.position(), len(m.entries)))
	return header + "\n\n" + body + "\n" + footer
}

func (m *Model) position() int {
	if len(m.entries) == 0 {
		return 0
	}
	return m.selected + 1
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(title string, items []leaderboard.Item) error {
	p := tea.NewProgram(New(title, items), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
