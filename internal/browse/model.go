// Package browse provides the Bubble Tea table view of a filtered dataset.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/pager"
)

const (
	maxColumnWidth = 32
	minColumnWidth = 4
	headerLines    = 2
	footerLines    = 1
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea dataset browser.
type Model struct {
	title string
	table table.Model
	rows  int

	width  int
	height int
}

// NewModel builds a browser over every row of src.
func NewModel(title string, src pager.Source) *Model {
	columns, rows := buildTableData(src)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return &Model{title: title, table: t, rows: len(rows)}
}

// Title formats the header line for a city and filter pair.
func Title(city, month, day string) string {
	return fmt.Sprintf("%s | month: %s | day: %s", config.Title(city), config.Title(month), config.Title(day))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(maxInt(1, msg.Height-headerLines-footerLines))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	header := headerStyle.Render(m.title) + "\n" + mutedStyle.Render(m.position())
	footer := mutedStyle.Render("↑/↓ move • g/G top/bottom • q quit")
	return strings.Join([]string{header, m.table.View(), footer}, "\n")
}

func (m *Model) position() string {
	if m.rows == 0 {
		return "No trips match the selected filters."
	}
	return fmt.Sprintf("Row %d of %d", m.table.Cursor()+1, m.rows)
}

func buildTableData(src pager.Source) ([]table.Column, []table.Row) {
	names := src.Names()
	records := src.Window(0, src.Rows())
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = runewidth.StringWidth(name)
	}
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		for i, cell := range record {
			if i < len(widths) {
				widths[i] = maxInt(widths[i], runewidth.StringWidth(cell))
			}
		}
		rows = append(rows, table.Row(record))
	}
	columns := make([]table.Column, len(names))
	for i, name := range names {
		columns[i] = table.Column{Title: name, Width: clampWidth(widths[i])}
	}
	return columns, rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#C89A3A")).
		Bold(true)
	return styles
}

func clampWidth(w int) int {
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
