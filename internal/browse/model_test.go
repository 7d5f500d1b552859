package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubSource struct {
	names   []string
	records [][]string
}

func (s stubSource) Rows() int { return len(s.records) }

func (s stubSource) Names() []string { return s.names }

func (s stubSource) Window(start, n int) [][]string {
	if start >= len(s.records) {
		return nil
	}
	end := start + n
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[start:end]
}

func TestBuildTableDataWidths(t *testing.T) {
	src := stubSource{
		names: []string{"Start Station", "N"},
		records: [][]string{
			{"Lake Shore Dr & Monroe St", "1"},
			{strings.Repeat("x", 50), "2"},
		},
	}
	cols, rows := buildTableData(src)
	if len(cols) != 2 || len(rows) != 2 {
		t.Fatalf("expected 2 columns and rows, got %d/%d", len(cols), len(rows))
	}
	if cols[0].Width != maxColumnWidth {
		t.Fatalf("expected clamped width %d, got %d", maxColumnWidth, cols[0].Width)
	}
	if cols[1].Width != minColumnWidth {
		t.Fatalf("expected min width %d, got %d", minColumnWidth, cols[1].Width)
	}
}

func TestModelNavigationAndQuit(t *testing.T) {
	src := stubSource{
		names:   []string{"A"},
		records: [][]string{{"1"}, {"2"}, {"3"}},
	}
	m := NewModel(Title("new york city", "all", "monday"), src)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(m.View(), "New York City | month: All | day: Monday") {
		t.Fatalf("expected title in view: %s", m.View())
	}
	if !strings.Contains(m.View(), "Row 1 of 3") {
		t.Fatalf("expected first row position: %s", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !strings.Contains(m.View(), "Row 3 of 3") {
		t.Fatalf("expected last row position: %s", m.View())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModelEmptySource(t *testing.T) {
	m := NewModel("empty", stubSource{names: []string{"A"}})
	if !strings.Contains(m.View(), "No trips match the selected filters.") {
		t.Fatalf("expected empty notice: %s", m.View())
	}
}
