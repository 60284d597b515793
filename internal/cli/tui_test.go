package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testRows() []trayRow {
	return []trayRow{
		{Name: "T-100", Dimensions: "400 × 300", CableCount: 5, FreePercent: 42.0, HasSummary: true},
		{Name: "T-200", Dimensions: "300 × 100", CableCount: 2, FreePercent: 8.5, HasSummary: true},
		{Name: "T-300", Dimensions: "200 × 100", CableCount: 9, Warning: "Too many cable types on the tray"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestTrayListNavigation(t *testing.T) {
	m := NewTrayListModel(testRows())

	next, _ := m.Update(keyMsg("down"))
	m = next.(TrayListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(TrayListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg("up"))
	m = next.(TrayListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestTrayListSelection(t *testing.T) {
	m := NewTrayListModel(testRows())

	next, _ := m.Update(keyMsg("down"))
	m = next.(TrayListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(TrayListModel)

	if m.Selected != "T-200" {
		t.Errorf("Selected = %q, want T-200", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestTrayListView(t *testing.T) {
	m := NewTrayListModel(testRows())
	view := m.View()

	for _, want := range []string{"T-100", "T-200", "T-300", "42.0%", "8.5%", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// Trays without a computed summary show a dash.
	if !strings.Contains(view, "—") {
		t.Error("view missing placeholder for missing summary")
	}
}
