package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/archiview/pkg/viewpoint"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m ViewpointListModel, keys ...string) (ViewpointListModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(ViewpointListModel)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewpointListNavigation(t *testing.T) {
	vps := viewpoint.All()
	if len(vps) < 3 {
		t.Fatalf("only %d viewpoints", len(vps))
	}

	tests := []struct {
		name   string
		keys   []string
		cursor int
	}{
		{"start", nil, 0},
		{"down", []string{"down"}, 1},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped at top", []string{"up", "k"}, 0},
		{"clamped at bottom", repeat("down", len(vps)+3), len(vps) - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, NewViewpointListModel(vps), tt.keys...)
			if m.Cursor != tt.cursor {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.cursor)
			}
			if isQuit(cmd) || m.Selected != nil {
				t.Error("navigation ended the program")
			}
		})
	}
}

func TestViewpointListSelect(t *testing.T) {
	vps := viewpoint.All()
	m, cmd := press(t, NewViewpointListModel(vps), "down", "enter")
	if m.Selected != vps[1] {
		t.Errorf("Selected = %v, want %s", m.Selected, vps[1].Name())
	}
	if !isQuit(cmd) {
		t.Error("enter should quit")
	}

	for _, k := range []string{"q", "esc"} {
		m, cmd := press(t, NewViewpointListModel(vps), k)
		if m.Selected != nil || !isQuit(cmd) {
			t.Errorf("%s: Selected = %v, quit = %v", k, m.Selected, isQuit(cmd))
		}
	}

	m, cmd = press(t, NewViewpointListModel(nil), "enter")
	if m.Selected != nil || isQuit(cmd) {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestViewpointListScrolling(t *testing.T) {
	vps := viewpoint.All()
	next, _ := NewViewpointListModel(vps).Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m := next.(ViewpointListModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	m, _ = press(t, m, repeat("down", 6)...)
	if m.Cursor != 6 || m.Offset != 2 {
		t.Errorf("Cursor, Offset = %d, %d; want 6, 2", m.Cursor, m.Offset)
	}
	view := m.View()
	if strings.Contains(view, vps[0].Name()+" ") || !strings.Contains(view, vps[6].Name()) {
		t.Errorf("window does not follow the cursor:\n%s", view)
	}
	m, _ = press(t, m, repeat("up", 5)...)
	if m.Offset != 1 {
		t.Errorf("Offset after scrolling up = %d, want 1", m.Offset)
	}
}

func TestViewpointListView(t *testing.T) {
	m := NewViewpointListModel(viewpoint.All())
	view := m.View()
	for _, want := range []string{"Select Viewpoint", "> ", "Application Behavior", "element kind", "relationship kind"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "[1/") {
		t.Error("view missing position indicator")
	}
}

func TestViewpointsInteractiveConflictsWithKinds(t *testing.T) {
	if _, err := run(t, "viewpoints", "--kinds", "-i"); err == nil {
		t.Error("expected --kinds and --interactive to be rejected together")
	}
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
