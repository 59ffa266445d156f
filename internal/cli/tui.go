package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/archiview/pkg/viewpoint"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ViewpointListModel is the bubbletea model for browsing the built-in
// viewpoints. Enter picks the viewpoint under the cursor.
type ViewpointListModel struct {
	Viewpoints []*viewpoint.Viewpoint
	Cursor     int
	Offset     int
	Height     int
	Selected   *viewpoint.Viewpoint
}

// NewViewpointListModel creates a list over vps.
func NewViewpointListModel(vps []*viewpoint.Viewpoint) ViewpointListModel {
	return ViewpointListModel{Viewpoints: vps, Height: 15}
}

func (m ViewpointListModel) Init() tea.Cmd {
	return nil
}

func (m ViewpointListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Viewpoints)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Viewpoints) == 0 {
				return m, nil
			}
			m.Selected = m.Viewpoints[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// title, hint, blank line and the preview below the list
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m ViewpointListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Viewpoint"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("up/down: navigate  enter: show  q: quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Viewpoints))
	for i := m.Offset; i < end; i++ {
		vp := m.Viewpoints[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-40s %s", cursor, vp.Name(), listDimStyle.Render(kindSummary(vp)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Viewpoints) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Viewpoints))))
	}
	return b.String()
}

func kindSummary(vp *viewpoint.Viewpoint) string {
	if vp.IsTotal() {
		return "everything"
	}
	return summarize(len(vp.ElementKinds()), "element kind") + ", " +
		summarize(len(vp.RelationshipKinds()), "relationship kind")
}
