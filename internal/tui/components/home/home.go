package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

type action struct {
	key         string
	title       string
	description string
	msg         tea.Msg
}

var actions = []action{
	{key: "s", title: "Search", description: "Find movies by title", msg: common.GoToListMsg{}},
	{key: "g", title: "Gallery", description: "Browse popular movies by genre", msg: common.GoToGalleryMsg{}},
	{key: "q", title: "Quit", description: "Leave reel", msg: tea.QuitMsg{}},
}

type Model struct {
	width    int
	height   int
	selected int
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected is the highlighted menu entry.
func (m Model) Selected() int {
	return m.selected
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, common.Keys.Up):
		if m.selected > 0 {
			m.selected--
		} else {
			m.selected = len(actions) - 1
		}
	case key.Matches(keyMsg, common.Keys.Down):
		if m.selected < len(actions)-1 {
			m.selected++
		} else {
			m.selected = 0
		}
	case key.Matches(keyMsg, common.Keys.Select):
		return m, send(actions[m.selected].msg)
	case key.Matches(keyMsg, common.Keys.List):
		return m, send(common.GoToListMsg{})
	case key.Matches(keyMsg, common.Keys.Gallery):
		return m, send(common.GoToGalleryMsg{})
	}
	return m, nil
}

func send(msg tea.Msg) tea.Cmd {
	if _, quit := msg.(tea.QuitMsg); quit {
		return tea.Quit
	}
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	var output strings.Builder

	output.WriteString(styles.TitleStyle.Render("  reel  "))
	output.WriteString("  ")
	output.WriteString(styles.MutedStyle.Render("movies from TMDB"))
	output.WriteString("\n\n")

	output.WriteString(styles.SubtitleStyle.Render("Quick Actions"))
	output.WriteString("\n")
	for i, a := range actions {
		output.WriteString(m.renderAction(a, i == m.selected))
		output.WriteString("\n")
	}

	separator := strings.Repeat("─", m.separatorWidth())
	output.WriteString("\n")
	output.WriteString(styles.MutedStyle.Render(separator))
	output.WriteString("\n")
	output.WriteString(styles.HelpStyle.Render("↑/↓ navigate  •  enter select  •  ? help  •  q quit"))

	return output.String()
}

func (m Model) separatorWidth() int {
	w := 60
	if m.width > 4 && m.width-4 < w {
		w = m.width - 4
	}
	return max(1, w)
}

// renderAction renders a menu entry as key, title and description columns.
func (m Model) renderAction(a action, selected bool) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonCyan).
		Bold(true).
		Width(8)

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonBase05).
		Bold(true).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonBase03)

	cursor := "  "
	if selected {
		cursor = styles.NavArrowStyle.Render("› ")
		titleStyle = titleStyle.Foreground(styles.OxocarbonPurple)
	}

	return cursor + keyStyle.Render("["+a.key+"]") + titleStyle.Render(a.title) + descStyle.Render(a.description)
}
