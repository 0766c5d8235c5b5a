package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

// HelpContext represents which view the help is being shown in
type HelpContext int

const (
	GlobalContext HelpContext = iota
	HomeContext
	ListContext
	GalleryContext
	DetailContext
)

// ContextFor maps a screen to its help context.
func ContextFor(s common.Screen) HelpContext {
	switch s {
	case common.ListScreen:
		return ListContext
	case common.GalleryScreen:
		return GalleryContext
	case common.DetailScreen:
		return DetailContext
	default:
		return HomeContext
	}
}

// Shortcut is one help line, taken from a key binding.
type Shortcut struct {
	Key         string
	Description string
	Context     []HelpContext
}

func fromBinding(b key.Binding, desc string, ctx ...HelpContext) Shortcut {
	h := b.Help()
	if desc == "" {
		desc = h.Desc
	}
	return Shortcut{Key: h.Key, Description: desc, Context: ctx}
}

var keys = common.Keys

var allShortcuts = []Shortcut{
	fromBinding(keys.Up, "", GlobalContext),
	fromBinding(keys.Down, "", GlobalContext),
	fromBinding(keys.Back, "", GlobalContext),
	fromBinding(keys.Help, "", GlobalContext),
	fromBinding(keys.Quit, "Quit (outside text inputs)", GlobalContext),
	fromBinding(keys.ForceQuit, "Quit from anywhere", GlobalContext),

	fromBinding(keys.List, "Search movies by title", HomeContext),
	fromBinding(keys.Gallery, "Browse the gallery", HomeContext),
	fromBinding(keys.Select, "Open the highlighted entry", HomeContext),

	{Key: "type", Description: "Search (after a short pause)", Context: []HelpContext{ListContext, GalleryContext}},
	fromBinding(keys.Focus, "", ListContext, GalleryContext),
	fromBinding(keys.Select, "", ListContext, GalleryContext),
	fromBinding(keys.SortKey, "", ListContext, GalleryContext),
	fromBinding(keys.SortOrder, "", ListContext, GalleryContext),
	fromBinding(keys.Filter, "", ListContext),
	fromBinding(keys.Filter, "Focus the search box", GalleryContext),

	fromBinding(keys.Left, "Previous card", GalleryContext),
	fromBinding(keys.Right, "Next card", GalleryContext),
	fromBinding(keys.PrevCard, "", GalleryContext),
	fromBinding(keys.NextCard, "", GalleryContext),
	fromBinding(keys.NextPage, "", GalleryContext),
	fromBinding(keys.PrevPage, "", GalleryContext),
	fromBinding(keys.ToggleGenre, "Toggle genre (genre bar)", GalleryContext),
	fromBinding(keys.ClearGenres, "Clear genres (genre bar)", GalleryContext),
	fromBinding(keys.Retry, "", GalleryContext),

	fromBinding(keys.Previous, "", DetailContext),
	fromBinding(keys.Next, "", DetailContext),
	{Key: "↑/↓", Description: "Scroll the overview", Context: []HelpContext{DetailContext}},
	fromBinding(keys.Open, "", DetailContext),
	fromBinding(keys.Copy, "", DetailContext),
	fromBinding(keys.Retry, "Retry after an error", DetailContext),
}

// Model represents the help panel state
type Model struct {
	context      HelpContext
	width        int
	height       int
	visible      bool
	scrollOffset int
}

// New creates a new help model
func New() Model {
	return Model{context: HomeContext}
}

// Init initializes the help model
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update scrolls while the panel is shown.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.visible {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "down", "j":
		m.scrollOffset++
	case "pgup", "b":
		m.scrollOffset = max(0, m.scrollOffset-10)
	case "pgdown", "f":
		m.scrollOffset += 10
	case "home", "g":
		m.scrollOffset = 0
	}
	return m, nil
}

// View renders the help panel
func (m Model) View() string {
	if !m.visible || m.width == 0 || m.height == 0 {
		return ""
	}

	var content strings.Builder

	content.WriteString(styles.HelpStyle.Render("↑/↓ j/k scroll • esc/? close"))
	content.WriteString("\n\n")

	content.WriteString(styles.HeaderStyle.Render("Navigation & General"))
	content.WriteString("\n")
	for _, sc := range forContext(GlobalContext) {
		content.WriteString(renderShortcutLine(sc))
		content.WriteString("\n")
	}

	if specific := forContext(m.context); len(specific) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.HeaderStyle.Render(m.contextName() + " Actions"))
		content.WriteString("\n")
		for _, sc := range specific {
			content.WriteString(renderShortcutLine(sc))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")

	available := max(10, m.height-6)
	offset := m.scrollOffset
	if offset > len(lines)-available {
		offset = len(lines) - available
	}
	offset = max(0, offset)
	end := min(len(lines), offset+available)

	scrollInfo := ""
	if len(lines) > available {
		scrollInfo = fmt.Sprintf(" (%d-%d/%d)", offset+1, end, len(lines))
	}

	boxWidth := 64
	if m.width < boxWidth+4 {
		boxWidth = max(40, m.width-4)
	}

	titleBar := lipgloss.NewStyle().
		Foreground(styles.OxocarbonWhite).
		Background(styles.OxocarbonPurple).
		Padding(0, 2).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render("KEYBOARD SHORTCUTS" + scrollInfo)

	box := styles.PopupStyle.
		Padding(0, 2).
		Width(boxWidth).
		Render(titleBar + "\n\n" + strings.Join(lines[offset:end], "\n"))

	if lipgloss.Height(box) >= m.height {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetContext sets the current help context
func (m *Model) SetContext(ctx HelpContext) {
	m.context = ctx
}

// Toggle toggles the visibility of the help panel
func (m *Model) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// Show shows the help panel
func (m *Model) Show() {
	m.visible = true
	m.scrollOffset = 0
}

// Hide hides the help panel
func (m *Model) Hide() {
	m.visible = false
	m.scrollOffset = 0
}

// IsVisible returns whether the help panel is visible
func (m Model) IsVisible() bool {
	return m.visible
}

func renderShortcutLine(sc Shortcut) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonPurple).
		Bold(true).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonBase05)

	return "  " + keyStyle.Render(sc.Key) + descStyle.Render(sc.Description)
}

func (m Model) contextName() string {
	switch m.context {
	case HomeContext:
		return "Home"
	case ListContext:
		return "Search"
	case GalleryContext:
		return "Gallery"
	case DetailContext:
		return "Movie"
	default:
		return ""
	}
}

// forContext returns the shortcuts tagged with ctx, in declaration order.
func forContext(ctx HelpContext) []Shortcut {
	var out []Shortcut
	for _, sc := range allShortcuts {
		for _, c := range sc.Context {
			if c == ctx {
				out = append(out, sc)
				break
			}
		}
	}
	return out
}
