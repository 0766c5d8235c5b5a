// Package listview is the search screen: a debounced text query, client-side
// sort controls and the first page of matching movies.
package listview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/components/moviecard"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

const debounceID = "list"

// resultsMsg carries a search response back to the screen.
type resultsMsg struct {
	token uint64
	page  *tmdb.Page
	err   error
}

type focus int

const (
	focusInput focus = iota
	focusResults
)

// Model is the list screen.
type Model struct {
	ctx     context.Context
	catalog common.Catalog
	logger  *slog.Logger

	input     textinput.Model
	ctrl      *browse.Controller
	debouncer common.Debouncer
	spinner   spinner.Model
	filter    *common.FuzzyFilter

	focus  focus
	cursor int
	width  int
	height int

	// resume is set when the screen was left with a search still pending.
	resume bool
}

// New creates the list screen. debounce is the quiet period after the last
// keystroke before a search is sent.
func New(ctx context.Context, catalog common.Catalog, debounce time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a movie..."
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase05)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	return Model{
		ctx:       ctx,
		catalog:   catalog,
		logger:    logger.With("screen", "list"),
		input:     ti,
		ctrl:      browse.NewController(browse.ModeSearch),
		debouncer: common.NewDebouncer(debounceID, debounce),
		spinner:   sp,
		filter:    common.NewFuzzyFilter(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(20, width-12)
	m.filter.SetWidth(width)
}

// SetDebounce changes the debounce window.
func (m *Model) SetDebounce(d time.Duration) {
	m.debouncer.SetDelay(d)
}

// InputFocused reports whether keys are going to a text input.
func (m Model) InputFocused() bool {
	return m.focus == focusInput || m.filter.IsEditing()
}

// Suspend is called when the screen is left. Pending debounce and in-flight
// requests are cancelled and remembered for Resume.
func (m *Model) Suspend() {
	if _, pending := m.debouncer.Cancel(); pending {
		m.resume = true
	}
	if m.ctrl.State() == browse.Loading {
		m.resume = true
	}
	m.ctrl.Cancel()
}

// Resume re-issues a search cancelled by Suspend.
func (m *Model) Resume() tea.Cmd {
	if !m.resume {
		return nil
	}
	m.resume = false
	m.ctrl.SetQuery(m.input.Value())
	return m.fetch()
}

// Controller exposes the state for tests and the app shell.
func (m Model) Controller() *browse.Controller {
	return m.ctrl
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.DebounceMsg:
		if !m.debouncer.Accept(msg) {
			return m, nil
		}
		cmd := m.search(msg.Value)
		return m, cmd

	case resultsMsg:
		if !m.ctrl.Complete(msg.token, msg.page, msg.err) {
			m.logger.Debug("dropping stale results", "token", msg.token)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("search failed", "query", m.ctrl.Query(), "error", msg.err)
		}
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() != browse.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, tea.Batch(inputCmd, m.filter.Update(msg))
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.filter.IsEditing() {
		switch msg.Type {
		case tea.KeyEsc:
			m.filter.Deactivate()
			m.cursor = 0
			return m, nil
		case tea.KeyEnter:
			m.filter.Lock()
			return m, nil
		}
		cmd := m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, common.Keys.Back):
			return m, func() tea.Msg { return common.GoToHomeMsg{} }
		case msg.Type == tea.KeyEnter:
			// skip the wait
			m.debouncer.Cancel()
			cmd := m.search(m.input.Value())
			if cmd == nil && m.ctrl.State() == browse.Loaded && len(m.visible()) > 0 {
				m.focusResults()
			}
			return m, cmd
		case msg.Type == tea.KeyDown || msg.Type == tea.KeyTab:
			if len(m.visible()) > 0 {
				m.focusResults()
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			trigger := m.debouncer.Trigger(m.input.Value())
			return m, tea.Batch(cmd, trigger)
		}
		return m, cmd
	}

	visible := m.visible()
	switch {
	case key.Matches(msg, common.Keys.Back):
		if m.filter.IsActive() {
			m.filter.Deactivate()
			m.cursor = 0
			return m, nil
		}
		m.focusInput()
		return m, textinput.Blink
	case key.Matches(msg, common.Keys.Focus):
		m.focusInput()
		return m, textinput.Blink
	case key.Matches(msg, common.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focusInput()
			return m, textinput.Blink
		}
	case key.Matches(msg, common.Keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, common.Keys.Filter):
		m.cursor = 0
		if m.filter.IsActive() {
			return m, m.filter.Unlock()
		}
		return m, m.filter.Activate()
	case key.Matches(msg, common.Keys.SortKey):
		k, o := m.ctrl.Sort()
		m.ctrl.SetSort(k.Next(), o)
		m.cursor = 0
	case key.Matches(msg, common.Keys.SortOrder):
		k, o := m.ctrl.Sort()
		m.ctrl.SetSort(k, o.Toggle())
		m.cursor = 0
	case key.Matches(msg, common.Keys.Select):
		if m.ctrl.State() == browse.Loaded && m.cursor < len(visible) {
			id := visible[m.cursor].ID
			nav := navContext(visible)
			return m, func() tea.Msg {
				return common.OpenDetailMsg{ID: id, Nav: nav, From: common.ListScreen}
			}
		}
	}
	return m, nil
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) focusResults() {
	m.focus = focusResults
	m.input.Blur()
	m.cursor = 0
}

// search applies value as the query and fetches if it changed.
func (m *Model) search(value string) tea.Cmd {
	changed := m.ctrl.SetQuery(value)
	if !changed && m.ctrl.State() != browse.Errored && m.ctrl.State() != browse.Idle {
		return nil
	}
	m.filter.Deactivate()
	return m.fetch()
}

func (m *Model) fetch() tea.Cmd {
	req, ok := m.ctrl.Begin(m.ctx)
	if !ok {
		m.cursor = 0
		return nil
	}
	m.logger.Debug("searching", "query", req.Query, "token", req.Token)

	catalog := m.catalog
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := req.Run(catalog)
		return resultsMsg{token: req.Token, page: page, err: err}
	})
}

// visible is what the list shows: sorted results narrowed by the fuzzy filter.
func (m Model) visible() []tmdb.Movie {
	return m.filter.Apply(m.ctrl.Visible())
}

func navContext(movies []tmdb.Movie) browse.NavContext {
	ids := make([]int, 0, len(movies))
	for _, mv := range movies {
		ids = append(ids, mv.ID)
	}
	return browse.NewNavContext(ids)
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("  SEARCH MOVIES  "))
	b.WriteString("\n\n")

	box := styles.InputBoxStyle
	if m.focus == focusInput {
		box = styles.InputBoxFocusedStyle
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n")

	k, o := m.ctrl.Sort()
	sortLine := fmt.Sprintf("Sort: %s", k.Label())
	if k != browse.SortNone {
		arrow := "↑"
		if o == browse.Descending {
			arrow = "↓"
		}
		sortLine += " " + arrow
	}
	b.WriteString(styles.MutedStyle.Render("  " + sortLine))
	b.WriteString("\n")

	if f := m.filter.View(); f != "" {
		b.WriteString("  " + f + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.body())

	help := "  type to search • enter search now • ↓ results • esc home"
	if m.focus == focusResults {
		help = "  ↑/↓ nav • enter details • s sort • o order • / filter • tab search • ? help"
	}
	b.WriteString("\n" + styles.HelpStyle.Render(help))

	return b.String()
}

func (m Model) body() string {
	switch m.ctrl.State() {
	case browse.Idle:
		if m.ctrl.Query() == "" {
			return styles.MutedStyle.Render("  Type in to search")
		}
		return ""
	case browse.Loading:
		return "  " + m.spinner.View() + " " + styles.MetadataStyle.Render("Searching...")
	case browse.Errored:
		return styles.ErrorStyle.Render("  Failed to load movies. Please try again.") + "\n" +
			styles.MutedStyle.Render("  "+m.ctrl.Err().Error())
	}

	visible := m.visible()
	if len(visible) == 0 {
		if m.filter.IsActive() && m.filter.Query() != "" {
			return styles.MutedStyle.Render(fmt.Sprintf("  No titles match %q on this page", m.filter.Query()))
		}
		return styles.MutedStyle.Render(fmt.Sprintf("  No movies found for %q", m.ctrl.Query()))
	}

	// each row is two lines
	rows := max(1, (m.height-14)/2)
	start, end := visibleRange(m.cursor, len(visible), rows)

	var b strings.Builder
	count := styles.MutedStyle.Render(fmt.Sprintf("  %d of %d results", len(visible), m.ctrl.TotalResults()))
	b.WriteString(count + "\n")
	for i := start; i < end; i++ {
		card := moviecard.Card{
			Movie:    visible[i],
			Selected: m.focus == focusResults && i == m.cursor,
		}
		b.WriteString(card.Row(m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// visibleRange keeps the cursor roughly centred in a window of size rows.
func visibleRange(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return start, end
}
