// Package gallery is the browse screen: a search box, a genre checklist and
// a paginated grid of movie cards.
package gallery

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

const (
	debounceID = "gallery"
	cardWidth  = 32
	cardHeight = 7
)

type pageMsg struct {
	token uint64
	page  *tmdb.Page
	err   error
}

type genresMsg struct {
	genres []tmdb.Genre
	err    error
}

type focus int

const (
	focusInput focus = iota
	focusGenres
	focusGrid
)

// Model is the gallery screen.
type Model struct {
	ctx     context.Context
	catalog common.Catalog
	logger  *slog.Logger

	input     textinput.Model
	ctrl      *browse.Controller
	debouncer common.Debouncer
	spinner   spinner.Model

	genres        []tmdb.Genre
	genresLoading bool
	genresErr     error
	genreCursor   int

	focus    focus
	selected int
	width    int
	height   int

	resume bool
}

// New creates the gallery screen. Nothing is fetched until Resume.
func New(ctx context.Context, catalog common.Catalog, debounce time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Search, or leave empty to browse popular movies..."
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase05)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	return Model{
		ctx:       ctx,
		catalog:   catalog,
		logger:    logger.With("screen", "gallery"),
		input:     ti,
		ctrl:      browse.NewController(browse.ModeBrowse),
		debouncer: common.NewDebouncer(debounceID, debounce),
		spinner:   sp,
		focus:     focusGrid,
	}
}

// Init is a no-op; the first fetch happens on Resume.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(20, width-12)
}

// SetDebounce changes the debounce window.
func (m *Model) SetDebounce(d time.Duration) {
	m.debouncer.SetDelay(d)
}

// InputFocused reports whether keys are going to the search box.
func (m Model) InputFocused() bool {
	return m.focus == focusInput
}

// Controller exposes the state for tests and the app shell.
func (m Model) Controller() *browse.Controller {
	return m.ctrl
}

// Suspend cancels pending debounce and in-flight requests; Resume picks
// them up again.
func (m *Model) Suspend() {
	if _, pending := m.debouncer.Cancel(); pending {
		m.resume = true
	}
	if m.ctrl.State() == browse.Loading {
		m.resume = true
	}
	m.ctrl.Cancel()
}

// Resume is called whenever the screen becomes active. It loads the genre
// list once, makes the first fetch, and re-issues anything Suspend cut off.
func (m *Model) Resume() tea.Cmd {
	var cmds []tea.Cmd

	if m.genres == nil && !m.genresLoading {
		m.genresLoading = true
		catalog, ctx := m.catalog, m.ctx
		cmds = append(cmds, func() tea.Msg {
			genres, err := catalog.GetMovieGenres(ctx)
			return genresMsg{genres: genres, err: err}
		})
	}

	if m.resume || m.ctrl.State() == browse.Idle {
		m.resume = false
		m.ctrl.SetQuery(m.input.Value())
		cmds = append(cmds, m.fetch())
	}

	if m.focus == focusInput {
		cmds = append(cmds, m.input.Focus())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.DebounceMsg:
		if !m.debouncer.Accept(msg) {
			return m, nil
		}
		if !m.ctrl.SetQuery(msg.Value) {
			return m, nil
		}
		cmd := m.fetch()
		return m, cmd

	case pageMsg:
		if !m.ctrl.Complete(msg.token, msg.page, msg.err) {
			m.logger.Debug("dropping stale page", "token", msg.token)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("page fetch failed",
				"query", m.ctrl.Query(),
				"page", m.ctrl.Page(),
				"genres", m.ctrl.Genres().IDs(),
				"error", msg.err)
		}
		m.selected = 0
		return m, nil

	case genresMsg:
		m.genresLoading = false
		if msg.err != nil {
			m.logger.Error("failed to load genres", "error", msg.err)
			m.genresErr = msg.err
			return m, nil
		}
		m.genresErr = nil
		m.genres = msg.genres
		if m.genres == nil {
			m.genres = []tmdb.Genre{}
		}
		return m, nil

	case common.CardStepMsg:
		m.moveSelection(msg.Delta)
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

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusGenres:
		return m.handleGenreKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, common.Keys.Back):
		m.setFocus(focusGrid)
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.debouncer.Cancel()
		var cmd tea.Cmd
		if m.ctrl.SetQuery(m.input.Value()) || m.ctrl.State() == browse.Errored {
			cmd = m.fetch()
		}
		m.setFocus(focusGrid)
		return m, cmd
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown:
		m.setFocus(focusGenres)
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

func (m Model) handleGenreKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, common.Keys.Back):
		m.setFocus(focusGrid)
	case msg.Type == tea.KeyTab, key.Matches(msg, common.Keys.Down):
		m.setFocus(focusGrid)
	case msg.Type == tea.KeyShiftTab, key.Matches(msg, common.Keys.Up):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, common.Keys.Left):
		if m.genreCursor > 0 {
			m.genreCursor--
		}
	case key.Matches(msg, common.Keys.Right):
		if m.genreCursor < len(m.genres)-1 {
			m.genreCursor++
		}
	case key.Matches(msg, common.Keys.ToggleGenre):
		if m.genreCursor < len(m.genres) {
			m.ctrl.ToggleGenre(m.genres[m.genreCursor].ID)
			cmd := m.fetch()
			return m, cmd
		}
	case key.Matches(msg, common.Keys.ClearGenres):
		if m.ctrl.ClearGenres() {
			cmd := m.fetch()
			return m, cmd
		}
	case key.Matches(msg, common.Keys.NextPage):
		cmd := m.nextPage()
		return m, cmd
	case key.Matches(msg, common.Keys.PrevPage):
		cmd := m.prevPage()
		return m, cmd
	case key.Matches(msg, common.Keys.Retry):
		if m.genresErr != nil {
			cmd := m.retryGenres()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := m.ctrl.Visible()

	// the selected card's own affordances win over grid keys
	if m.selected < len(visible) {
		if cmd, handled := m.card(visible, m.selected).HandleKey(msg); handled {
			return m, cmd
		}
	}

	cols := m.columns()
	switch {
	case key.Matches(msg, common.Keys.Back):
		return m, func() tea.Msg { return common.GoToHomeMsg{} }
	case key.Matches(msg, common.Keys.Filter):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case msg.Type == tea.KeyTab:
		m.setFocus(focusInput)
		return m, textinput.Blink
	case msg.Type == tea.KeyShiftTab:
		m.setFocus(focusGenres)
	case key.Matches(msg, common.Keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, common.Keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, common.Keys.Up):
		if m.selected-cols < 0 {
			m.setFocus(focusGenres)
		} else {
			m.moveSelection(-cols)
		}
	case key.Matches(msg, common.Keys.Down):
		if m.selected+cols < len(visible) {
			m.moveSelection(cols)
		}
	case key.Matches(msg, common.Keys.NextPage):
		cmd := m.nextPage()
		return m, cmd
	case key.Matches(msg, common.Keys.PrevPage):
		cmd := m.prevPage()
		return m, cmd
	case key.Matches(msg, common.Keys.SortKey):
		k, o := m.ctrl.Sort()
		m.ctrl.SetSort(k.Next(), o)
		m.selected = 0
	case key.Matches(msg, common.Keys.SortOrder):
		k, o := m.ctrl.Sort()
		m.ctrl.SetSort(k, o.Toggle())
		m.selected = 0
	case key.Matches(msg, common.Keys.Retry):
		if m.ctrl.State() == browse.Errored {
			cmd := m.fetch()
			return m, cmd
		}
	case key.Matches(msg, common.Keys.Select):
		if m.ctrl.State() == browse.Loaded && m.selected < len(visible) {
			id := visible[m.selected].ID
			nav := m.ctrl.NavContext()
			return m, func() tea.Msg {
				return common.OpenDetailMsg{ID: id, Nav: nav, From: common.GalleryScreen}
			}
		}
	}
	return m, nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) moveSelection(delta int) {
	n := len(m.ctrl.Visible())
	next := m.selected + delta
	if next < 0 || next >= n {
		return
	}
	m.selected = next
}

func (m *Model) nextPage() tea.Cmd {
	if !m.ctrl.NextPage() {
		return nil
	}
	return m.fetch()
}

func (m *Model) prevPage() tea.Cmd {
	if !m.ctrl.PrevPage() {
		return nil
	}
	return m.fetch()
}

func (m *Model) retryGenres() tea.Cmd {
	m.genresErr = nil
	m.genresLoading = true
	catalog, ctx := m.catalog, m.ctx
	return func() tea.Msg {
		genres, err := catalog.GetMovieGenres(ctx)
		return genresMsg{genres: genres, err: err}
	}
}

func (m *Model) fetch() tea.Cmd {
	req, ok := m.ctrl.Begin(m.ctx)
	if !ok {
		return nil
	}
	m.selected = 0
	m.logger.Debug("fetching page",
		"query", req.Query,
		"page", req.Page,
		"discover", req.Discover(),
		"token", req.Token)

	catalog := m.catalog
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := req.Run(catalog)
		return pageMsg{token: req.Token, page: page, err: err}
	})
}

// columns is how many cards fit side by side.
func (m Model) columns() int {
	return max(1, m.width/cardWidth)
}

// card builds the card at i, wiring prev/next to its neighbours when it is
// the selected one.
func (m Model) card(visible []tmdb.Movie, i int) moviecard.Card {
	c := moviecard.Card{
		Movie:     visible[i],
		PosterURL: m.catalog.ImageURL(visible[i].PosterPath),
		Selected:  m.focus == focusGrid && i == m.selected,
	}
	if i != m.selected {
		return c
	}
	if i > 0 {
		c.OnPrev = func() tea.Msg { return common.CardStepMsg{Delta: -1} }
	}
	if i < len(visible)-1 {
		c.OnNext = func() tea.Msg { return common.CardStepMsg{Delta: 1} }
	}
	return c
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("  BROWSE MOVIES  "))
	b.WriteString("\n\n")

	box := styles.InputBoxStyle
	if m.focus == focusInput {
		box = styles.InputBoxFocusedStyle
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.genreBar())
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	b.WriteString(m.body())

	var help string
	switch m.focus {
	case focusInput:
		help = "  type to search • enter apply • tab genres • esc grid"
	case focusGenres:
		help = "  ←/→ move • space toggle • c clear • n/p page • tab grid"
	default:
		help = "  ←↑↓→ move • [/] step • enter details • n/p page • s sort • / search • esc home"
	}
	b.WriteString("\n" + styles.HelpStyle.Render(help))

	return b.String()
}

func (m Model) genreBar() string {
	switch {
	case m.genresErr != nil:
		return styles.ErrorStyle.Render("  Failed to load genres (r to retry)")
	case m.genres == nil:
		return styles.MutedStyle.Render("  Loading genres...")
	case len(m.genres) == 0:
		return ""
	}
	cursor := -1
	if m.focus == focusGenres {
		cursor = m.genreCursor
	}
	bar := renderGenres(m.genres, m.ctrl.Genres(), cursor, max(20, m.width-4))
	return lipgloss.NewStyle().MarginLeft(2).Render(bar)
}

func (m Model) statusLine() string {
	var parts []string

	if m.ctrl.Query() == "" {
		parts = append(parts, "Popular")
	} else {
		parts = append(parts, fmt.Sprintf("Results for %q", m.ctrl.Query()))
	}
	if total := m.ctrl.TotalPages(); total > 0 {
		parts = append(parts, fmt.Sprintf("Page %d of %d", m.ctrl.Page(), total))
	}
	if k, o := m.ctrl.Sort(); k != browse.SortNone {
		parts = append(parts, fmt.Sprintf("Sort: %s %s", k.Label(), o))
	}

	line := styles.MetadataStyle.Render("  " + strings.Join(parts, " • "))
	if m.ctrl.PostFiltered() {
		names := strings.Join(selectedNames(m.genres, m.ctrl.Genres()), ", ")
		line += "\n" + styles.MutedStyle.Render(
			fmt.Sprintf("  Genre filter (%s) applies to this page only", names))
	}
	return line
}

func (m Model) body() string {
	switch m.ctrl.State() {
	case browse.Idle:
		return ""
	case browse.Loading:
		return "  " + m.spinner.View() + " " + styles.MetadataStyle.Render("Loading movies...")
	case browse.Errored:
		return styles.ErrorStyle.Render("  Failed to load movies. Please try again.") + "\n" +
			styles.MutedStyle.Render("  "+m.ctrl.Err().Error()+" (r to retry)")
	}

	visible := m.ctrl.Visible()
	if len(visible) == 0 {
		if m.ctrl.PostFiltered() {
			return styles.MutedStyle.Render("  No movies on this page match the selected genres")
		}
		if m.ctrl.Query() != "" {
			return styles.MutedStyle.Render(fmt.Sprintf("  No movies found for %q", m.ctrl.Query()))
		}
		return styles.MutedStyle.Render("  No movies found")
	}

	cols := m.columns()
	rows := (len(visible) + cols - 1) / cols
	maxRows := max(1, (m.height-16)/cardHeight)
	selRow := m.selected / cols
	startRow := 0
	if selRow >= maxRows {
		startRow = selRow - maxRows + 1
	}
	endRow := min(rows, startRow+maxRows)

	var grid []string
	for r := startRow; r < endRow; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(visible) {
				break
			}
			cards = append(cards, m.card(visible, i).View(cardWidth))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.NewStyle().MarginLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, grid...))
}
