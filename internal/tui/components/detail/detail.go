// Package detail shows one movie in full and steps through the list it was
// opened from.
package detail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/styles"
	"github.com/justchokingaround/reel/internal/tui/utils"
)

type detailMsg struct {
	token  uint64
	id     int
	detail *tmdb.MovieDetail
	err    error
}

// Model is the detail screen.
type Model struct {
	ctx     context.Context
	catalog common.Catalog
	logger  *slog.Logger

	nav     browse.Navigator
	seq     *browse.Sequencer
	loading bool
	err     error
	movie   *tmdb.MovieDetail

	spinner  spinner.Model
	overview viewport.Model

	width  int
	height int
}

// New creates an empty detail screen.
func New(ctx context.Context, catalog common.Catalog, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	return Model{
		ctx:      ctx,
		catalog:  catalog,
		logger:   logger.With("screen", "detail"),
		seq:      &browse.Sequencer{},
		spinner:  sp,
		overview: viewport.New(60, 6),
	}
}

// Init does nothing until a movie is opened.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.overview.Width = max(20, width-8)
	m.overview.Height = max(3, height-24)
	m.refreshOverview()
}

// Open targets id within nav and starts fetching it. A response for any
// earlier target is discarded when it arrives.
func (m *Model) Open(id int, nav browse.NavContext) tea.Cmd {
	m.nav = browse.NewNavigator(id, nav)
	return m.fetch()
}

// Suspend cancels the in-flight fetch.
func (m *Model) Suspend() {
	m.seq.Cancel()
}

// Navigator exposes the current target and list.
func (m Model) Navigator() browse.Navigator {
	return m.nav
}

// Movie returns the loaded detail, nil while loading or after an error.
func (m Model) Movie() *tmdb.MovieDetail {
	return m.movie
}

// Err is the last fetch error.
func (m Model) Err() error {
	return m.err
}

// Loading reports whether a fetch is outstanding.
func (m Model) Loading() bool {
	return m.loading
}

func (m *Model) fetch() tea.Cmd {
	token, ctx := m.seq.Issue(m.ctx)
	id := m.nav.Target()

	m.loading = true
	m.err = nil
	m.movie = nil
	m.overview.SetContent("")
	m.overview.GotoTop()

	m.logger.Debug("fetching movie details", "id", id, "token", token)

	catalog := m.catalog
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		detail, err := catalog.GetMovieDetails(ctx, id)
		return detailMsg{token: token, id: id, detail: detail, err: err}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.NavigateDetailMsg:
		cmd := m.Open(msg.ID, msg.Nav)
		return m, cmd

	case detailMsg:
		if !m.seq.IsCurrent(msg.token) {
			m.logger.Debug("dropping stale details", "id", msg.id, "token", msg.token)
			return m, nil
		}
		m.seq.Done(msg.token)
		m.loading = false

		if msg.err != nil {
			m.logger.Error("failed to load movie details", "id", msg.id, "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.movie = msg.detail
		m.refreshOverview()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, common.Keys.Back):
		m.seq.Cancel()
		m.loading = false
		return m, func() tea.Msg { return common.BackMsg{} }

	case key.Matches(msg, common.Keys.Previous):
		if prev, ok := m.nav.Previous(); ok {
			return m, navigate(prev)
		}
	case key.Matches(msg, common.Keys.Next):
		if next, ok := m.nav.Next(); ok {
			return m, navigate(next)
		}

	case key.Matches(msg, common.Keys.Retry):
		if m.err != nil && !m.loading {
			cmd := m.fetch()
			return m, cmd
		}

	case key.Matches(msg, common.Keys.Open):
		if m.nav.Target() != 0 {
			url := m.catalog.MovieURL(m.nav.Target())
			return m, func() tea.Msg { return common.OpenBrowserMsg{URL: url} }
		}
	case key.Matches(msg, common.Keys.Copy):
		if m.nav.Target() != 0 {
			url := m.catalog.MovieURL(m.nav.Target())
			return m, func() tea.Msg { return common.CopyLinkMsg{URL: url} }
		}

	case key.Matches(msg, common.Keys.Up), key.Matches(msg, common.Keys.Down),
		msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func navigate(n browse.Navigator) tea.Cmd {
	return func() tea.Msg {
		return common.NavigateDetailMsg{ID: n.Target(), Nav: n.Context()}
	}
}

func (m *Model) refreshOverview() {
	if m.movie == nil {
		return
	}
	overview := m.movie.Overview
	if strings.TrimSpace(overview) == "" {
		overview = "No overview available."
	}
	lines := utils.WrapText(overview, m.overview.Width)
	m.overview.SetContent(styles.SynopsisStyle.Render(strings.Join(lines, "\n")))
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	header := styles.TitleStyle.Render("  MOVIE DETAILS  ")
	if pos, total := m.nav.Position(); pos > 0 {
		header += styles.MutedStyle.Render(fmt.Sprintf("  %d of %d", pos, total))
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spinner.View() + " " + styles.MetadataStyle.Render("Loading movie details..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render("  Failed to load movie details. Please try again."))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	case m.movie != nil:
		b.WriteString(m.renderMovie())
	}

	b.WriteString("\n")
	b.WriteString(m.navFooter())
	b.WriteString("\n")

	help := "  ←/→ prev/next • ↑/↓ scroll • o open in browser • y copy link • esc back"
	if m.err != nil {
		help = "  r retry • ←/→ prev/next • esc back"
	}
	b.WriteString(styles.HelpStyle.Render(help))
	return b.String()
}

func (m Model) renderMovie() string {
	d := m.movie
	indent := lipgloss.NewStyle().MarginLeft(2)
	width := max(20, m.width-6)

	var lines []string
	lines = append(lines, styles.URLStyle.Render(utils.TruncateWithWidth(m.catalog.ImageURL(d.PosterPath), width)))
	lines = append(lines, "")

	title := d.Title
	if year := d.Year(); year != "" {
		title += " (" + year + ")"
	}
	lines = append(lines, styles.MovieTitleStyle.Render(utils.TruncateWithWidth(title, width)))

	if d.Tagline != "" {
		lines = append(lines, styles.TaglineStyle.Render("\""+d.Tagline+"\""))
	}
	lines = append(lines, "")
	lines = append(lines, m.overview.View())
	lines = append(lines, "")

	facts := []struct{ label, value string }{
		{"Rating:", utils.FormatRatingWithVotes(d.VoteAverage, d.VoteCount)},
		{"Runtime:", utils.FormatRuntime(d.Runtime)},
		{"Genres:", utils.JoinOrNA(d.GenreNames())},
		{"Release Date:", utils.OrNA(d.ReleaseDate)},
	}
	for _, f := range facts {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.FactLabelStyle.Render(f.label),
			styles.FactValueStyle.Render(f.value)))
	}

	return indent.Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) navFooter() string {
	prev := styles.NavArrowDisabledStyle.Render("← Previous")
	if m.nav.HasPrevious() {
		prev = styles.NavArrowStyle.Render("← Previous")
	}
	next := styles.NavArrowDisabledStyle.Render("Next →")
	if m.nav.HasNext() {
		next = styles.NavArrowStyle.Render("Next →")
	}
	return "  " + prev + "   " + next
}
