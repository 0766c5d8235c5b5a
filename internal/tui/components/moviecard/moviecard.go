// Package moviecard renders a single movie summary, as a gallery card or a
// list row.
package moviecard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/styles"
	"github.com/justchokingaround/reel/internal/tui/utils"
)

// Card is a movie summary with optional prev/next affordances.
type Card struct {
	Movie     tmdb.Movie
	PosterURL string
	Selected  bool

	// OnPrev and OnNext enable the affordances; nil hides them.
	OnPrev tea.Cmd
	OnNext tea.Cmd
}

// HandleKey activates an affordance. When it does, the key is consumed and
// handled is true; the caller must not treat the key as anything else.
func (c Card) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch {
	case key.Matches(msg, common.Keys.PrevCard) && c.OnPrev != nil:
		return c.OnPrev, true
	case key.Matches(msg, common.Keys.NextCard) && c.OnNext != nil:
		return c.OnNext, true
	}
	return nil, false
}

// View renders the card boxed to width columns.
func (c Card) View(width int) string {
	inner := max(12, width-4)

	title := styles.MovieTitleStyle.Render(utils.TruncateToLines(c.Movie.Title, 2, inner))
	rating := lipgloss.NewStyle().
		Foreground(styles.RatingColor(c.Movie.VoteAverage)).
		Bold(true).
		Render(utils.FormatRating(c.Movie.VoteAverage))

	meta := rating
	if year := c.Movie.Year(); year != "" {
		meta += styles.MutedStyle.Render("  " + year)
	}

	lines := []string{
		styles.URLStyle.Render(utils.TruncateWithWidth(c.PosterURL, inner)),
		title,
		meta,
	}
	if nav := c.navLine(); nav != "" {
		lines = append(lines, nav)
	}

	style := styles.CardStyle
	if c.Selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Row renders the card as a single list entry.
func (c Card) Row(width int) string {
	inner := max(20, width-10)

	title := c.Movie.Title
	if year := c.Movie.Year(); year != "" {
		title += " (" + year + ")"
	}

	meta := styles.RatingStyle.Render(utils.FormatRating(c.Movie.VoteAverage))
	if c.Movie.Overview != "" {
		meta += styles.MutedStyle.Render("  " + utils.TruncateWithWidth(c.Movie.Overview, inner-8))
	}

	content := styles.MovieTitleStyle.Render(utils.TruncateWithWidth(title, inner)) + "\n" + meta

	if c.Selected {
		return styles.RowSelectedStyle.Render(content)
	}
	return styles.RowStyle.Render(content)
}

func (c Card) navLine() string {
	if c.OnPrev == nil && c.OnNext == nil {
		return ""
	}
	prev := styles.NavArrowDisabledStyle.Render("←")
	if c.OnPrev != nil {
		prev = styles.NavArrowStyle.Render("[←")
	}
	next := styles.NavArrowDisabledStyle.Render("→")
	if c.OnNext != nil {
		next = styles.NavArrowStyle.Render("→]")
	}
	return prev + "  " + next
}
