package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

// renderGenres lays the genre checklist out as badges, wrapped to width.
// cursor is -1 when the bar is not focused.
func renderGenres(genres []tmdb.Genre, selected browse.GenreSelection, cursor, width int) string {
	if len(genres) == 0 {
		return ""
	}

	var lines []string
	var line []string
	lineWidth := 0

	for i, g := range genres {
		style := styles.GenreBadgeStyle
		switch {
		case i == cursor:
			style = styles.GenreBadgeCursorStyle
		case selected.Has(g.ID):
			style = styles.GenreBadgeSelectedStyle
		}

		label := g.Name
		if selected.Has(g.ID) {
			label = "✓ " + label
		}
		badge := style.Render(label)

		w := lipgloss.Width(badge)
		if lineWidth > 0 && lineWidth+w > width {
			lines = append(lines, strings.Join(line, ""))
			line = nil
			lineWidth = 0
		}
		line = append(line, badge)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, ""))
	}
	return strings.Join(lines, "\n")
}

// selectedNames lists the checked genres in catalog order.
func selectedNames(genres []tmdb.Genre, selected browse.GenreSelection) []string {
	var names []string
	for _, g := range genres {
		if selected.Has(g.ID) {
			names = append(names, g.Name)
		}
	}
	return names
}
