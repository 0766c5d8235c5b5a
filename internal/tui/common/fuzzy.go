package common

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

// FuzzyFilter narrows the loaded page by title without a new request.
// While editing, keys go to the input; once locked, the filter stays
// applied and navigation keys work again.
type FuzzyFilter struct {
	input  textinput.Model
	active bool
	locked bool
}

// NewFuzzyFilter creates an inactive filter.
func NewFuzzyFilter() *FuzzyFilter {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.TextStyle = styles.MetadataStyle
	ti.PlaceholderStyle = styles.MutedStyle

	return &FuzzyFilter{input: ti}
}

// Activate starts editing an empty filter.
func (f *FuzzyFilter) Activate() tea.Cmd {
	f.active = true
	f.locked = false
	f.input.SetValue("")
	f.input.Focus()
	return textinput.Blink
}

// Deactivate clears the filter.
func (f *FuzzyFilter) Deactivate() {
	f.active = false
	f.locked = false
	f.input.Blur()
	f.input.SetValue("")
}

// Lock stops editing but keeps the filter applied.
func (f *FuzzyFilter) Lock() {
	if f.active {
		f.locked = true
		f.input.Blur()
	}
}

// Unlock resumes editing.
func (f *FuzzyFilter) Unlock() tea.Cmd {
	if !f.active {
		return nil
	}
	f.locked = false
	f.input.Focus()
	return textinput.Blink
}

// IsActive reports whether a filter is shown.
func (f *FuzzyFilter) IsActive() bool { return f.active }

// IsEditing reports whether keys go to the filter input.
func (f *FuzzyFilter) IsEditing() bool { return f.active && !f.locked }

// Query is the current filter text.
func (f *FuzzyFilter) Query() string { return f.input.Value() }

// Update feeds input while editing.
func (f *FuzzyFilter) Update(msg tea.Msg) tea.Cmd {
	if !f.IsEditing() {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// SetWidth sizes the input.
func (f *FuzzyFilter) SetWidth(width int) {
	f.input.Width = max(10, width-24)
}

// View renders the filter line, or "" when inactive.
func (f *FuzzyFilter) View() string {
	if !f.active {
		return ""
	}
	label := styles.MetadataStyle.Render("Filter: ")
	bar := styles.NavArrowStyle.Render("┃")
	if f.locked {
		return label + bar + " " + styles.MovieTitleStyle.Render(f.Query()) +
			styles.MutedStyle.Render("  (/ to edit • esc to clear)")
	}
	return label + bar + " " + f.input.View() + styles.MutedStyle.Render("  (enter to apply)")
}

type titleSource []tmdb.Movie

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// Apply returns the movies matching the filter, best match first. With no
// active query it returns movies unchanged.
func (f *FuzzyFilter) Apply(movies []tmdb.Movie) []tmdb.Movie {
	if !f.active || f.Query() == "" {
		return movies
	}
	matches := fuzzy.FindFrom(f.Query(), titleSource(movies))
	out := make([]tmdb.Movie, 0, len(matches))
	for _, m := range matches {
		out = append(out, movies[m.Index])
	}
	return out
}
