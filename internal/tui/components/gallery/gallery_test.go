package gallery

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/tuitest"
)

var testGenres = []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}, {ID: 18, Name: "Drama"}}

func newCatalog() *tuitest.FakeCatalog {
	return &tuitest.FakeCatalog{
		Genres: testGenres,
		Discover: func(page int, genres []int) *tmdb.Page {
			results := make([]tmdb.Movie, 0, 5)
			for i := 1; i <= 5; i++ {
				id := page*100 + i
				results = append(results, tmdb.Movie{ID: id, Title: fmt.Sprintf("Movie %d", id)})
			}
			return &tmdb.Page{Page: page, TotalPages: 2, TotalResults: 10, Results: results}
		},
		Search: map[string]*tmdb.Page{
			"alien": {Page: 1, TotalPages: 1, TotalResults: 3, Results: []tmdb.Movie{
				{ID: 348, Title: "Alien", GenreIDs: []int{27, 878}},
				{ID: 679, Title: "Aliens", GenreIDs: []int{28, 878}},
				{ID: 8077, Title: "Alien 3", GenreIDs: []int{878}},
			}},
		},
	}
}

func pump(m Model, cmd tea.Cmd) Model {
	queue := tuitest.Drain(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, tuitest.Drain(next)...)
	}
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = pump(m, cmd)
	}
	return m
}

func opened(catalog *tuitest.FakeCatalog) Model {
	m := New(context.Background(), catalog, 0, nil)
	m.SetSize(100, 60)
	cmd := m.Resume()
	return pump(m, cmd)
}

func TestGallery_FirstEntryBrowsesPopular(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	require.Len(t, catalog.DiscoverCalls, 1)
	assert.Equal(t, 1, catalog.DiscoverCalls[0].Page)
	assert.Empty(t, catalog.DiscoverCalls[0].Genres)
	assert.Empty(t, catalog.SearchCalls)
	assert.Equal(t, browse.Loaded, m.Controller().State())

	tuitest.AssertContains(t, m.View(), "Popular", "Page 1 of 2", "Movie 101", "Action", "Comedy")
}

func TestGallery_GenresLoadedOnce(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	m.Suspend()
	cmd := m.Resume()
	m = pump(m, cmd)

	assert.Equal(t, 1, catalog.GenreCalls)
}

func TestGallery_PagingIsClamped(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	m = press(m, "p")
	assert.Len(t, catalog.DiscoverCalls, 1, "page 0 is a no-op")

	m = press(m, "n")
	require.Len(t, catalog.DiscoverCalls, 2)
	assert.Equal(t, 2, catalog.DiscoverCalls[1].Page)
	tuitest.AssertContains(t, m.View(), "Page 2 of 2", "Movie 201")

	m = press(m, "n")
	assert.Len(t, catalog.DiscoverCalls, 2, "past the last page is a no-op")

	m = press(m, "p")
	require.Len(t, catalog.DiscoverCalls, 3)
	assert.Equal(t, 1, m.Controller().Page())
}

func TestGallery_GenreToggleResetsPage(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	m = press(m, "n")
	require.Equal(t, 2, m.Controller().Page())

	// up from the first card row lands on the genre bar
	m = press(m, "up", "space")

	last := catalog.DiscoverCalls[len(catalog.DiscoverCalls)-1]
	assert.Equal(t, tuitest.DiscoverCall{Page: 1, Genres: []int{28}}, last)
	assert.Equal(t, 1, m.Controller().Page())
	tuitest.AssertContains(t, m.View(), "✓ Action")

	m = press(m, "c")
	last = catalog.DiscoverCalls[len(catalog.DiscoverCalls)-1]
	assert.Empty(t, last.Genres)
	assert.Equal(t, 0, m.Controller().Genres().Len())
}

func TestGallery_SearchWithGenresFiltersThisPage(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	m = press(m, "/")
	require.True(t, m.InputFocused())
	var cmds []tea.Cmd
	for _, r := range "alien" {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	m = pump(m, tea.Batch(cmds...))
	require.Len(t, catalog.SearchCalls, 1)
	assert.Equal(t, "alien", catalog.SearchCalls[0].Query)

	// tab to the genre bar and check Action
	m = press(m, "tab", "space")
	require.Len(t, catalog.SearchCalls, 2)

	assert.True(t, m.Controller().PostFiltered())
	view := m.View()
	tuitest.AssertContains(t, view, "Genre filter (Action) applies to this page only", "Aliens")
	tuitest.AssertNotContains(t, view, "Alien 3")
	assert.Equal(t, []int{679}, m.Controller().NavContext().IDs())
}

func TestGallery_CardAffordanceIsNotOpen(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	msgs := tuitest.Drain(cmd)
	require.Equal(t, []tea.Msg{common.CardStepMsg{Delta: 1}}, msgs)
	m, _ = m.Update(msgs[0])

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
	msgs = tuitest.Drain(cmd)
	require.Equal(t, []tea.Msg{common.CardStepMsg{Delta: -1}}, msgs)
	m, _ = m.Update(msgs[0])

	// the first card has no previous one, so "[" is not consumed and does nothing
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
	assert.Nil(t, cmd)

	m = press(m, "]", "]")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs = tuitest.Drain(cmd)
	require.Len(t, msgs, 1)

	open := msgs[0].(common.OpenDetailMsg)
	assert.Equal(t, 103, open.ID)
	assert.Equal(t, common.GalleryScreen, open.From)
	assert.Equal(t, []int{101, 102, 103, 104, 105}, open.Nav.IDs())
}

func TestGallery_StalePageIgnored(t *testing.T) {
	catalog := newCatalog()
	m := opened(catalog)

	oldReq, ok := m.ctrl.Begin(context.Background())
	require.True(t, ok)
	newReq, ok := m.ctrl.Begin(context.Background())
	require.True(t, ok)

	m, _ = m.Update(pageMsg{token: newReq.Token, page: catalog.Discover(1, nil)})
	m, _ = m.Update(pageMsg{token: oldReq.Token, page: &tmdb.Page{Results: []tmdb.Movie{{ID: 9, Title: "Stale Entry"}}}})

	tuitest.AssertNotContains(t, m.View(), "Stale Entry")
	assert.Equal(t, browse.Loaded, m.Controller().State())
}

func TestGallery_ErrorAndRetry(t *testing.T) {
	catalog := newCatalog()
	catalog.Err = &tmdb.RequestError{Op: "discover", Kind: tmdb.ProviderError, StatusCode: 503}
	m := opened(catalog)

	tuitest.AssertContains(t, m.View(), "Failed to load movies. Please try again.", "Failed to load genres")

	catalog.Err = nil
	m = press(m, "r")
	assert.Equal(t, browse.Loaded, m.Controller().State())
	tuitest.AssertContains(t, m.View(), "Movie 101")
}
