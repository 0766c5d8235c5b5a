package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/reel/internal/browse"
	"github.com/justchokingaround/reel/internal/clipboard"
	"github.com/justchokingaround/reel/internal/config"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/tuitest"
)

func newCatalog() *tuitest.FakeCatalog {
	return &tuitest.FakeCatalog{
		Genres: []tmdb.Genre{{ID: 28, Name: "Action"}},
		Discover: func(page int, genres []int) *tmdb.Page {
			results := []tmdb.Movie{{ID: page*10 + 1, Title: fmt.Sprintf("Popular %d", page*10+1)}}
			return &tmdb.Page{Page: page, TotalPages: 3, TotalResults: 3, Results: results}
		},
		Details: map[int]*tmdb.MovieDetail{
			11: {ID: 11, Title: "Star Wars", ReleaseDate: "1977-05-25"},
		},
	}
}

func newTestApp(t *testing.T, catalog *tuitest.FakeCatalog, start common.Screen) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Debounce = 0
	a := NewApp(context.Background(), cfg, catalog, nil, start)
	a.openURL = func(string) error { return nil }
	t.Cleanup(a.cancel)

	send(a, tea.WindowSizeMsg{Width: 120, Height: 50})
	pump(a, a.Init())
	return a
}

// pump feeds cmd's messages back through the app until it settles and
// reports whether a quit was requested.
func pump(a *App, cmd tea.Cmd) bool {
	quit := false
	queue := tuitest.Drain(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		_, next := a.Update(msg)
		queue = append(queue, tuitest.Drain(next)...)
	}
	return quit
}

func send(a *App, msg tea.Msg) bool {
	_, cmd := a.Update(msg)
	return pump(a, cmd)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_StartsOnHome(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.HomeScreen)
	assert.Equal(t, homeView, a.state)
	tuitest.AssertContains(t, a.View(), "reel", "Quick Actions")
}

func TestApp_HomeShortcutsSwitchScreens(t *testing.T) {
	catalog := newCatalog()
	a := newTestApp(t, catalog, common.HomeScreen)

	send(a, keyPress("s"))
	assert.Equal(t, listView, a.state)
	assert.True(t, a.inputActive())
	tuitest.AssertContains(t, a.View(), "INPUT")

	send(a, keyPress("esc"))
	assert.Equal(t, homeView, a.state)

	send(a, keyPress("g"))
	assert.Equal(t, galleryView, a.state)
	assert.Len(t, catalog.DiscoverCalls, 1)
	tuitest.AssertContains(t, a.View(), "Popular 11")
}

func TestApp_OpenDetailAndBack(t *testing.T) {
	tests := []struct {
		name  string
		start common.Screen
		from  common.Screen
		want  sessionState
	}{
		{name: "from gallery", start: common.GalleryScreen, from: common.GalleryScreen, want: galleryView},
		{name: "from list", start: common.ListScreen, from: common.ListScreen, want: listView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog()
			a := newTestApp(t, catalog, tt.start)

			send(a, common.OpenDetailMsg{ID: 11, Nav: browse.NewNavContext([]int{11, 12}), From: tt.from})
			assert.Equal(t, detailView, a.state)
			assert.Equal(t, []int{11}, catalog.DetailCalls)
			tuitest.AssertContains(t, a.View(), "Star Wars (1977)", "1 of 2")

			send(a, keyPress("esc"))
			assert.Equal(t, tt.want, a.state)
		})
	}
}

func TestApp_GalleryIsNotRefetchedOnBack(t *testing.T) {
	catalog := newCatalog()
	a := newTestApp(t, catalog, common.GalleryScreen)
	require.Len(t, catalog.DiscoverCalls, 1)

	send(a, keyPress("enter"))
	require.Equal(t, detailView, a.state)

	send(a, keyPress("esc"))
	assert.Equal(t, galleryView, a.state)
	assert.Len(t, catalog.DiscoverCalls, 1)
	assert.Equal(t, 1, catalog.GenreCalls)
}

func TestApp_HelpOverlay(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.GalleryScreen)

	send(a, keyPress("?"))
	require.True(t, a.helpComponent.IsVisible())
	tuitest.AssertContains(t, a.View(), "KEYBOARD SHORTCUTS", "Gallery Actions")

	// keys do not leak to the screen underneath
	send(a, keyPress("n"))
	assert.Equal(t, 1, a.gallery.Controller().Page())

	send(a, keyPress("esc"))
	assert.False(t, a.helpComponent.IsVisible())
	assert.Equal(t, galleryView, a.state)
}

func TestApp_QuitKeys(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.HomeScreen)
	send(a, keyPress("s"))
	require.True(t, a.inputActive())

	assert.False(t, send(a, keyPress("q")), "q is text while typing")
	assert.Equal(t, "q", a.list.Controller().Query())

	assert.True(t, send(a, keyPress("ctrl+c")))
	assert.Error(t, a.ctx.Err())
}

func TestApp_QuitOutsideInput(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.GalleryScreen)
	require.False(t, a.inputActive())
	assert.True(t, send(a, keyPress("q")))
}

func TestApp_CopyLinkStatus(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.HomeScreen)

	a.Update(common.CopyLinkMsg{URL: "https://www.themoviedb.org/movie/11"})
	assert.Equal(t, "📋 TMDB link copied to clipboard", a.statusMsg)
	tuitest.AssertContains(t, a.View(), "TMDB link copied")

	a.Update(clipboard.CopiedMsg{Text: "x", Err: clipboard.ErrNoTool})
	assert.Contains(t, a.statusMsg, "Could not copy link")

	// a clear scheduled by an older status does not wipe a fresh one
	a.Update(clearStatusMsg{})
	assert.NotEmpty(t, a.statusMsg)
}

func TestApp_OpenInBrowser(t *testing.T) {
	a := newTestApp(t, newCatalog(), common.HomeScreen)

	var opened []string
	a.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	send(a, common.OpenBrowserMsg{URL: "https://www.themoviedb.org/movie/11"})
	assert.Equal(t, []string{"https://www.themoviedb.org/movie/11"}, opened)
	assert.Contains(t, a.statusMsg, "Opened")

	a.openURL = func(string) error { return errors.New("no browser") }
	send(a, common.OpenBrowserMsg{URL: "https://www.themoviedb.org/movie/12"})
	assert.Contains(t, a.statusMsg, "Could not open browser")
}

func TestApp_ConfigReload(t *testing.T) {
	reloads := make(chan *config.Config, 1)
	cfg := config.DefaultConfig()
	a := NewApp(context.Background(), cfg, newCatalog(), nil, common.HomeScreen)
	a.reloads = reloads
	t.Cleanup(a.cancel)

	next := config.DefaultConfig()
	next.UI.Debounce = 0
	reloads <- next
	close(reloads)

	pump(a, a.listenForReloads())
	assert.Same(t, next, a.cfg)
}
