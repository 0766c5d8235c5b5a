package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/tuitest"
)

func TestHelpView(t *testing.T) {
	tests := []struct {
		name    string
		context HelpContext
		want    []string
		notWant []string
	}{
		{name: "home", context: HomeContext, want: []string{"Home Actions", "Browse the gallery"}, notWant: []string{"open on TMDB"}},
		{name: "list", context: ListContext, want: []string{"Search Actions", "filter this page", "cycle sort key"}},
		{name: "gallery", context: GalleryContext, want: []string{"Gallery Actions", "next page", "Toggle genre"}},
		{name: "detail", context: DetailContext, want: []string{"Movie Actions", "open on TMDB", "copy TMDB link", "previous movie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.SetSize(100, 60)
			m.SetContext(tt.context)
			m.Show()

			view := m.View()
			tuitest.AssertContains(t, view, "KEYBOARD SHORTCUTS", "Navigation & General")
			tuitest.AssertContains(t, view, tt.want...)
			tuitest.AssertNotContains(t, view, tt.notWant...)
		})
	}
}

func TestHelpHiddenRendersNothing(t *testing.T) {
	m := New()
	m.SetSize(80, 30)
	assert.Empty(t, m.View())

	m.Toggle()
	assert.True(t, m.IsVisible())
	m.Toggle()
	assert.False(t, m.IsVisible())
}

func TestContextFor(t *testing.T) {
	assert.Equal(t, ListContext, ContextFor(common.ListScreen))
	assert.Equal(t, GalleryContext, ContextFor(common.GalleryScreen))
	assert.Equal(t, DetailContext, ContextFor(common.DetailScreen))
	assert.Equal(t, HomeContext, ContextFor(common.HomeScreen))
}
