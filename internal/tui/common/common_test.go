package common

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/reel/internal/tmdb"
)

func TestDebouncer_OnlyLastTriggerFires(t *testing.T) {
	d := NewDebouncer("list", time.Millisecond)

	var cmds []tea.Cmd
	for _, v := range []string{"d", "du", "dun", "dune"} {
		cmds = append(cmds, d.Trigger(v))
	}

	var accepted []string
	for _, cmd := range cmds {
		msg, ok := cmd().(DebounceMsg)
		require.True(t, ok)
		if d.Accept(msg) {
			accepted = append(accepted, msg.Value)
		}
	}

	assert.Equal(t, []string{"dune"}, accepted)
	assert.False(t, d.Pending())
}

func TestDebouncer_AcceptOnce(t *testing.T) {
	d := NewDebouncer("list", 0)
	msg := d.Trigger("heat")().(DebounceMsg)

	assert.True(t, d.Accept(msg))
	assert.False(t, d.Accept(msg), "a tick is consumed once")
}

func TestDebouncer_IgnoresOtherIDs(t *testing.T) {
	list := NewDebouncer("list", 0)
	gallery := NewDebouncer("gallery", 0)

	msg := list.Trigger("heat")().(DebounceMsg)
	gallery.Trigger("heat")

	assert.False(t, gallery.Accept(msg))
	assert.True(t, list.Accept(msg))
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer("list", 0)
	msg := d.Trigger("alien")().(DebounceMsg)

	value, wasPending := d.Cancel()
	assert.True(t, wasPending)
	assert.Equal(t, "alien", value)
	assert.False(t, d.Accept(msg))

	_, wasPending = d.Cancel()
	assert.False(t, wasPending)
}

func TestFuzzyFilter(t *testing.T) {
	movies := []tmdb.Movie{
		{ID: 1, Title: "The Matrix"},
		{ID: 2, Title: "Heat"},
		{ID: 3, Title: "The Matrix Reloaded"},
	}

	f := NewFuzzyFilter()
	assert.Equal(t, movies, f.Apply(movies), "inactive filter is identity")

	f.Activate()
	assert.True(t, f.IsEditing())
	for _, r := range "matrix" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "matrix", f.Query())

	got := f.Apply(movies)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []int{1, 3}, []int{got[0].ID, got[1].ID})

	f.Lock()
	assert.False(t, f.IsEditing())
	assert.Len(t, f.Apply(movies), 2, "locked filter stays applied")

	f.Deactivate()
	assert.Len(t, f.Apply(movies), 3)
}

func TestParseScreen(t *testing.T) {
	s, ok := ParseScreen("gallery")
	assert.True(t, ok)
	assert.Equal(t, GalleryScreen, s)

	_, ok = ParseScreen("grid")
	assert.False(t, ok)
}
