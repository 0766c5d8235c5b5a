package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/tuitest"
)

func TestHome_View(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	tuitest.AssertContains(t, m.View(), "reel", "Search", "Gallery", "Quit", "? help")
}

func TestHome_Shortcuts(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{name: "s opens the list", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, want: common.GoToListMsg{}},
		{name: "1 opens the list", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, want: common.GoToListMsg{}},
		{name: "g opens the gallery", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}, want: common.GoToGalleryMsg{}},
		{name: "enter on the first entry", key: tea.KeyMsg{Type: tea.KeyEnter}, want: common.GoToListMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := New().Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestHome_SelectionWraps(t *testing.T) {
	m := New()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(actions)-1, m.Selected())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
}

func TestHome_Snapshot(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	tuitest.AssertSnapshot(t, m.View())
}
