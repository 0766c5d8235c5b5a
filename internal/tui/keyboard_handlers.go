package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/reel/internal/tui/common"
)

// handleKeyMsg processes all keyboard input and routes to appropriate handlers
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, common.Keys.ForceQuit) {
		return a, a.quit()
	}

	// help swallows everything but its own scrolling while open
	if a.helpComponent.IsVisible() {
		if key.Matches(msg, common.Keys.Back) || key.Matches(msg, common.Keys.Help) {
			a.helpComponent.Hide()
			return a, nil
		}
		var cmd tea.Cmd
		a.helpComponent, cmd = a.helpComponent.Update(msg)
		return a, cmd
	}

	// text inputs get q and ? as characters
	if a.inputActive() {
		return a, a.updateActive(msg)
	}

	switch {
	case key.Matches(msg, common.Keys.Help):
		a.updateHelpContext()
		a.helpComponent.Show()
		return a, nil
	case key.Matches(msg, common.Keys.Quit):
		return a, a.quit()
	}

	return a, a.updateActive(msg)
}
