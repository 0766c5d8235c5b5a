package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/reel/internal/tui/common"
)

// leave tears down the active screen's pending work.
func (a *App) leave() {
	switch a.state {
	case listView:
		a.list.Suspend()
	case galleryView:
		a.gallery.Suspend()
	case detailView:
		a.detail.Suspend()
	}
}

// enter activates state and returns whatever it needs to resume.
func (a *App) enter(state sessionState) tea.Cmd {
	a.state = state
	switch state {
	case listView:
		return tea.Batch(textinput.Blink, a.list.Resume())
	case galleryView:
		return a.gallery.Resume()
	}
	return nil
}

func (a *App) handleGoToMsg(state sessionState) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	if a.state == state {
		return a, nil
	}
	a.leave()
	a.logger.Debug("switching screen", "from", a.state.screen(), "to", state.screen())
	return a, a.enter(state)
}

func (a *App) handleOpenDetailMsg(msg common.OpenDetailMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	a.leave()
	a.previousState = stateFor(msg.From)
	a.state = detailView
	a.logger.Debug("opening detail", "id", msg.ID, "from", msg.From, "list_len", msg.Nav.Len())
	return a, a.detail.Open(msg.ID, msg.Nav)
}

func (a *App) handleBackMsg() (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	if a.state != detailView {
		return a, nil
	}
	a.leave()
	back := a.previousState
	if back == detailView {
		back = homeView
	}
	a.previousState = homeView
	return a, a.enter(back)
}
