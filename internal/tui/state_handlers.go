package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2500 * time.Millisecond

// setStatus shows text in the footer until it expires.
func (a *App) setStatus(text string) tea.Cmd {
	a.statusMsg = text
	a.statusMsgTime = time.Now()
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (a *App) handleClearStatusMsg(msg clearStatusMsg) (tea.Model, tea.Cmd) {
	// a newer status resets the clock
	if time.Since(a.statusMsgTime) >= statusTTL {
		a.statusMsg = ""
	}
	return a, nil
}

func (a *App) handleConfigReloadedMsg(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.cfg != nil {
		a.cfg = msg.cfg
		a.list.SetDebounce(msg.cfg.UI.Debounce)
		a.gallery.SetDebounce(msg.cfg.UI.Debounce)
		a.logger.Info("configuration reloaded", "debounce", msg.cfg.UI.Debounce)
	}
	return a, a.listenForReloads()
}
