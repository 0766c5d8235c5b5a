package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/reel/internal/clipboard"
)

// copyToClipboardWithNotification copies text to clipboard and shows a notification
func (a *App) copyToClipboardWithNotification(text, itemName string) tea.Cmd {
	return tea.Batch(
		a.clipboardSvc.Copy(a.ctx, text),
		a.setStatus("📋 "+itemName+" copied to clipboard"),
	)
}

func (a *App) handleCopiedMsg(msg clipboard.CopiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		return a, nil
	}
	a.logger.Error("copy to clipboard failed", "error", msg.Err)
	return a, a.setStatus("Could not copy link: " + msg.Err.Error())
}

// openInBrowser opens url in the default browser off the UI loop.
func (a *App) openInBrowser(url string) tea.Cmd {
	open := a.openURL
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: open(url)}
	}
}

func (a *App) handleBrowserOpenedMsg(msg browserOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.logger.Error("failed to open browser", "url", msg.url, "error", msg.err)
		return a, a.setStatus("Could not open browser: " + msg.url)
	}
	return a, a.setStatus("Opened " + msg.url)
}
