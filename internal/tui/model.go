package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"

	"github.com/justchokingaround/reel/internal/clipboard"
	"github.com/justchokingaround/reel/internal/config"
	"github.com/justchokingaround/reel/internal/tui/common"
	"github.com/justchokingaround/reel/internal/tui/components/detail"
	"github.com/justchokingaround/reel/internal/tui/components/gallery"
	"github.com/justchokingaround/reel/internal/tui/components/help"
	"github.com/justchokingaround/reel/internal/tui/components/home"
	"github.com/justchokingaround/reel/internal/tui/components/listview"
	"github.com/justchokingaround/reel/internal/tui/styles"
)

type sessionState int

const (
	homeView sessionState = iota
	listView
	galleryView
	detailView
)

func stateFor(s common.Screen) sessionState {
	switch s {
	case common.ListScreen:
		return listView
	case common.GalleryScreen:
		return galleryView
	case common.DetailScreen:
		return detailView
	default:
		return homeView
	}
}

func (s sessionState) screen() common.Screen {
	switch s {
	case listView:
		return common.ListScreen
	case galleryView:
		return common.GalleryScreen
	case detailView:
		return common.DetailScreen
	default:
		return common.HomeScreen
	}
}

// clearStatusMsg is an internal message to clear the status message
type clearStatusMsg struct{}

// browserOpenedMsg reports the outcome of opening a link.
type browserOpenedMsg struct {
	url string
	err error
}

// configReloadedMsg carries a configuration re-read from disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// App is the root model. It owns every screen and routes messages: key
// presses go to the active screen only, everything else to all of them.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	logger *slog.Logger

	state         sessionState
	previousState sessionState
	width         int
	height        int

	home          home.Model
	list          listview.Model
	gallery       gallery.Model
	detail        detail.Model
	helpComponent help.Model

	clipboardSvc *clipboard.Service
	openURL      func(string) error
	reloads      <-chan *config.Config

	statusMsg     string
	statusMsgTime time.Time
}

// NewApp builds the root model starting on start.
func NewApp(ctx context.Context, cfg *config.Config, catalog common.Catalog, logger *slog.Logger, start common.Screen) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx, cancel := context.WithCancel(ctx)

	state := stateFor(start)
	if state == detailView {
		state = homeView
	}

	return &App{
		ctx:           ctx,
		cancel:        cancel,
		cfg:           cfg,
		logger:        logger,
		state:         state,
		previousState: homeView,
		home:          home.New(),
		list:          listview.New(ctx, catalog, cfg.UI.Debounce, logger),
		gallery:       gallery.New(ctx, catalog, cfg.UI.Debounce, logger),
		detail:        detail.New(ctx, catalog, logger),
		helpComponent: help.New(),
		clipboardSvc:  clipboard.NewService(cfg.Advanced.Clipboard.Command, logger),
		openURL:       browser.OpenURL,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.enter(a.state), a.listenForReloads())
}

// listenForReloads waits for the next configuration from the reload channel.
func (a *App) listenForReloads() tea.Cmd {
	if a.reloads == nil {
		return nil
	}
	ch := a.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.home.SetSize(msg.Width, msg.Height)
		a.list.SetSize(msg.Width, msg.Height-1)
		a.gallery.SetSize(msg.Width, msg.Height-1)
		a.detail.SetSize(msg.Width, msg.Height-1)
		a.helpComponent.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case common.GoToHomeMsg:
		return a.handleGoToMsg(homeView)
	case common.GoToListMsg:
		return a.handleGoToMsg(listView)
	case common.GoToGalleryMsg:
		return a.handleGoToMsg(galleryView)
	case common.OpenDetailMsg:
		return a.handleOpenDetailMsg(msg)
	case common.BackMsg:
		return a.handleBackMsg()

	case common.CopyLinkMsg:
		return a, a.copyToClipboardWithNotification(msg.URL, "TMDB link")
	case clipboard.CopiedMsg:
		return a.handleCopiedMsg(msg)
	case common.OpenBrowserMsg:
		return a, a.openInBrowser(msg.URL)
	case browserOpenedMsg:
		return a.handleBrowserOpenedMsg(msg)

	case common.StatusMsg:
		return a, a.setStatus(msg.Text)
	case clearStatusMsg:
		return a.handleClearStatusMsg(msg)
	case configReloadedMsg:
		return a.handleConfigReloadedMsg(msg)
	}

	return a, a.broadcast(msg)
}

// broadcast hands a non-key message to every screen. Each one ignores what
// it did not ask for.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var listCmd, galleryCmd, detailCmd tea.Cmd
	a.list, listCmd = a.list.Update(msg)
	a.gallery, galleryCmd = a.gallery.Update(msg)
	a.detail, detailCmd = a.detail.Update(msg)
	return tea.Batch(listCmd, galleryCmd, detailCmd)
}

// updateActive hands a key press to the active screen.
func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case homeView:
		a.home, cmd = a.home.Update(msg)
	case listView:
		a.list, cmd = a.list.Update(msg)
	case galleryView:
		a.gallery, cmd = a.gallery.Update(msg)
	case detailView:
		a.detail, cmd = a.detail.Update(msg)
	}
	return cmd
}

// inputActive reports whether the active screen is taking text.
func (a *App) inputActive() bool {
	switch a.state {
	case listView:
		return a.list.InputFocused()
	case galleryView:
		return a.gallery.InputFocused()
	}
	return false
}

func (a *App) quit() tea.Cmd {
	a.list.Suspend()
	a.gallery.Suspend()
	a.detail.Suspend()
	a.cancel()
	return tea.Quit
}

func (a *App) View() string {
	if a.helpComponent.IsVisible() {
		if v := a.helpComponent.View(); v != "" {
			return v
		}
	}

	view := a.renderView()
	if a.statusMsg != "" {
		status := styles.FooterStyle.Render(a.statusMsg)
		view = strings.TrimRight(view, "\n") + "\n\n" + status
	}
	if a.inputActive() {
		indicator := lipgloss.NewStyle().
			Foreground(styles.OxocarbonBase00).
			Background(styles.OxocarbonCyan).
			Padding(0, 1).
			Render("INPUT")
		view += "  " + indicator
	}
	return view
}

func (a *App) renderView() string {
	switch a.state {
	case listView:
		return a.list.View()
	case galleryView:
		return a.gallery.View()
	case detailView:
		return a.detail.View()
	default:
		return a.home.View()
	}
}

func (a *App) updateHelpContext() {
	a.helpComponent.SetContext(help.ContextFor(a.state.screen()))
}
