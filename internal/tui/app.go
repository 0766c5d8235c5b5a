package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/reel/internal/config"
	"github.com/justchokingaround/reel/internal/tui/common"
)

// Options configures Start.
type Options struct {
	Config  *config.Config
	Catalog common.Catalog
	Logger  *slog.Logger
	Start   common.Screen

	// Reloads, when set, delivers configuration re-read from disk.
	Reloads <-chan *config.Config
}

// Start is the entry point for the TUI. It blocks until the user quits.
func Start(ctx context.Context, opts Options) error {
	m := NewApp(ctx, opts.Config, opts.Catalog, opts.Logger, opts.Start)
	m.reloads = opts.Reloads
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
