package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoTool is returned when neither the clipboard package nor any known
// clipboard utility could be used.
var ErrNoTool = errors.New("no clipboard tool found (install xclip, xsel, or wl-clipboard)")

// CopiedMsg reports the outcome of Copy.
type CopiedMsg struct {
	Text string
	Err  error
}

// Service copies text to the system clipboard.
type Service struct {
	logger  *slog.Logger
	command string

	// swapped in tests
	writeAll func(string) error
	lookPath func(string) (string, error)
}

// NewService creates a clipboard service. command, when set, is the
// fallback used if the system clipboard cannot be written directly.
func NewService(command string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:   logger.With("component", "clipboard"),
		command:  command,
		writeAll: clipboard.WriteAll,
		lookPath: exec.LookPath,
	}
}

// Copy returns a command that copies text and reports a CopiedMsg.
func (s *Service) Copy(ctx context.Context, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: s.Write(ctx, text)}
	}
}

// Write copies text, trying the clipboard package first and then the
// configured or detected command-line tool.
func (s *Service) Write(ctx context.Context, text string) error {
	err := s.writeAll(text)
	if err == nil {
		s.logger.Debug("copied to clipboard", "text_length", len(text))
		return nil
	}
	s.logger.Warn("failed to copy using primary method", "error", err)

	parts, err := s.fallbackCommand()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		s.logger.Error("clipboard command failed", "command", parts, "error", err)
		return fmt.Errorf("clipboard command %q: %w", parts[0], err)
	}
	s.logger.Debug("copied to clipboard", "command", parts[0], "text_length", len(text))
	return nil
}

func (s *Service) fallbackCommand() ([]string, error) {
	if s.command != "" {
		parts := parseCommand(s.command)
		if len(parts) == 0 {
			return nil, fmt.Errorf("invalid clipboard command in config: %q", s.command)
		}
		return parts, nil
	}

	for _, candidate := range defaultCommands() {
		if _, err := s.lookPath(candidate[0]); err == nil {
			return candidate, nil
		}
	}
	return nil, ErrNoTool
}

// defaultCommands lists the clipboard utilities to try, in order.
func defaultCommands() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip.exe"}}
	}
	if isWSL() {
		return [][]string{{"clip.exe"}}
	}
	return [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	}
}

// parseCommand splits a command line into arguments, respecting quotes.
func parseCommand(command string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for _, r := range command {
		switch {
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && r == ' ':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return parts
}

func isWSL() bool {
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	v := strings.ToLower(string(version))
	return strings.Contains(v, "microsoft") || strings.Contains(v, "wsl")
}
