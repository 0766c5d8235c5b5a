package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel is shared by every handler InitLogger builds, so SetLogLevel
// takes effect without rebuilding the logger.
var logLevel = new(slog.LevelVar)

// DefaultLogFile is where logs go unless logging.file says otherwise.
func DefaultLogFile() string {
	return filepath.Join(getStateDir(), appName, appName+".log")
}

// InitLogger initializes the application logger based on configuration.
// The TUI owns the terminal, so logs default to a rotated file; set
// logging.file to "stderr" to log to the console instead.
func InitLogger(cfg *LoggingConfig) (*slog.Logger, error) {
	logLevel.Set(parseLogLevel(cfg.Level))

	if cfg.File == "" {
		cfg.File = DefaultLogFile()
	}
	toConsole := strings.EqualFold(cfg.File, "stderr")

	var writer io.Writer
	if toConsole {
		writer = os.Stderr
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		writer = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge, // days
			Compress:   cfg.Compress,
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		if cfg.Color && toConsole {
			handler = NewColoredTextHandler(writer, opts)
		} else {
			handler = slog.NewTextHandler(writer, opts)
		}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, nil
}

// SetLogLevel changes the level of loggers created by InitLogger.
func SetLogLevel(level string) {
	logLevel.Set(parseLogLevel(level))
}

// CurrentLogLevel reports the active level.
func CurrentLogLevel() slog.Level {
	return logLevel.Level()
}

var levelStyles = map[slog.Level]lipgloss.Style{
	slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// ColoredTextHandler renders records like slog.TextHandler but colors the
// first field by level.
type ColoredTextHandler struct {
	writer io.Writer
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
}

// NewColoredTextHandler creates a console handler.
func NewColoredTextHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredTextHandler {
	return &ColoredTextHandler{writer: w, opts: opts}
}

// Handle implements slog.Handler.
func (h *ColoredTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf strings.Builder
	var inner slog.Handler = slog.NewTextHandler(&buf, h.opts)
	if len(h.attrs) > 0 {
		inner = inner.WithAttrs(h.attrs)
	}
	for _, g := range h.groups {
		inner = inner.WithGroup(g)
	}
	if err := inner.Handle(ctx, r); err != nil {
		return err
	}

	line := buf.String()
	if style, ok := levelStyles[r.Level]; ok {
		if head, rest, found := strings.Cut(line, " "); found {
			line = style.Render(head) + " " + rest
		}
	}

	_, err := io.WriteString(h.writer, line)
	return err
}

// WithAttrs implements slog.Handler.
func (h *ColoredTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup implements slog.Handler.
func (h *ColoredTextHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

// Enabled implements slog.Handler.
func (h *ColoredTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts != nil && h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
