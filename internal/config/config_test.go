package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at a temp dir and clears token vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	for _, key := range []string{"TMDB_TOKEN", "REEL_TMDB_TOKEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, v, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "https://picsum.photos/200/300", cfg.TMDB.PlaceholderURL)
	assert.Equal(t, 15*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, "home", cfg.UI.DefaultView)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.TMDB.Token)
	assert.ErrorIs(t, cfg.RequireToken(), ErrMissingToken)
}

func TestLoad_TokenFromEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "TMDB_TOKEN", env: map[string]string{"TMDB_TOKEN": "plain"}, want: "plain"},
		{name: "REEL_TMDB_TOKEN", env: map[string]string{"REEL_TMDB_TOKEN": "prefixed"}, want: "prefixed"},
		{
			name: "prefixed wins",
			env:  map[string]string{"REEL_TMDB_TOKEN": "prefixed", "TMDB_TOKEN": "plain"},
			want: "prefixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, _, err := Load(filepath.Join(dir, "missing.yaml"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TMDB.Token)
			assert.NoError(t, cfg.RequireToken())
		})
	}
}

func TestLoad_TokenFromDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, ".env"), []byte("TMDB_TOKEN=from-dotenv\n"), 0600))

	cfg, _, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.TMDB.Token)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	content := `
tmdb:
  token: file-token
  timeout: 5s
ui:
  default_view: gallery
  debounce: 250ms
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, _, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.TMDB.Token)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "gallery", cfg.UI.DefaultView)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep defaults
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  token: file-token\n"), 0600))
	t.Setenv("TMDB_TOKEN", "env-token")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.TMDB.Token)
}

func TestLoad_InvalidView(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  default_view: grid\n"), 0600))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_view")
}

func TestSaveDefaultConfig_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: https://api.themoviedb.org/3")
	assert.Contains(t, string(data), "debounce: 500ms")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TMDB, cfg.TMDB)
	assert.Equal(t, DefaultConfig().UI, cfg.UI)
}

func TestInitializeDirs(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, InitializeDirs())
	assert.DirExists(t, filepath.Join(dir, appName))
	assert.Equal(t, filepath.Join(dir, appName), GetConfigDir())
}

func TestInitLogger(t *testing.T) {
	dir := isolate(t)
	logFile := filepath.Join(dir, "logs", "reel.log")

	logger, err := InitLogger(&LoggingConfig{Level: "warn", File: logFile, MaxSize: 1})
	require.NoError(t, err)
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil))) })

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")
	assert.Equal(t, slog.LevelWarn, CurrentLogLevel())

	SetLogLevel("debug")
	logger.Debug("now visible")
	assert.Equal(t, slog.LevelDebug, CurrentLogLevel())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "now visible")
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestRequireToken(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, errors.Is(cfg.RequireToken(), ErrMissingToken))

	cfg.TMDB.Token = "  "
	assert.ErrorIs(t, cfg.RequireToken(), ErrMissingToken)

	cfg.TMDB.Token = "abc"
	assert.NoError(t, cfg.RequireToken())
}
