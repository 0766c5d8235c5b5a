package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "reel"

// ErrMissingToken is returned by RequireToken when no TMDB token is configured.
var ErrMissingToken = errors.New("TMDB token not set: add tmdb.token to the config file or export TMDB_TOKEN")

// Config is the full application configuration.
type Config struct {
	TMDB     TMDBConfig     `mapstructure:"tmdb" yaml:"tmdb"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Advanced AdvancedConfig `mapstructure:"advanced" yaml:"advanced"`
}

// TMDBConfig configures the catalog client.
type TMDBConfig struct {
	Token          string        `mapstructure:"token" yaml:"token"`
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	ImageBaseURL   string        `mapstructure:"image_base_url" yaml:"image_base_url"`
	PlaceholderURL string        `mapstructure:"placeholder_url" yaml:"placeholder_url"`
	WebURL         string        `mapstructure:"web_url" yaml:"web_url"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// DefaultView is the first screen: home, list or gallery.
	DefaultView string        `mapstructure:"default_view" yaml:"default_view"`
	Debounce    time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// LoggingConfig configures slog output and rotation.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	Format     string `mapstructure:"format" yaml:"format"`
	Color      bool   `mapstructure:"color" yaml:"color"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// AdvancedConfig holds rarely changed knobs.
type AdvancedConfig struct {
	Debug     bool            `mapstructure:"debug" yaml:"debug"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
}

// ClipboardConfig overrides the clipboard command used as a fallback.
type ClipboardConfig struct {
	Command string `mapstructure:"command" yaml:"command"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:        "https://api.themoviedb.org/3",
			ImageBaseURL:   "https://image.tmdb.org/t/p/w500",
			PlaceholderURL: "https://picsum.photos/200/300",
			WebURL:         "https://www.themoviedb.org",
			Timeout:        15 * time.Second,
		},
		UI: UIConfig{
			DefaultView: "home",
			Debounce:    500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Color:      true,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("tmdb.token", "")
	v.SetDefault("tmdb.base_url", d.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", d.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.placeholder_url", d.TMDB.PlaceholderURL)
	v.SetDefault("tmdb.web_url", d.TMDB.WebURL)
	v.SetDefault("tmdb.timeout", d.TMDB.Timeout)

	v.SetDefault("ui.default_view", d.UI.DefaultView)
	v.SetDefault("ui.debounce", d.UI.Debounce)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.color", d.Logging.Color)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)

	v.SetDefault("advanced.debug", false)
	v.SetDefault("advanced.clipboard.command", "")
}

// Load reads configuration from cfgFile (or the default location), the
// environment and any .env file. A missing config file is not an error.
func Load(cfgFile string) (*Config, *viper.Viper, error) {
	loadDotEnv()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// TMDB_TOKEN is the name most TMDB tooling documents.
	if err := v.BindEnv("tmdb.token", "REEL_TMDB_TOKEN", "TMDB_TOKEN"); err != nil {
		return nil, nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(GetConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgFile != "" && os.IsNotExist(err)) {
			return nil, nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, v, nil
}

// loadDotEnv loads .env from the working directory and the config directory.
// Variables already present in the environment win.
func loadDotEnv() {
	for _, path := range []string{".env", filepath.Join(GetConfigDir(), ".env")} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.UI.DefaultView {
	case "home", "list", "gallery":
	default:
		return fmt.Errorf("invalid ui.default_view %q (want home, list or gallery)", c.UI.DefaultView)
	}
	if c.UI.Debounce < 0 {
		return fmt.Errorf("ui.debounce must not be negative")
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url must not be empty")
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("tmdb.timeout must be positive")
	}
	return nil
}

// RequireToken fails with ErrMissingToken when no token is configured.
func (c *Config) RequireToken() error {
	if strings.TrimSpace(c.TMDB.Token) == "" {
		return ErrMissingToken
	}
	return nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/reel (or ~/.config/reel).
func GetConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".config", appName)
}

func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// InitializeDirs creates the config and state directories.
func InitializeDirs() error {
	for _, dir := range []string{GetConfigDir(), filepath.Join(getStateDir(), appName)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// SaveDefaultConfig writes the default configuration as YAML to path.
func SaveDefaultConfig(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := "# reel configuration\n# The TMDB token can also be provided through TMDB_TOKEN or a .env file.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
