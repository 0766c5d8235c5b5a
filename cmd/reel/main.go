package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/justchokingaround/reel/internal/config"
	"github.com/justchokingaround/reel/internal/tmdb"
	"github.com/justchokingaround/reel/internal/tui"
	"github.com/justchokingaround/reel/internal/tui/common"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile   string
	logLevel  string
	noColor   bool
	debugMode bool
	viewFlag  string

	// Global config and logger
	cfg     *config.Config
	logger  *slog.Logger
	reloads = make(chan *config.Config, 1)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "Browse The Movie Database from your terminal",
	Long: `reel is a terminal browser for The Movie Database (TMDB).

Search movies by title, browse popular movies by genre in a card gallery and
step through full movie details without leaving the terminal. A TMDB API
read access token is required (tmdb.token in the config file or TMDB_TOKEN).`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init writes the file Load would read
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}
		if cmd.Name() == "version" {
			return nil
		}

		if err := config.InitializeDirs(); err != nil {
			return fmt.Errorf("failed to initialize directories: %w", err)
		}

		var err error
		var v *viper.Viper
		cfg, v, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cfg)

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if v.ConfigFileUsed() != "" {
			watchConfig(v)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		view := cfg.UI.DefaultView
		if viewFlag != "" {
			view = viewFlag
		}
		start, ok := common.ParseScreen(view)
		if !ok {
			return fmt.Errorf("unknown view %q (want home, list or gallery)", view)
		}

		if err := cfg.RequireToken(); err != nil {
			return err
		}

		logger.Info("reel starting", "version", version, "view", start)

		return tui.Start(cmd.Context(), tui.Options{
			Config:  cfg,
			Catalog: tmdb.NewClient(cfg, logger),
			Logger:  logger,
			Start:   start,
			Reloads: reloads,
		})
	},
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(c *config.Config) {
	if debugMode {
		c.Advanced.Debug = true
		if logLevel == "" {
			c.Logging.Level = "debug"
		}
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if noColor {
		c.Logging.Color = false
	}
}

// watchConfig re-reads the config file when it changes and hands the result
// to the running TUI.
func watchConfig(v *viper.Viper) {
	v.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("config file changed", "name", e.Name)

		next := &config.Config{}
		if err := v.Unmarshal(next); err != nil {
			logger.Error("failed to reload config", "error", err)
			return
		}
		if err := next.Validate(); err != nil {
			logger.Error("ignoring invalid config", "error", err)
			return
		}
		applyFlagOverrides(next)
		config.SetLogLevel(next.Logging.Level)

		// keep only the newest reload if the TUI has not picked up the last one
		select {
		case <-reloads:
		default:
		}
		reloads <- next
	})
	v.WatchConfig()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/reel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode (verbose HTTP logging)")
	rootCmd.Flags().StringVar(&viewFlag, "view", "", "start screen: home, list or gallery (overrides ui.default_view)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(genresCmd)
}

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reel version %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

// configCmd handles configuration operations
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = filepath.Join(config.GetConfigDir(), "config.yaml")
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s", configPath)
		}
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := config.SaveDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}

		fmt.Printf("Default configuration generated successfully at: %s\n", configPath)
		fmt.Printf("Set tmdb.token (or export TMDB_TOKEN) before running reel.\n")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := "(not set)"
		if cfg.RequireToken() == nil {
			token = "(set)"
		}
		fmt.Printf("Config file: %s\n", configPathOrDefault())
		fmt.Printf("TMDB API: %s\n", cfg.TMDB.BaseURL)
		fmt.Printf("TMDB token: %s\n", token)
		fmt.Printf("Default view: %s\n", cfg.UI.DefaultView)
		fmt.Printf("Search debounce: %s\n", cfg.UI.Debounce)
		fmt.Printf("Log level: %s\n", cfg.Logging.Level)
		fmt.Printf("Log file: %s\n", cfg.Logging.File)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(configPathOrDefault())
	},
}

func configPathOrDefault() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(config.GetConfigDir(), "config.yaml")
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
