package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/corkboard/internal/app"
	"github.com/marcus/corkboard/internal/config"
	"github.com/marcus/corkboard/internal/state"
)

var (
	configPath string
	debugFlag  bool
	logFile    string
	noWatch    bool

	logCloser *os.File
)

// rootCmd runs the board when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "corkboard",
	Short: "A sticky-note board for the terminal",
	Long: `Corkboard keeps a board of colored notes in your terminal.
Add notes from the form, click a note to edit it, hover its color icon
to recolor it, and delete it from its toolbar.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (json or yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")
}

// setupLogging installs the default logger. The board owns the terminal,
// so logs are dropped unless a log file is given.
func setupLogging() error {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	f, err := os.OpenFile(config.ExpandPath(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return nil
}

func run(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := slog.Default()

	// State is optional; a broken file falls back to defaults.
	if err := state.Init(); err != nil {
		logger.Warn("load state failed", "err", err)
	}

	path := config.ExpandPath(configPath)
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fatal("Failed to load config", err)
	}

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithConfigPath(path),
	}
	if !noWatch && path != "" {
		changes, err := config.Watch(ctx, path)
		if err != nil {
			logger.Warn("config watch disabled", "path", path, "err", err)
		} else {
			opts = append(opts, app.WithConfigChanges(changes))
		}
	}

	model := app.New(cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fatal("Error running application", err)
	}
}
