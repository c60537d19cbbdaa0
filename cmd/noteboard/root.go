package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/noteboard/internal/app"
	"github.com/marcus/noteboard/internal/board"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/markdown"
	"github.com/marcus/noteboard/internal/note"
	"github.com/marcus/noteboard/internal/theme"
)

type rootOptions struct {
	configPath string
	themeName  string
	empty      bool
	debug      bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "noteboard",
		Short: "A terminal note board",
		Long: `noteboard keeps short labeled notes on a board in your terminal.
Create, edit, favorite and delete notes, and switch between a light and a
dark theme. Notes live in memory for the length of the session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&opts.themeName, "theme", "", "starting theme (light or dark)")
	cmd.Flags().BoolVar(&opts.empty, "empty", false, "start without the sample notes")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newThemesCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runBoard(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Log.File = config.ExpandPath(opts.logFile)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	model, err := buildModel(cfg, opts, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

// buildModel wires the note state, keymap, theme and board into the root model.
func buildModel(cfg *config.Config, opts *rootOptions, logger *slog.Logger) (app.Model, error) {
	notes := note.NewBoard(note.WithLogger(logger))
	if cfg.Board.Seed && !opts.empty {
		if err := notes.Seed(note.Samples()); err != nil {
			return app.Model{}, fmt.Errorf("seed notes: %w", err)
		}
	}

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	label, err := note.ParseLabel(cfg.Board.DefaultLabel)
	if err != nil {
		label = note.LabelOther
	}

	b := board.New(notes, km,
		board.WithLogger(logger),
		board.WithMarkdown(markdown.New(cfg.UI.Markdown)),
		board.WithDefaultLabel(label),
	)

	sel := theme.NewSelectorFromResolved(theme.ResolveTheme(cfg, opts.themeName))
	logger.Info("starting", "theme", sel.Name(), "notes", notes.Len())

	return app.New(cfg, km, sel, b, logger), nil
}

// newLogger returns a text logger writing to the configured file. The TUI
// owns the terminal, so without a file logs are discarded.
func newLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
