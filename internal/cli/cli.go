// Package cli implements the popupdemo command-line interface.
//
// The root command loads the popup configuration, sets up logging and runs
// the demo TUI. Because the terminal belongs to the TUI, logs go to a file
// (--log-file, or log.file in the config).
//
// # Commands
//
//   - popupdemo: run the demo
//   - popupdemo config: print the effective configuration
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/riordanpawley/popup/internal/app"
	"github.com/riordanpawley/popup/internal/config"
	"github.com/spf13/cobra"
)

// runFunc starts the demo with a resolved configuration
type runFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error

// CLI holds the flag values shared by every command
type CLI struct {
	out        io.Writer
	configPath string
	logFile    string
	verbose    bool
	disabled   bool
	run        runFunc
}

// New creates a CLI that prints command output to out
func New(out io.Writer) *CLI {
	return &CLI{out: out, run: runTUI}
}

// Execute runs the popupdemo CLI and returns an error if any command fails
func Execute(ctx context.Context) error {
	return New(os.Stdout).RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the command tree
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "popupdemo",
		Short:        "Hover, click and focus popups in the terminal",
		Long:         `popupdemo shows triggerable popups in a bubbletea program: hover menus, tooltips, click menus and focus suggestions.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			w, err := openLogFile(cfg.Log.File)
			if err != nil {
				return err
			}
			defer w.Close()

			logger := slog.New(newLogger(w, c.level(cfg)))
			logger.Info("starting", "config", c.configPath, "popups", len(cfg.Popups))
			return c.run(cmd.Context(), cfg, logger)
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file or directory (default: current directory)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().BoolVar(&c.disabled, "disabled", false, "start with every popup disabled")

	root.AddCommand(c.configCommand())

	return root
}

// loadConfig loads the configuration and applies flag overrides
func (c *CLI) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadConfig(c.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = config.MergeWithDefaults(cfg)

	if c.logFile != "" {
		cfg.Log.File = c.logFile
	}
	if c.disabled {
		for name, pc := range cfg.Popups {
			pc.Disabled = true
			cfg.Popups[name] = pc
		}
	}
	return cfg, nil
}

// level picks the log level: --verbose wins over the configured level
func (c *CLI) level(cfg *config.Config) charmlog.Level {
	if c.verbose {
		return charmlog.DebugLevel
	}
	level, err := charmlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return charmlog.InfoLevel
	}
	return level
}

func runTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	model, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion events without a button held
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
