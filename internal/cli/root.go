// Package cli wires the cobra commands: the interactive board plus scriptable commands
// that print the derived view.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"taskboard-cli/internal/format"
	"taskboard-cli/internal/presenter"
	"taskboard-cli/internal/store"
	"taskboard-cli/internal/tasks"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	DB       string
	Format   string
	Pretty   bool
	PageSize int
	Strict   bool
	NoColor  bool
	LogLevel string

	cfg *store.Config
	log *logrus.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Paginated task board (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  taskboard

  # Fill an empty store with demo tasks
  taskboard seed --count 22

  # Print the derived view
  taskboard list --filter favorites --sort date-up --format edn
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.DB, "db", envOr("TASKBOARD_DB", ""), "Path to the SQLite task store")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKBOARD_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().IntVar(&app.PageSize, "page-size", envIntOr("TASKBOARD_PAGE_SIZE", 0), "Cards per page (default 8)")
	cmd.PersistentFlags().BoolVar(&app.Strict, "strict", envBoolOr("TASKBOARD_STRICT", false), "Fail on updates for tasks that are not rendered")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", envOr("NO_COLOR", "") != "", "Disable colors")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TASKBOARD_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// setup merges the config file under env and flags, then builds the logger.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load config: %w", err))
	}
	app.cfg = cfg

	if app.DB == "" {
		app.DB = cfg.DB
	}
	if app.DB == "" {
		if app.DB, err = store.DefaultDBPath(); err != nil {
			return writeErr(cmd, err)
		}
	}
	if app.PageSize <= 0 {
		app.PageSize = cfg.PageSize
	}
	if app.PageSize <= 0 {
		app.PageSize = presenter.DefaultPageSize
	}
	if !cmd.Flags().Changed("strict") && os.Getenv("TASKBOARD_STRICT") == "" {
		app.Strict = cfg.Strict
	}
	if app.LogLevel == "" {
		app.LogLevel = cfg.LogLevel
	}
	if _, err := format.Parse(app.Format); err != nil {
		return writeErr(cmd, err)
	}

	if app.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app.log = logrus.New()
	app.log.SetOutput(cmd.ErrOrStderr())
	level := logrus.InfoLevel
	if app.LogLevel != "" {
		if level, err = logrus.ParseLevel(app.LogLevel); err != nil {
			return writeErr(cmd, err)
		}
	}
	app.log.SetLevel(level)
	return nil
}

// tuiLogOutput keeps logs off the terminal the TUI draws on.
func (app *App) tuiLogOutput() (io.Writer, func(), error) {
	path := envOr("TASKBOARD_LOG", "")
	if path == "" && app.cfg != nil {
		path = app.cfg.LogFile
	}
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func (app *App) store() store.Store {
	return store.Store{Path: app.DB}
}

// openTasks loads the store into a task model that saves itself after every change.
func (app *App) openTasks(ctx context.Context) (*tasks.Model, error) {
	m, _, err := store.Open(ctx, app.store(), app.log)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", app.DB, err)
	}
	return m, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envIntOr(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func envBoolOr(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	f, err := format.Parse(app.Format)
	if err != nil {
		return writeErr(cmd, err)
	}
	return format.Write(cmd.OutOrStdout(), v, f, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
