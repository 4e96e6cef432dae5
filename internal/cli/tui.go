package cli

import (
	"taskboard-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App) error {
	w, closeLog, err := app.tuiLogOutput()
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeLog()
	app.log.SetOutput(w)

	m, err := app.openTasks(cmd.Context())
	if err != nil {
		return writeErr(cmd, err)
	}
	if err := tui.Run(tui.Options{
		Tasks:    m,
		PageSize: app.PageSize,
		Strict:   app.Strict,
		Logger:   app.log,
	}); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}
