package cli

import (
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/format"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/tasks"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		sortFlag   string
		filterFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered, sorted task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := model.ParseSortType(sortFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			f, err := model.ParseFilterType(filterFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := app.openTasks(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			all := m.Tasks()
			derived := tasks.Sorted(filters.Apply(f, all, time.Now()), st)
			return writeOut(cmd, app, format.NewTaskList(derived, st, f, len(all)))
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "default", "Sort order (default|date-up|date-down)")
	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Filter (all|overdue|today|favorites|repeating|archive)")

	return cmd
}
