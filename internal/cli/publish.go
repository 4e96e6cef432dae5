package cli

import (
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/publish"
	"taskboard-cli/internal/tasks"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var (
		to              string
		sortFlag        string
		filterFlag      string
		includeArchived bool
		overwrite       bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write the task list as markdown files",
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

			now := time.Now()
			derived := tasks.Sorted(filters.Apply(f, m.Tasks(), now), st)
			res, err := publish.WriteTasks(derived, to, publish.WriteOptions{
				IncludeArchived: includeArchived || f == model.FilterArchive,
				Overwrite:       overwrite,
				Filter:          f,
				Sort:            st,
				Now:             now,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output directory (required)")
	cmd.Flags().StringVar(&sortFlag, "sort", "default", "Sort order (default|date-up|date-down)")
	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Filter (all|overdue|today|favorites|repeating|archive)")
	cmd.Flags().BoolVar(&includeArchived, "include-archived", false, "Include archived tasks")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
