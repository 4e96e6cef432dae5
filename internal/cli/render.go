package cli

import (
	"fmt"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/presenter"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/tasks"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		sortFlag   string
		filterFlag string
		pages      int
		width      int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the board once, as the TUI would draw it",
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

			page, err := renderBoard(app, m, st, f, pages, width)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), page.Element().String())
			return err
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "default", "Sort order (default|date-up|date-down)")
	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Filter (all|overdue|today|favorites|repeating|archive)")
	cmd.Flags().IntVar(&pages, "pages", 1, "Pages to show (LOAD MORE is pressed pages-1 times)")
	cmd.Flags().IntVar(&width, "width", 80, "Card width")

	return cmd
}

// renderBoard mounts the filter bar and the board on a fresh page, then drives the
// controls the way a user would.
func renderBoard(app *App, m *tasks.Model, st model.SortType, f model.FilterType, pages, width int) (*render.Page, error) {
	page := render.NewPage()
	fm := filters.New()
	if err := fm.SetFilter(model.UpdateMajor, f); err != nil {
		return nil, err
	}

	fp := presenter.NewFilter(page, m, fm, render.Tree{})
	b := presenter.NewBoard(page, m, presenter.BoardOptions{
		Filters:  fm,
		PageSize: app.PageSize,
		Strict:   app.Strict,
		Logger:   app.log,
		Width:    width,
	})
	if err := fp.Init(); err != nil {
		return nil, fmt.Errorf("init filter: %w", err)
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("init board: %w", err)
	}

	if st != model.SortDefault && b.SortingVisible() {
		if err := b.Sorting().Select(st); err != nil {
			return nil, err
		}
	}
	for i := 1; i < pages && b.LoadMoreVisible(); i++ {
		if err := b.LoadMore().Click(); err != nil {
			return nil, err
		}
	}
	return page, nil
}
