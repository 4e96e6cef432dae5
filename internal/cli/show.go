package cli

import (
	"fmt"
	"time"

	"taskboard-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.openTasks(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			t, ok := m.Find(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("task", args[0]))
			}

			md, err := publish.RenderTaskMarkdown(t, publish.RenderOptions{IncludeArchived: true, Now: time.Now()})
			if err != nil {
				return writeErr(cmd, err)
			}
			if !raw {
				md = renderMarkdown(md, markdownWidth, app.NoColor)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), md)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}
