package cli

import (
	"fmt"
	"time"

	"taskboard-cli/internal/mock"
	"taskboard-cli/internal/model"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var (
		count   int
		seed    uint64
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate demo tasks into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return writeErr(cmd, fmt.Errorf("--count must be >= 0"))
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			ctx := cmd.Context()
			s := app.store()
			existing := []model.Task{}
			if !replace {
				var err error
				if existing, err = s.Load(ctx); err != nil {
					return writeErr(cmd, err)
				}
			}

			generated := mock.NewGenerator(seed, time.Now).Tasks(count)
			if err := s.Save(ctx, append(existing, generated...)); err != nil {
				return writeErr(cmd, err)
			}
			app.log.WithField("db", app.DB).WithField("added", len(generated)).Debug("seeded store")

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"db":    app.DB,
				"added": len(generated),
				"total": len(existing) + len(generated),
			}})
		},
	}

	cmd.Flags().IntVar(&count, "count", mock.DefaultCount, "Number of tasks to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Drop existing tasks first")

	return cmd
}
