package cli

import (
	"strings"

	"taskboard-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved configuration",
		Long:  "Keys: " + strings.Join(store.ConfigKeys, ", ") + ". Environment variables and flags still win over saved values.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the config file path and its values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path, "config": app.cfg}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save one value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveConfigValue(cmd, app, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unset <key>",
		Short: "Reset one value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveConfigValue(cmd, app, args[0], "")
		},
	})

	return cmd
}

// saveConfigValue edits the file contents only; values merged in from env and flags
// are never written back.
func saveConfigValue(cmd *cobra.Command, app *App, key, value string) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, err)
	}
	if err := cfg.Set(key, value); err != nil {
		return writeErr(cmd, err)
	}
	path, err := cfg.Save()
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path, "config": cfg}})
}
