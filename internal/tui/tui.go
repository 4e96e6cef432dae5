// Package tui runs the board as a bubbletea program. Key presses are turned into the same
// clicks and submits the presenters listen for.
package tui

import (
	"time"

	"taskboard-cli/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Tasks    *tasks.Model
	PageSize int
	Strict   bool
	// Logger must not write to the terminal while the program runs.
	Logger logrus.FieldLogger
	Now    func() time.Time
}

func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
