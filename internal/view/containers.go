package view

import (
	"strings"

	"taskboard-cli/internal/render"
)

type BoardView struct {
	render.Abstract
}

func NewBoardView() *BoardView { return &BoardView{} }

func (v *BoardView) Element() *render.Element { return v.ElementOf(v) }
func (v *BoardView) Template() string         { return "" }
func (v *BoardView) Compose(children []string) string {
	return strings.Join(children, "\n\n")
}

type TaskListView struct {
	render.Abstract
}

func NewTaskListView() *TaskListView { return &TaskListView{} }

func (v *TaskListView) Element() *render.Element { return v.ElementOf(v) }
func (v *TaskListView) Template() string         { return "" }
func (v *TaskListView) Compose(children []string) string {
	return strings.Join(children, "\n")
}
