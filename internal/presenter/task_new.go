package presenter

import (
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/view"
)

type newTaskHost interface {
	handleViewAction(action model.UserAction, updateType model.UpdateType, task model.Task) error
	handleNewTaskClosed() error
}

// NewTask owns the "add new task" form shown at the top of the list.
type NewTask struct {
	list     render.Component
	renderer render.Renderer
	host     newTaskHost
	layout   *view.Layout
	newID    func() string

	edit *view.TaskEditView
}

func newNewTask(list render.Component, r render.Renderer, host newTaskHost, l *view.Layout, newID func() string) *NewTask {
	return &NewTask{list: list, renderer: r, host: host, layout: l, newID: newID}
}

// Init opens the form. Opening an already open form is a no-op.
func (p *NewTask) Init() {
	if p.edit != nil {
		return
	}
	p.edit = view.NewBlankTaskEditView(p.layout)
	p.edit.SetFormSubmitHandler(p.handleFormSubmit)
	p.edit.SetDeleteClickHandler(p.handleDeleteClick)
	p.edit.SetCancelHandler(p.handleCancel)
	p.renderer.Render(p.list, p.edit, render.AfterBegin)
}

func (p *NewTask) Open() bool { return p.edit != nil }

func (p *NewTask) Edit() *view.TaskEditView { return p.edit }

func (p *NewTask) Destroy() {
	if p.edit == nil {
		return
	}
	p.renderer.Remove(p.edit)
	p.edit = nil
}

func (p *NewTask) handleFormSubmit(t model.Task) error {
	t.ID = p.newID()
	p.Destroy()
	return p.host.handleViewAction(model.ActionAddTask, model.UpdateMinor, t)
}

func (p *NewTask) handleDeleteClick(model.Task) error {
	return p.handleCancel()
}

func (p *NewTask) handleCancel() error {
	p.Destroy()
	return p.host.handleNewTaskClosed()
}
