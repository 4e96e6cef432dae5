package presenter

import (
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/view"
)

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// taskHost is what item presenters need from the board.
type taskHost interface {
	handleViewAction(action model.UserAction, updateType model.UpdateType, task model.Task) error
	handleModeChange() error
}

// Task owns one card and its edit form and switches between them.
type Task struct {
	list     render.Component
	renderer render.Renderer
	host     taskHost
	layout   *view.Layout

	task model.Task
	card *view.TaskView
	edit *view.TaskEditView
	mode Mode
}

func newTask(list render.Component, r render.Renderer, host taskHost, l *view.Layout) *Task {
	return &Task{list: list, renderer: r, host: host, layout: l, mode: ModeView}
}

// Init renders t, keeping the current mode. The first call mounts the card.
func (p *Task) Init(t model.Task) error {
	p.task = t.Clone()

	prevCard, prevEdit := p.card, p.edit

	p.card = view.NewTaskView(t, p.layout)
	p.edit = view.NewTaskEditView(t, p.layout)
	p.card.SetEditClickHandler(p.handleEditClick)
	p.card.SetFavoriteClickHandler(p.handleFavoriteClick)
	p.card.SetArchiveClickHandler(p.handleArchiveClick)
	p.edit.SetFormSubmitHandler(p.handleFormSubmit)
	p.edit.SetDeleteClickHandler(p.handleDeleteClick)
	p.edit.SetCancelHandler(p.ResetView)

	if prevCard == nil || prevEdit == nil {
		p.renderer.Render(p.list, p.card, render.BeforeEnd)
		return nil
	}

	var err error
	switch p.mode {
	case ModeView:
		p.card.SetFocused(prevCard.Focused())
		err = p.renderer.Replace(p.card, prevCard)
	case ModeEdit:
		p.edit.SetFocused(prevEdit.Focused())
		p.edit.SetActiveField(prevEdit.ActiveField())
		err = p.renderer.Replace(p.edit, prevEdit)
	}

	p.renderer.Remove(prevCard)
	p.renderer.Remove(prevEdit)
	return err
}

func (p *Task) ID() string { return p.task.ID }

func (p *Task) Mode() Mode { return p.mode }

// Card and Edit expose the mounted components for input routing.
func (p *Task) Card() *view.TaskView     { return p.card }
func (p *Task) Edit() *view.TaskEditView { return p.edit }

// ResetView forces VIEW mode and drops any unsaved draft. Safe to call repeatedly.
func (p *Task) ResetView() error {
	if p.mode == ModeView || p.edit == nil {
		return nil
	}
	p.edit.Reset(p.task)
	return p.replaceFormToCard()
}

// Destroy unmounts both the card and the form, whichever is showing.
func (p *Task) Destroy() {
	p.renderer.Remove(p.card)
	p.renderer.Remove(p.edit)
	p.card = nil
	p.edit = nil
	p.mode = ModeView
}

// editState is an open form captured across a list rebuild.
type editState struct {
	id     string
	values map[view.Field]string
	active view.Field
}

func (p *Task) snapshotEdit() (editState, bool) {
	if p.mode != ModeEdit || p.edit == nil {
		return editState{}, false
	}
	return editState{id: p.task.ID, values: p.edit.Values(), active: p.edit.ActiveField()}, true
}

// restoreEdit reopens the form with a captured draft. It skips the mode-change broadcast:
// the board only restores the single editor that was open before the rebuild.
func (p *Task) restoreEdit(st editState) error {
	if p.mode == ModeEdit || p.edit == nil {
		return nil
	}
	for f, v := range st.values {
		p.edit.SetValue(f, v)
	}
	p.edit.SetActiveField(st.active)
	if err := p.renderer.Replace(p.edit, p.card); err != nil {
		return err
	}
	p.edit.SetFocused(p.card.Focused())
	p.card.SetFocused(false)
	p.mode = ModeEdit
	return nil
}

func (p *Task) replaceCardToForm() error {
	if err := p.host.handleModeChange(); err != nil {
		return err
	}
	if err := p.renderer.Replace(p.edit, p.card); err != nil {
		return err
	}
	p.edit.SetFocused(p.card.Focused())
	p.card.SetFocused(false)
	p.mode = ModeEdit
	return nil
}

func (p *Task) replaceFormToCard() error {
	if err := p.renderer.Replace(p.card, p.edit); err != nil {
		return err
	}
	p.card.SetFocused(p.edit.Focused())
	p.edit.SetFocused(false)
	p.mode = ModeView
	return nil
}

func (p *Task) handleEditClick() error {
	if p.mode == ModeEdit {
		return nil
	}
	return p.replaceCardToForm()
}

func (p *Task) handleFavoriteClick() error {
	return p.host.handleViewAction(model.ActionUpdateTask, model.UpdateMinor, p.task.WithFavorite(!p.task.IsFavorite))
}

func (p *Task) handleArchiveClick() error {
	return p.host.handleViewAction(model.ActionUpdateTask, model.UpdateMinor, p.task.WithArchive(!p.task.IsArchive))
}

func (p *Task) handleFormSubmit(update model.Task) error {
	updateType := model.UpdatePatch
	if changesBucket(p.task, update) {
		updateType = model.UpdateMinor
	}
	if err := p.replaceFormToCard(); err != nil {
		return err
	}
	return p.host.handleViewAction(model.ActionUpdateTask, updateType, update)
}

func (p *Task) handleDeleteClick(t model.Task) error {
	return p.host.handleViewAction(model.ActionDeleteTask, model.UpdateMinor, t)
}

// changesBucket reports whether going from prev to next can move the task between
// filters or change its place in a date sort.
func changesBucket(prev, next model.Task) bool {
	return !model.IsDateEqual(prev.DueDate, next.DueDate) ||
		!prev.Repeating.Equal(next.Repeating) ||
		prev.IsArchive != next.IsArchive ||
		prev.IsFavorite != next.IsFavorite
}
