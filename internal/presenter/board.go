// Package presenter reconciles the task and filter models with the rendered board.
//
// Board owns sort order, the pagination cursor and the per-task presenters. It listens to
// model notifications and rebuilds as little as the update type allows: one card for
// PATCH, the list for MINOR, the whole board for MAJOR.
package presenter

import (
	"errors"
	"fmt"
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/tasks"
	"taskboard-cli/internal/view"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultPageSize = 8

type BoardOptions struct {
	Renderer render.Renderer
	// Filters is optional; without it the board shows every task.
	Filters  *filters.Model
	PageSize int
	// Strict turns a PATCH for an unrendered task into an error instead of a warning.
	Strict bool
	Logger logrus.FieldLogger
	Now    func() time.Time
	NewID  func() string
	// Width is the outer card width; zero means the view default.
	Width int
}

type Board struct {
	container render.Component
	tasks     *tasks.Model
	filters   *filters.Model
	renderer  render.Renderer
	log       logrus.FieldLogger
	pageSize  int
	strict    bool
	now       func() time.Time
	layout    *view.Layout

	sortType      model.SortType
	renderedCount int
	presenters    *registry
	newTask       *NewTask

	board    *view.BoardView
	list     *view.TaskListView
	sorting  *view.SortingView
	loadMore *view.LoadMoreButtonView
	noTasks  *view.NoTasksView

	unsubscribe []func()
}

func NewBoard(container render.Component, tasksModel *tasks.Model, opts BoardOptions) *Board {
	if opts.Renderer == nil {
		opts.Renderer = render.Tree{}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	b := &Board{
		container:     container,
		tasks:         tasksModel,
		filters:       opts.Filters,
		renderer:      opts.Renderer,
		log:           opts.Logger.WithField("component", "board"),
		pageSize:      opts.PageSize,
		strict:        opts.Strict,
		now:           opts.Now,
		layout:        view.NewLayout(opts.Width, opts.Now),
		sortType:      model.SortDefault,
		renderedCount: opts.PageSize,
		presenters:    newRegistry(),
		board:         view.NewBoardView(),
		list:          view.NewTaskListView(),
	}
	b.newTask = newNewTask(b.list, b.renderer, b, b.layout, opts.NewID)
	return b
}

// Init subscribes to the models, mounts the board and renders the first page. Calling it
// again rebuilds the board without subscribing twice.
func (b *Board) Init() error {
	if b.unsubscribe == nil {
		b.unsubscribe = append(b.unsubscribe, b.tasks.AddObserver(tasks.ObserverFunc(b.handleTaskEvent)))
		if b.filters != nil {
			b.unsubscribe = append(b.unsubscribe, b.filters.AddObserver(filters.ObserverFunc(b.handleFilterEvent)))
		}
	}

	b.renderer.Render(b.container, b.board, render.BeforeEnd)
	b.renderer.Render(b.board, b.list, render.BeforeEnd)

	b.clearBoard(false, false)
	return b.renderBoard()
}

// Close stops listening to the models.
func (b *Board) Close() {
	for _, fn := range b.unsubscribe {
		fn()
	}
	b.unsubscribe = nil
}

func (b *Board) SortType() model.SortType { return b.sortType }

// SetWidth resizes every card on the next render.
func (b *Board) SetWidth(w int) { b.layout.SetWidth(w) }

func (b *Board) Width() int { return b.layout.Width }

// RenderedCount is the number of cards currently on the board.
func (b *Board) RenderedCount() int { return b.presenters.len() }

// Cursor is the pagination cursor: how many cards the current page window allows.
func (b *Board) Cursor() int { return b.renderedCount }

func (b *Board) PageSize() int { return b.pageSize }

func (b *Board) Presenter(id string) (*Task, bool) { return b.presenters.get(id) }

func (b *Board) LoadMoreVisible() bool { return b.loadMore != nil && b.loadMore.Mounted() }

func (b *Board) EmptyStateVisible() bool { return b.noTasks != nil && b.noTasks.Mounted() }

func (b *Board) SortingVisible() bool { return b.sorting != nil && b.sorting.Mounted() }

func (b *Board) ListVisible() bool { return b.list.Mounted() }

func (b *Board) Sorting() *view.SortingView { return b.sorting }

func (b *Board) LoadMore() *view.LoadMoreButtonView { return b.loadMore }

func (b *Board) NewTaskForm() *NewTask { return b.newTask }

// EditingCount counts open editors, the new task form included.
func (b *Board) EditingCount() int {
	n := 0
	b.presenters.each(func(p *Task) {
		if p.Mode() == ModeEdit {
			n++
		}
	})
	if b.newTask.Open() {
		n++
	}
	return n
}

// Tasks returns the derived view: filtered, then sorted.
func (b *Board) Tasks() []model.Task { return b.getTasks() }

func (b *Board) currentFilter() model.FilterType {
	if b.filters == nil {
		return model.FilterAll
	}
	return b.filters.Filter()
}

func (b *Board) getTasks() []model.Task {
	filtered := filters.Apply(b.currentFilter(), b.tasks.Tasks(), b.now())
	return tasks.Sorted(filtered, b.sortType)
}

// CreateTask opens the new task form on an unfiltered, unsorted board.
func (b *Board) CreateTask() error {
	if err := b.handleModeChange(); err != nil {
		return err
	}
	switch {
	case b.currentFilter() != model.FilterAll:
		if err := b.filters.SetFilter(model.UpdateMajor, model.FilterAll); err != nil {
			return err
		}
	case b.sortType != model.SortDefault:
		b.clearBoard(true, true)
		if err := b.renderBoard(); err != nil {
			return err
		}
	}

	if b.noTasks != nil {
		b.renderer.Remove(b.noTasks)
		b.noTasks = nil
	}
	if !b.list.Mounted() {
		b.renderer.Render(b.board, b.list, render.BeforeEnd)
	}
	b.newTask.Init()
	return nil
}

func (b *Board) handleViewAction(action model.UserAction, updateType model.UpdateType, task model.Task) error {
	switch action {
	case model.ActionUpdateTask:
		return b.tasks.UpdateTask(updateType, task)
	case model.ActionAddTask:
		return b.tasks.AddTask(updateType, task)
	case model.ActionDeleteTask:
		return b.tasks.DeleteTask(updateType, task)
	default:
		return UnrecognizedActionError{Action: action}
	}
}

func (b *Board) handleTaskEvent(updateType model.UpdateType, task model.Task) error {
	return b.handleModelEvent(updateType, &task)
}

func (b *Board) handleFilterEvent(updateType model.UpdateType, _ model.FilterType) error {
	return b.handleModelEvent(updateType, nil)
}

func (b *Board) handleModelEvent(updateType model.UpdateType, task *model.Task) error {
	switch updateType {
	case model.UpdatePatch:
		if task == nil {
			return fmt.Errorf("%s notification without a task", updateType)
		}
		p, ok := b.presenters.get(task.ID)
		if !ok {
			if b.strict {
				return StaleReferenceError{ID: task.ID}
			}
			b.log.WithField("task", task.ID).Warn("patch for task without presenter")
			return nil
		}
		return p.Init(*task)
	case model.UpdateMinor:
		st, editing := b.editState()
		b.clearBoard(false, false)
		if err := b.renderBoard(); err != nil {
			return err
		}
		if editing {
			if p, ok := b.presenters.get(st.id); ok {
				return p.restoreEdit(st)
			}
		}
		return nil
	case model.UpdateMajor:
		b.clearBoard(true, true)
		return b.renderBoard()
	default:
		return UnrecognizedUpdateError{Update: updateType}
	}
}

func (b *Board) editState() (editState, bool) {
	var (
		st    editState
		found bool
	)
	b.presenters.each(func(p *Task) {
		if s, ok := p.snapshotEdit(); ok && !found {
			st, found = s, true
		}
	})
	return st, found
}

// handleModeChange puts every card back into VIEW and closes the new task form, so at
// most one editor is ever open.
func (b *Board) handleModeChange() error {
	b.newTask.Destroy()
	var errs []error
	b.presenters.each(func(p *Task) {
		if err := p.ResetView(); err != nil {
			errs = append(errs, fmt.Errorf("reset %s: %w", p.ID(), err))
		}
	})
	return errors.Join(errs...)
}

func (b *Board) handleNewTaskClosed() error {
	if !b.isEmpty(b.getTasks()) {
		return nil
	}
	b.clearBoard(false, false)
	return b.renderBoard()
}

func (b *Board) handleSortTypeChange(sortType model.SortType) error {
	if b.sortType == sortType {
		return nil
	}
	b.sortType = sortType
	b.clearTaskList()
	return b.renderTaskList(b.getTasks())
}

func (b *Board) handleLoadMoreButtonClick() error {
	ts := b.getTasks()
	total := len(ts)
	start := min(b.renderedCount, total)
	next := min(total, b.renderedCount+b.pageSize)

	if err := b.renderTasks(ts[start:next]); err != nil {
		return err
	}
	b.renderedCount = next

	if b.renderedCount >= total {
		b.renderer.Remove(b.loadMore)
		b.loadMore = nil
	}
	return nil
}

func (b *Board) renderTask(t model.Task) error {
	p := newTask(b.list, b.renderer, b, b.layout)
	if err := p.Init(t); err != nil {
		return err
	}
	b.presenters.insert(t.ID, p)
	return nil
}

func (b *Board) renderTasks(ts []model.Task) error {
	for _, t := range ts {
		if err := b.renderTask(t); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) renderTaskList(ts []model.Task) error {
	count := min(len(ts), b.renderedCount)
	if err := b.renderTasks(ts[:count]); err != nil {
		return err
	}
	if len(ts) > count {
		b.renderLoadMoreButton()
	}
	return nil
}

func (b *Board) renderSorting() {
	b.sorting = view.NewSortingView(b.sortType)
	b.sorting.SetSortTypeChangeHandler(b.handleSortTypeChange)
	b.renderer.Render(b.board, b.sorting, render.AfterBegin)
}

func (b *Board) renderNoTasks() {
	b.noTasks = view.NewNoTasksView(b.currentFilter())
	b.renderer.Render(b.board, b.noTasks, render.AfterBegin)
}

func (b *Board) renderLoadMoreButton() {
	if b.loadMore == nil {
		b.loadMore = view.NewLoadMoreButtonView()
		b.loadMore.SetClickHandler(b.handleLoadMoreButtonClick)
	}
	b.renderer.Render(b.board, b.loadMore, render.BeforeEnd)
}

// isEmpty decides when the empty state replaces the list. Outside the archive filter a
// board holding only archived tasks counts as empty.
func (b *Board) isEmpty(ts []model.Task) bool {
	if len(ts) == 0 {
		return true
	}
	if b.currentFilter() == model.FilterArchive {
		return false
	}
	for _, t := range ts {
		if !t.IsArchive {
			return false
		}
	}
	return true
}

func (b *Board) renderBoard() error {
	ts := b.getTasks()
	if b.isEmpty(ts) {
		if b.list.Mounted() {
			b.renderer.Remove(b.list)
		}
		b.renderNoTasks()
		return nil
	}

	b.renderSorting()
	if !b.list.Mounted() {
		b.renderer.Render(b.board, b.list, render.BeforeEnd)
	}
	return b.renderTaskList(ts)
}

func (b *Board) destroyPresenters() {
	b.presenters.each(func(p *Task) { p.Destroy() })
	b.presenters.clear()
}

func (b *Board) clearTaskList() {
	b.destroyPresenters()
	b.renderedCount = b.pageSize
	b.renderer.Remove(b.loadMore)
	b.loadMore = nil
}

// clearBoard tears down everything renderBoard builds. Unless reset, the cursor is kept
// and clamped to the new number of tasks (never below one page).
func (b *Board) clearBoard(resetRenderedCount, resetSortType bool) {
	total := len(b.getTasks())

	b.newTask.Destroy()
	b.destroyPresenters()

	b.renderer.Remove(b.sorting)
	b.sorting = nil
	b.renderer.Remove(b.noTasks)
	b.noTasks = nil
	b.renderer.Remove(b.loadMore)
	b.loadMore = nil

	if resetRenderedCount {
		b.renderedCount = b.pageSize
	} else {
		b.renderedCount = max(b.pageSize, min(b.renderedCount, total))
	}
	if resetSortType {
		b.sortType = model.SortDefault
	}
}
