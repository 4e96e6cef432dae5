package presenter

import (
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/tasks"
	"taskboard-cli/internal/view"
)

// Filter renders the filter bar and turns clicks into filter model changes.
type Filter struct {
	container render.Component
	renderer  render.Renderer
	tasks     *tasks.Model
	filters   *filters.Model
	now       func() time.Time

	view        *view.FilterView
	unsubscribe []func()
}

func NewFilter(container render.Component, tasksModel *tasks.Model, filterModel *filters.Model, r render.Renderer) *Filter {
	return &Filter{
		container: container,
		renderer:  r,
		tasks:     tasksModel,
		filters:   filterModel,
		now:       time.Now,
	}
}

func (p *Filter) Init() error {
	if p.unsubscribe == nil {
		p.unsubscribe = append(p.unsubscribe,
			p.tasks.AddObserver(tasks.ObserverFunc(p.handleTaskEvent)),
			p.filters.AddObserver(filters.ObserverFunc(p.handleFilterEvent)),
		)
	}
	return p.render()
}

func (p *Filter) Close() {
	for _, fn := range p.unsubscribe {
		fn()
	}
	p.unsubscribe = nil
}

func (p *Filter) View() *view.FilterView { return p.view }

// SetClock overrides the clock used to bucket tasks by due date.
func (p *Filter) SetClock(now func() time.Time) { p.now = now }

func (p *Filter) render() error {
	prev := p.view
	p.view = view.NewFilterView(filters.Counts(p.tasks.Tasks(), p.now()), p.filters.Filter())
	p.view.SetFilterTypeChangeHandler(p.handleFilterTypeChange)
	if prev == nil {
		p.renderer.Render(p.container, p.view, render.AfterBegin)
		return nil
	}
	err := p.renderer.Replace(p.view, prev)
	p.renderer.Remove(prev)
	return err
}

// Counts change with every kind of update, so every notification re-renders the bar.
func (p *Filter) handleTaskEvent(model.UpdateType, model.Task) error {
	return p.render()
}

func (p *Filter) handleFilterEvent(model.UpdateType, model.FilterType) error {
	return p.render()
}

func (p *Filter) handleFilterTypeChange(f model.FilterType) error {
	if p.filters.Filter() == f {
		return nil
	}
	return p.filters.SetFilter(model.UpdateMajor, f)
}
