package view

import (
	"fmt"
	"strings"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
)

type SortingView struct {
	render.Abstract
	current  model.SortType
	onChange func(model.SortType) error
}

func NewSortingView(current model.SortType) *SortingView {
	return &SortingView{current: current}
}

func (v *SortingView) Element() *render.Element { return v.ElementOf(v) }

func (v *SortingView) Template() string {
	labels := map[model.SortType]string{
		model.SortDefault:  "SORT BY DEFAULT",
		model.SortDateUp:   "SORT BY DATE up",
		model.SortDateDown: "SORT BY DATE down",
	}
	parts := make([]string, 0, len(model.SortTypes))
	for i, st := range model.SortTypes {
		label := fmt.Sprintf("%d %s", i+1, labels[st])
		if st == v.current {
			parts = append(parts, styleActive.Render(label))
		} else {
			parts = append(parts, styleMuted.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (v *SortingView) Current() model.SortType { return v.current }

func (v *SortingView) SetSortTypeChangeHandler(fn func(model.SortType) error) {
	v.onChange = fn
}

// Select behaves like clicking one of the sort links.
func (v *SortingView) Select(st model.SortType) error {
	v.current = st
	if v.onChange == nil {
		return nil
	}
	return v.onChange(st)
}

type FilterView struct {
	render.Abstract
	counts   []filters.Count
	current  model.FilterType
	onChange func(model.FilterType) error
}

func NewFilterView(counts []filters.Count, current model.FilterType) *FilterView {
	return &FilterView{counts: counts, current: current}
}

func (v *FilterView) Element() *render.Element { return v.ElementOf(v) }

func (v *FilterView) Template() string {
	parts := make([]string, 0, len(v.counts))
	for _, c := range v.counts {
		label := fmt.Sprintf("%s %d", strings.ToUpper(string(c.Type)), c.Count)
		switch {
		case c.Type == v.current:
			parts = append(parts, styleActive.Render(label))
		case c.Count == 0:
			parts = append(parts, faintIfDark(styleMuted).Render(label))
		default:
			parts = append(parts, styleMeta.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (v *FilterView) Current() model.FilterType { return v.current }

func (v *FilterView) Counts() []filters.Count { return append([]filters.Count(nil), v.counts...) }

func (v *FilterView) SetFilterTypeChangeHandler(fn func(model.FilterType) error) {
	v.onChange = fn
}

// Select behaves like clicking a filter entry. Entries with no tasks are disabled,
// except the active one and ALL.
func (v *FilterView) Select(f model.FilterType) error {
	for _, c := range v.counts {
		if c.Type == f && c.Count == 0 && f != v.current && f != model.FilterAll {
			return nil
		}
	}
	if v.onChange == nil {
		return nil
	}
	return v.onChange(f)
}

type LoadMoreButtonView struct {
	render.Abstract
	focus
	onClick func() error
}

func NewLoadMoreButtonView() *LoadMoreButtonView { return &LoadMoreButtonView{} }

func (v *LoadMoreButtonView) Element() *render.Element { return v.ElementOf(v) }

func (v *LoadMoreButtonView) Template() string {
	st := styleButton
	if v.focused {
		st = styleFocusBtn
	}
	return st.Render("LOAD MORE")
}

func (v *LoadMoreButtonView) SetClickHandler(fn func() error) { v.onClick = fn }

func (v *LoadMoreButtonView) Click() error { return call(v.onClick) }

type NoTasksView struct {
	render.Abstract
	filter model.FilterType
}

func NewNoTasksView(f model.FilterType) *NoTasksView { return &NoTasksView{filter: f} }

func (v *NoTasksView) Element() *render.Element { return v.ElementOf(v) }

func (v *NoTasksView) Template() string {
	return styleMuted.Render(NoTasksText(v.filter))
}

func NoTasksText(f model.FilterType) string {
	switch f {
	case model.FilterOverdue:
		return "There are no overdue tasks now"
	case model.FilterToday:
		return "There are no tasks today"
	case model.FilterFavorites:
		return "There are no favorite tasks now"
	case model.FilterRepeating:
		return "There are no repeating tasks now"
	case model.FilterArchive:
		return "There are no archived tasks now"
	default:
		return "Press «n» to create your first task"
	}
}
