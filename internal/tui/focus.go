package tui

import (
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/view"
)

type focusKind int

const (
	focusNone focusKind = iota
	focusTask
	focusNewTask
	focusLoadMore
)

// focusTarget names a focusable component by what it shows rather than by pointer, so
// focus survives presenters rebuilding their components.
type focusTarget struct {
	kind focusKind
	id   string
}

type focusable interface {
	render.Component
	SetFocused(bool)
	Focused() bool
}

type focusEntry struct {
	target focusTarget
	comp   focusable
}

// focusables lists cards, forms and the load more button in document order.
func focusables(root *render.Element) []focusEntry {
	var out []focusEntry
	root.Walk(func(e *render.Element) bool {
		switch v := e.View().(type) {
		case *view.TaskView:
			out = append(out, focusEntry{target: focusTarget{kind: focusTask, id: v.Task().ID}, comp: v})
		case *view.TaskEditView:
			if v.IsNew() {
				out = append(out, focusEntry{target: focusTarget{kind: focusNewTask}, comp: v})
			} else {
				out = append(out, focusEntry{target: focusTarget{kind: focusTask, id: v.Task().ID}, comp: v})
			}
		case *view.LoadMoreButtonView:
			out = append(out, focusEntry{target: focusTarget{kind: focusLoadMore}, comp: v})
		}
		return true
	})
	return out
}

// syncFocus re-resolves the focus target after the tree changed. A target that vanished
// falls back to whatever now sits at the same position.
func (m *appModel) syncFocus() {
	entries := focusables(m.page.Element())
	idx := -1
	for i, e := range entries {
		e.comp.SetFocused(false)
		if e.target == m.focus {
			idx = i
		}
	}
	if idx < 0 && len(entries) > 0 {
		idx = min(max(m.focusIdx, 0), len(entries)-1)
	}
	if idx < 0 {
		m.focus = focusTarget{}
		m.focusIdx = 0
		m.bindInput(nil)
		return
	}
	entries[idx].comp.SetFocused(true)
	m.focus = entries[idx].target
	m.focusIdx = idx

	form, _ := entries[idx].comp.(*view.TaskEditView)
	m.bindInput(form)
}

func (m *appModel) moveFocus(delta int) {
	entries := focusables(m.page.Element())
	if len(entries) == 0 {
		return
	}
	idx := min(max(m.focusIdx+delta, 0), len(entries)-1)
	m.focus = entries[idx].target
	m.focusIdx = idx
	m.syncFocus()
}

func (m *appModel) focused() focusable {
	for _, e := range focusables(m.page.Element()) {
		if e.target == m.focus {
			return e.comp
		}
	}
	return nil
}

func (m *appModel) focusedForm() *view.TaskEditView {
	form, _ := m.focused().(*view.TaskEditView)
	return form
}
