// Package filters holds the current board filter and the pure filter derivations.
package filters

import (
	"time"

	"taskboard-cli/internal/model"
	"taskboard-cli/internal/observable"
)

type Observer = observable.Observer[model.FilterType]

type ObserverFunc = observable.ObserverFunc[model.FilterType]

type Model struct {
	current   model.FilterType
	observers observable.Observable[model.FilterType]
}

func New() *Model {
	return &Model{current: model.FilterAll}
}

func (m *Model) Filter() model.FilterType { return m.current }

// SetFilter changes the filter and notifies. Setting the current filter again is a no-op.
func (m *Model) SetFilter(updateType model.UpdateType, f model.FilterType) error {
	if f == m.current {
		return nil
	}
	m.current = f
	return m.observers.Notify(updateType, f)
}

func (m *Model) AddObserver(o Observer) (unsubscribe func()) {
	return m.observers.AddObserver(o)
}

func (m *Model) RemoveObserver(o Observer) {
	m.observers.RemoveObserver(o)
}

// Match reports whether t belongs to the f bucket at time now.
func Match(f model.FilterType, t model.Task, now time.Time) bool {
	switch f {
	case model.FilterAll:
		return true
	case model.FilterOverdue:
		return !t.IsArchive && model.IsExpired(t.DueDate, now) && !model.IsExpiringToday(t.DueDate, now)
	case model.FilterToday:
		return !t.IsArchive && model.IsExpiringToday(t.DueDate, now)
	case model.FilterFavorites:
		return !t.IsArchive && t.IsFavorite
	case model.FilterRepeating:
		return !t.IsArchive && model.IsRepeating(t.Repeating)
	case model.FilterArchive:
		return t.IsArchive
	default:
		return false
	}
}

// Apply keeps the tasks in the f bucket, preserving order.
func Apply(f model.FilterType, tasks []model.Task, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if Match(f, t, now) {
			out = append(out, t)
		}
	}
	return out
}

// Count is one filter bar entry.
type Count struct {
	Type  model.FilterType `json:"type"`
	Count int              `json:"count"`
}

func Counts(tasks []model.Task, now time.Time) []Count {
	out := make([]Count, 0, len(model.FilterTypes))
	for _, f := range model.FilterTypes {
		n := 0
		for _, t := range tasks {
			if Match(f, t, now) {
				n++
			}
		}
		out = append(out, Count{Type: f, Count: n})
	}
	return out
}
