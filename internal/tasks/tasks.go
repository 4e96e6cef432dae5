// Package tasks owns the canonical, insertion-ordered task collection.
package tasks

import (
	"fmt"

	"taskboard-cli/internal/model"
	"taskboard-cli/internal/observable"
)

// Observer is notified after every successful mutation with the affected task.
type Observer = observable.Observer[model.Task]

// ObserverFunc adapts a function or method value to Observer.
type ObserverFunc = observable.ObserverFunc[model.Task]

// Model is the task collection. It is not safe for concurrent use; callers run it on a
// single goroutine (the TUI update loop).
type Model struct {
	tasks     []model.Task
	observers observable.Observable[model.Task]
}

func New(tasks []model.Task) *Model {
	m := &Model{}
	m.SetTasks(tasks)
	return m
}

// SetTasks replaces the collection without notifying (initial load).
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		m.tasks = append(m.tasks, t.Clone())
	}
}

// Tasks returns a snapshot in canonical order.
func (m *Model) Tasks() []model.Task {
	out := make([]model.Task, len(m.tasks))
	for i, t := range m.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (m *Model) Len() int { return len(m.tasks) }

func (m *Model) Find(id string) (model.Task, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.tasks[i].Clone(), true
	}
	return model.Task{}, false
}

func (m *Model) AddObserver(o Observer) (unsubscribe func()) {
	return m.observers.AddObserver(o)
}

func (m *Model) RemoveObserver(o Observer) {
	m.observers.RemoveObserver(o)
}

// AddTask puts task at the front of the collection.
func (m *Model) AddTask(updateType model.UpdateType, task model.Task) error {
	if err := m.guard(); err != nil {
		return err
	}
	if m.indexOf(task.ID) >= 0 {
		return DuplicateError{ID: task.ID}
	}
	task = task.Clone()
	m.tasks = append([]model.Task{task}, m.tasks...)
	return m.notify(updateType, task)
}

func (m *Model) UpdateTask(updateType model.UpdateType, task model.Task) error {
	if err := m.guard(); err != nil {
		return err
	}
	i := m.indexOf(task.ID)
	if i < 0 {
		return NotFoundError{ID: task.ID}
	}
	task = task.Clone()
	m.tasks[i] = task
	return m.notify(updateType, task)
}

func (m *Model) DeleteTask(updateType model.UpdateType, task model.Task) error {
	if err := m.guard(); err != nil {
		return err
	}
	i := m.indexOf(task.ID)
	if i < 0 {
		return NotFoundError{ID: task.ID}
	}
	removed := m.tasks[i]
	m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
	return m.notify(updateType, removed)
}

func (m *Model) guard() error {
	if m.observers.Notifying() {
		return ErrReentrantMutation
	}
	return nil
}

func (m *Model) notify(updateType model.UpdateType, task model.Task) error {
	if err := m.observers.Notify(updateType, task.Clone()); err != nil {
		return fmt.Errorf("notify %s %s: %w", updateType, task.ID, err)
	}
	return nil
}

func (m *Model) indexOf(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
