package tasks

import (
	"errors"
	"fmt"
)

// ErrReentrantMutation is returned when an observer tries to mutate the collection
// while a notification pass is still running.
var ErrReentrantMutation = errors.New("tasks: mutation during notification")

type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

type DuplicateError struct {
	ID string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("task already exists: %s", e.ID)
}
