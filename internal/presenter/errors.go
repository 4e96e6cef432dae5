package presenter

import (
	"fmt"

	"taskboard-cli/internal/model"
)

type UnrecognizedActionError struct {
	Action model.UserAction
}

func (e UnrecognizedActionError) Error() string {
	return fmt.Sprintf("unrecognized action: %s", e.Action)
}

type UnrecognizedUpdateError struct {
	Update model.UpdateType
}

func (e UnrecognizedUpdateError) Error() string {
	return fmt.Sprintf("unrecognized update: %s", e.Update)
}

// StaleReferenceError is returned in strict mode when a PATCH names a task that has no
// rendered presenter.
type StaleReferenceError struct {
	ID string
}

func (e StaleReferenceError) Error() string {
	return fmt.Sprintf("patch for task without presenter: %s", e.ID)
}
