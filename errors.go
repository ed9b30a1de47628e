package boxflow

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParent matches every *MissingParentError.
	ErrMissingParent = errors.New("boxflow: missing parent")

	// ErrAlreadyAttached is returned when a node is appended to a second container.
	ErrAlreadyAttached = errors.New("boxflow: node already attached")

	// ErrDestroyed is returned when a destroyed node or closed window is reused.
	ErrDestroyed = errors.New("boxflow: destroyed")

	// ErrAlreadyOpen is returned by Open on an open window.
	ErrAlreadyOpen = errors.New("boxflow: window already open")
)

// MissingParentError reports a node initialized before it was attached to a
// container. The node is left without native resources.
type MissingParentError struct {
	Kind Kind
	Text string
}

func (e *MissingParentError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("boxflow: %s initialized without a parent", e.Kind)
	}
	return fmt.Sprintf("boxflow: %s %q initialized without a parent", e.Kind, e.Text)
}

// Is reports whether target is ErrMissingParent.
func (e *MissingParentError) Is(target error) bool {
	return target == ErrMissingParent
}
