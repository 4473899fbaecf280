package typemap

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint is returned when a declared constraint cannot be
// satisfied by any column type.
var ErrInvalidConstraint = errors.New("invalid constraint")

// ConstraintError describes the rejected constraint.
type ConstraintError struct {
	Kind  string // "string" or "binary"
	Value int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("invalid max length for %s type (must be greater than 0): %d", e.Kind, e.Value)
}

func (e *ConstraintError) Unwrap() error {
	return ErrInvalidConstraint
}
