package appointments

import (
	"errors"
	"strings"

	"medislot/internal/domain"
)

// ErrResourceUnavailable reports that the requested slot collides with another
// blocking appointment of the same doctor.
var ErrResourceUnavailable = errors.New("resource unavailable")

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError carries the appointments that made a slot unavailable. Conflicts may be
// empty when the storage layer rejected the write on its own.
type ConflictError struct {
	Reason    string
	Conflicts []domain.Appointment
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return e.Reason
	}
	ids := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		ids = append(ids, c.ID.String())
	}
	return e.Reason + " (conflicts with " + strings.Join(ids, ", ") + ")"
}

func (e *ConflictError) Unwrap() error {
	return ErrResourceUnavailable
}
