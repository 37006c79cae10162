package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

var allStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ParseStatus accepts any letter case; the uppercased token must match exactly.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsBlocking reports whether an appointment in this status occupies the doctor's time.
func (s Status) IsBlocking() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// TransitionPolicy decides whether an explicit status update is permitted.
type TransitionPolicy interface {
	Allow(from, to Status) bool
}

// PermissivePolicy allows any status to be set from any other status.
type PermissivePolicy struct{}

func (PermissivePolicy) Allow(from, to Status) bool {
	return to.IsValid()
}

// StrictPolicy enforces the clinical lifecycle:
//
//	scheduled → confirmed → in_progress → completed
//	scheduled | confirmed → cancelled | no_show
//
// Re-applying the current status is always allowed.
type StrictPolicy struct{}

var strictTransitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

func (StrictPolicy) Allow(from, to Status) bool {
	if !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range strictTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
