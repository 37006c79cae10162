package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medislot/internal/domain"
)

// AppointmentStore holds appointment records. A write it accepts is visible to every
// subsequent read issued through the same store.
type AppointmentStore interface {
	// Save inserts the appointment when its ID is nil and updates it otherwise.
	Save(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Appointment, error)

	// FindByDoctorAndRange returns the doctor's appointments intersecting [start, end).
	// It may over-return but must not under-return.
	FindByDoctorAndRange(ctx context.Context, doctorID string, start, end time.Time) ([]domain.Appointment, error)

	// FindInRange returns appointments starting within [start, end).
	FindInRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error)
}
