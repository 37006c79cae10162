package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const DefaultDurationMinutes = 30

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	PatientID       string    `bun:"patient_id,notnull"`
	DoctorID        string    `bun:"doctor_id,notnull"`
	StartTime       time.Time `bun:"start_time,notnull"`
	EndTime         time.Time `bun:"end_time,notnull"`
	DurationMinutes int       `bun:"duration_minutes,notnull"`
	Status          Status    `bun:"status,notnull"`
	Reason          string    `bun:"reason,notnull"`
	Department      string    `bun:"department,notnull"`
	Notes           string    `bun:"notes,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

func (a Appointment) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}

func (a Appointment) Interval() Interval {
	return NewInterval(a.StartTime, a.Duration())
}

// Normalize converts times to UTC and recomputes EndTime from StartTime and the duration.
func (a *Appointment) Normalize() {
	a.StartTime = a.StartTime.UTC()
	a.EndTime = a.StartTime.Add(a.Duration())
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	a.Normalize()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}
