package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"medislot/internal/domain"
	"medislot/internal/store"
)

func booking(doctorID string, start time.Time, mins int) domain.Appointment {
	return domain.Appointment{
		PatientID:       "p1",
		DoctorID:        doctorID,
		StartTime:       start,
		DurationMinutes: mins,
		Status:          domain.StatusScheduled,
	}
}

func TestAppointmentStore_SaveAssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	s := NewAppointmentStore(WithClock(func() time.Time { return now }))

	a, err := s.Save(context.Background(), booking("d1", now.Add(time.Hour), 30))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatalf("expected store-assigned id")
	}
	if !a.CreatedAt.Equal(now) || !a.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v/%v, want %v", a.CreatedAt, a.UpdatedAt, now)
	}
	if got := a.EndTime.Sub(a.StartTime); got != 30*time.Minute {
		t.Fatalf("end - start = %v, want 30m", got)
	}

	later := now.Add(time.Minute)
	s.now = func() time.Time { return later }
	a.Notes = "follow up"
	updated, err := s.Save(context.Background(), a)
	if err != nil {
		t.Fatalf("Save (update) error: %v", err)
	}
	if !updated.CreatedAt.Equal(now) {
		t.Fatalf("created_at changed on update: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Fatalf("updated_at = %v, want %v", updated.UpdatedAt, later)
	}

	got, err := s.FindByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Notes != "follow up" {
		t.Fatalf("read-your-writes violated: notes = %q", got.Notes)
	}
}

func TestAppointmentStore_UpdateMissingIsNotFound(t *testing.T) {
	s := NewAppointmentStore()
	a := booking("d1", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), 30)
	a.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

	if _, err := s.Save(context.Background(), a); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}
	if _, err := s.FindByID(context.Background(), a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("FindByID err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestAppointmentStore_OverlapConstraint(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("rejects overlapping blocking appointment", func(t *testing.T) {
		s := NewAppointmentStore()
		if _, err := s.Save(ctx, booking("d1", start, 30)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if _, err := s.Save(ctx, booking("d1", start.Add(15*time.Minute), 30)); !errors.Is(err, store.ErrConflict) {
			t.Fatalf("err = %v, want %v", err, store.ErrConflict)
		}
	})

	t.Run("other doctor and cancelled rows do not conflict", func(t *testing.T) {
		s := NewAppointmentStore()
		if _, err := s.Save(ctx, booking("d1", start, 30)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if _, err := s.Save(ctx, booking("d2", start, 30)); err != nil {
			t.Fatalf("other doctor: %v", err)
		}
		cancelled := booking("d1", start, 30)
		cancelled.Status = domain.StatusCancelled
		if _, err := s.Save(ctx, cancelled); err != nil {
			t.Fatalf("cancelled row: %v", err)
		}
	})

	t.Run("disabled constraint accepts overlap", func(t *testing.T) {
		s := NewAppointmentStore(WithoutOverlapConstraint())
		if _, err := s.Save(ctx, booking("d1", start, 30)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if _, err := s.Save(ctx, booking("d1", start, 30)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	})
}

func TestAppointmentStore_Queries(t *testing.T) {
	ctx := context.Background()
	s := NewAppointmentStore()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	a1, _ := s.Save(ctx, booking("d1", base.Add(2*time.Hour), 30))
	a2, _ := s.Save(ctx, booking("d1", base, 30))
	other := booking("d2", base.Add(time.Hour), 30)
	other.PatientID = "p2"
	other.Status = domain.StatusConfirmed
	a3, _ := s.Save(ctx, other)

	all, _ := s.FindAll(ctx)
	if len(all) != 3 || all[0].ID != a2.ID || all[2].ID != a1.ID {
		t.Fatalf("FindAll order wrong: %+v", all)
	}

	byDoctor, _ := s.FindByDoctor(ctx, "d1")
	if len(byDoctor) != 2 {
		t.Fatalf("FindByDoctor len = %d, want 2", len(byDoctor))
	}

	byPatient, _ := s.FindByPatient(ctx, "p2")
	if len(byPatient) != 1 || byPatient[0].ID != a3.ID {
		t.Fatalf("FindByPatient = %+v", byPatient)
	}

	byStatus, _ := s.FindByStatus(ctx, domain.StatusConfirmed)
	if len(byStatus) != 1 || byStatus[0].ID != a3.ID {
		t.Fatalf("FindByStatus = %+v", byStatus)
	}

	ranged, _ := s.FindByDoctorAndRange(ctx, "d1", base.Add(29*time.Minute), base.Add(2*time.Hour+1))
	if len(ranged) != 2 {
		t.Fatalf("FindByDoctorAndRange len = %d, want 2", len(ranged))
	}

	inRange, _ := s.FindInRange(ctx, base, base.Add(time.Hour))
	if len(inRange) != 1 || inRange[0].ID != a2.ID {
		t.Fatalf("FindInRange must exclude the upper bound: %+v", inRange)
	}
}
