package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"medislot/internal/domain"
	"medislot/internal/store"
)

// AppointmentStore keeps appointments in process memory. Like the Postgres schema it
// refuses to persist two overlapping blocking appointments for the same doctor.
type AppointmentStore struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]domain.Appointment
	now   func() time.Time
	loose bool
}

type Option func(*AppointmentStore)

// WithoutOverlapConstraint disables the write-time overlap check so callers can
// observe what the engine alone guarantees.
func WithoutOverlapConstraint() Option {
	return func(s *AppointmentStore) { s.loose = true }
}

func WithClock(now func() time.Time) Option {
	return func(s *AppointmentStore) { s.now = now }
}

func NewAppointmentStore(opts ...Option) *AppointmentStore {
	s := &AppointmentStore{
		rows: make(map[uuid.UUID]domain.Appointment),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.AppointmentStore = (*AppointmentStore)(nil)

func (s *AppointmentStore) Save(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	appt.Normalize()

	if appt.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Appointment{}, err
		}
		appt.ID = id
		if appt.CreatedAt.IsZero() {
			appt.CreatedAt = now
		}
	} else {
		existing, ok := s.rows[appt.ID]
		if !ok {
			return domain.Appointment{}, store.ErrNotFound
		}
		appt.CreatedAt = existing.CreatedAt
	}
	appt.UpdatedAt = now

	if !s.loose && appt.Status.IsBlocking() {
		iv := appt.Interval()
		for id, other := range s.rows {
			if id == appt.ID || other.DoctorID != appt.DoctorID || !other.Status.IsBlocking() {
				continue
			}
			if other.Interval().Overlaps(iv) {
				return domain.Appointment{}, store.ErrConflict
			}
		}
	}

	s.rows[appt.ID] = appt
	return appt, nil
}

func (s *AppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.rows[id]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return appt, nil
}

func (s *AppointmentStore) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	return s.filter(func(domain.Appointment) bool { return true }), nil
}

func (s *AppointmentStore) FindByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return s.filter(func(a domain.Appointment) bool { return a.PatientID == patientID }), nil
}

func (s *AppointmentStore) FindByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	return s.filter(func(a domain.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (s *AppointmentStore) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Appointment, error) {
	return s.filter(func(a domain.Appointment) bool { return a.Status == status }), nil
}

func (s *AppointmentStore) FindByDoctorAndRange(ctx context.Context, doctorID string, start, end time.Time) ([]domain.Appointment, error) {
	window := domain.Interval{Start: start, End: end}
	return s.filter(func(a domain.Appointment) bool {
		return a.DoctorID == doctorID && a.Interval().Overlaps(window)
	}), nil
}

func (s *AppointmentStore) FindInRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	window := domain.Interval{Start: start, End: end}
	return s.filter(func(a domain.Appointment) bool {
		return window.Contains(a.StartTime)
	}), nil
}

func (s *AppointmentStore) filter(keep func(domain.Appointment) bool) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Appointment, 0, len(s.rows))
	for _, a := range s.rows {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}
