package appointments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"medislot/internal/domain"
	"medislot/internal/locking"
	"medislot/internal/store"
)

const DefaultUpcomingWindow = 7 * 24 * time.Hour

// ResourceLocker grants exclusive access to one doctor's calendar. The returned func
// releases the lock.
type ResourceLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// ScopedLocker runs fn while holding key and hands it the store fn must use for every
// read and write made under the lock. The lock is released when fn returns.
type ScopedLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context, st store.AppointmentStore) error) error
}

// Notifier accepts booked events for asynchronous delivery. It must not block.
type Notifier interface {
	NotifyBooked(ctx context.Context, ev domain.BookedEvent)
}

type Metrics interface {
	ObserveOperation(op, outcome string, elapsed time.Duration)
	IncConflict(op string)
}

type Service struct {
	store    store.AppointmentStore
	locker   ScopedLocker
	notifier Notifier
	policy   domain.TransitionPolicy
	metrics  Metrics
	tracer   trace.Tracer
	log      *slog.Logger

	now      func() time.Time
	upcoming time.Duration
	contact  string
}

type Option func(*Service)

// WithLocker guards each doctor with l; work under the lock goes through the service's store.
func WithLocker(l ResourceLocker) Option {
	return func(s *Service) {
		if l != nil {
			s.locker = storeLocker{locker: l, store: s.store}
		}
	}
}

// WithScopedLocker guards each doctor with l and runs locked work against the store l provides.
func WithScopedLocker(l ScopedLocker) Option {
	return func(s *Service) {
		if l != nil {
			s.locker = l
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithPolicy(p domain.TransitionPolicy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithUpcomingWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.upcoming = d
		}
	}
}

// WithContactAddress sets the address stamped on booked events until patient contact
// details are looked up from the patient service.
func WithContactAddress(addr string) Option {
	return func(s *Service) { s.contact = strings.TrimSpace(addr) }
}

const tracerName = "medislot/internal/service/appointments"

func NewService(st store.AppointmentStore, opts ...Option) *Service {
	s := &Service{
		store:    st,
		locker:   storeLocker{locker: locking.NewLocal(), store: st},
		notifier: nopNotifier{},
		policy:   domain.PermissivePolicy{},
		metrics:  nopMetrics{},
		tracer:   otel.Tracer(tracerName),
		log:      slog.Default(),
		now:      time.Now,
		upcoming: DefaultUpcomingWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type BookInput struct {
	PatientID string
	DoctorID  string
	StartTime time.Time
	// DurationMinutes defaults to domain.DefaultDurationMinutes when nil.
	DurationMinutes *int
	Reason          string
	Department      string
	Notes           string
}

func (s *Service) Book(ctx context.Context, in BookInput) (appt domain.Appointment, err error) {
	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" {
		return domain.Appointment{}, validationError("patient_id is required")
	}
	doctorID := strings.TrimSpace(in.DoctorID)
	if doctorID == "" {
		return domain.Appointment{}, validationError("doctor_id is required")
	}
	if in.StartTime.IsZero() {
		return domain.Appointment{}, validationError("start_time is required")
	}
	duration := domain.DefaultDurationMinutes
	if in.DurationMinutes != nil {
		duration = *in.DurationMinutes
		if duration <= 0 {
			return domain.Appointment{}, validationError("duration_minutes must be positive")
		}
	}

	ctx, finish := s.begin(ctx, "book", attribute.String("doctor.id", doctorID))
	defer func() { finish(err) }()

	appt = domain.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		StartTime:       in.StartTime,
		DurationMinutes: duration,
		Status:          domain.StatusScheduled,
		Reason:          strings.TrimSpace(in.Reason),
		Department:      strings.TrimSpace(in.Department),
		Notes:           in.Notes,
	}
	appt.Normalize()

	saved, err := s.withDoctorLock(ctx, doctorID, func(ctx context.Context, st store.AppointmentStore) (domain.Appointment, error) {
		if err := s.ensureAvailable(ctx, st, "book", appt, "requested time unavailable"); err != nil {
			return domain.Appointment{}, err
		}
		return s.save(ctx, st, "book", appt, "requested time unavailable")
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.log.Info("appointment booked",
		slog.String("op", "book"),
		slog.String("appointment_id", saved.ID.String()),
		slog.String("doctor_id", saved.DoctorID),
		slog.Time("start_time", saved.StartTime),
	)
	s.notifier.NotifyBooked(ctx, domain.NewBookedEvent(saved, s.contact, s.now()))
	return saved, nil
}

// Reschedule moves an appointment to newStart keeping its duration and status. On
// conflict the stored appointment is left untouched.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) (appt domain.Appointment, err error) {
	if newStart.IsZero() {
		return domain.Appointment{}, validationError("new start time is required")
	}

	ctx, finish := s.begin(ctx, "reschedule", attribute.String("appointment.id", id.String()))
	defer func() { finish(err) }()

	return s.mutate(ctx, "reschedule", id, func(ctx context.Context, st store.AppointmentStore, a *domain.Appointment) error {
		a.StartTime = newStart
		a.Normalize()
		return s.ensureAvailable(ctx, st, "reschedule", *a, "new time unavailable")
	})
}

// Cancel marks the appointment CANCELLED. Cancelling twice is not an error.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (err error) {
	ctx, finish := s.begin(ctx, "cancel", attribute.String("appointment.id", id.String()))
	defer func() { finish(err) }()

	_, err = s.mutate(ctx, "cancel", id, func(_ context.Context, _ store.AppointmentStore, a *domain.Appointment) error {
		a.Status = domain.StatusCancelled
		return nil
	})
	return err
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (appt domain.Appointment, err error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return domain.Appointment{}, err
	}

	ctx, finish := s.begin(ctx, "update_status",
		attribute.String("appointment.id", id.String()),
		attribute.String("appointment.status", next.String()),
	)
	defer func() { finish(err) }()

	return s.mutate(ctx, "update_status", id, func(ctx context.Context, st store.AppointmentStore, a *domain.Appointment) error {
		prev := a.Status
		if !s.policy.Allow(prev, next) {
			return fmt.Errorf("%s -> %s: %w", prev, next, domain.ErrInvalidTransition)
		}
		a.Status = next
		if !prev.IsBlocking() && next.IsBlocking() {
			return s.ensureAvailable(ctx, st, "update_status", *a, "slot no longer available")
		}
		return nil
	})
}

func (s *Service) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (appt domain.Appointment, err error) {
	ctx, finish := s.begin(ctx, "update_notes", attribute.String("appointment.id", id.String()))
	defer func() { finish(err) }()

	return s.mutate(ctx, "update_notes", id, func(_ context.Context, _ store.AppointmentStore, a *domain.Appointment) error {
		a.Notes = notes
		return nil
	})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, validationError("patient_id is required")
	}
	return s.store.FindByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, validationError("doctor_id is required")
	}
	return s.store.FindByDoctor(ctx, doctorID)
}

func (s *Service) ListByStatus(ctx context.Context, rawStatus string) ([]domain.Appointment, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.store.FindByStatus(ctx, status)
}

// ListUpcoming returns appointments starting in [now, now+window) regardless of status.
func (s *Service) ListUpcoming(ctx context.Context) ([]domain.Appointment, error) {
	now := s.now().UTC()
	return s.store.FindInRange(ctx, now, now.Add(s.upcoming))
}

func (s *Service) ListInRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	if from.IsZero() || to.IsZero() {
		return nil, validationError("from and to are required")
	}
	if !to.After(from) {
		return nil, validationError("to must be after from")
	}
	return s.store.FindInRange(ctx, from.UTC(), to.UTC())
}

// mutate loads id, then re-reads and applies fn while holding the doctor's lock so
// concurrent writers never act on a stale copy.
func (s *Service) mutate(ctx context.Context, op string, id uuid.UUID, fn func(context.Context, store.AppointmentStore, *domain.Appointment) error) (domain.Appointment, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	return s.withDoctorLock(ctx, current.DoctorID, func(ctx context.Context, st store.AppointmentStore) (domain.Appointment, error) {
		fresh, err := st.FindByID(ctx, id)
		if err != nil {
			return domain.Appointment{}, err
		}
		if err := fn(ctx, st, &fresh); err != nil {
			return domain.Appointment{}, err
		}
		return s.save(ctx, st, op, fresh, "slot unavailable")
	})
}

func (s *Service) withDoctorLock(ctx context.Context, doctorID string, fn func(context.Context, store.AppointmentStore) (domain.Appointment, error)) (domain.Appointment, error) {
	var out domain.Appointment
	err := s.locker.WithLock(ctx, "doctor:"+doctorID, func(ctx context.Context, st store.AppointmentStore) error {
		a, err := fn(ctx, st)
		out = a
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (s *Service) ensureAvailable(ctx context.Context, st store.AppointmentStore, op string, a domain.Appointment, reason string) error {
	conflicts, err := NewDetector(st).Conflicts(ctx, a.DoctorID, a.Interval(), a.ID)
	if err != nil {
		return fmt.Errorf("check conflicts: %w", err)
	}
	if len(conflicts) == 0 {
		return nil
	}
	s.metrics.IncConflict(op)
	s.log.Warn("slot unavailable",
		slog.String("op", op),
		slog.String("doctor_id", a.DoctorID),
		slog.Time("start_time", a.StartTime),
		slog.Int("conflicts", len(conflicts)),
	)
	return &ConflictError{Reason: reason, Conflicts: conflicts}
}

func (s *Service) save(ctx context.Context, st store.AppointmentStore, op string, a domain.Appointment, reason string) (domain.Appointment, error) {
	saved, err := st.Save(ctx, a)
	if err == nil {
		return saved, nil
	}
	if errors.Is(err, store.ErrConflict) {
		s.metrics.IncConflict(op)
		s.log.Warn("store rejected overlapping appointment",
			slog.String("op", op),
			slog.String("doctor_id", a.DoctorID),
		)
		return domain.Appointment{}, &ConflictError{Reason: reason}
	}
	if errors.Is(err, store.ErrNotFound) {
		return domain.Appointment{}, err
	}
	return domain.Appointment{}, fmt.Errorf("save appointment: %w", err)
}

func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	started := time.Now()
	ctx, span := s.tracer.Start(ctx, "appointments."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		s.metrics.ObserveOperation(op, Outcome(err), time.Since(started))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// Outcome buckets an engine error into a low-cardinality label.
func Outcome(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrResourceUnavailable):
		return "conflict"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidTransition), errors.As(err, &vErr):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// storeLocker adapts a plain ResourceLocker; locked work shares the service's store.
type storeLocker struct {
	locker ResourceLocker
	store  store.AppointmentStore
}

func (l storeLocker) WithLock(ctx context.Context, key string, fn func(context.Context, store.AppointmentStore) error) error {
	unlock, err := l.locker.Lock(ctx, key)
	if err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}
	defer unlock()
	return fn(ctx, l.store)
}

type nopNotifier struct{}

func (nopNotifier) NotifyBooked(context.Context, domain.BookedEvent) {}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string, time.Duration) {}
func (nopMetrics) IncConflict(string)                             {}
