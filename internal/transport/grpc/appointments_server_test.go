package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"medislot/internal/domain"
	medislotv1 "medislot/internal/gen/proto/medislot/v1"
	"medislot/internal/service/appointments"
	"medislot/internal/store"
)

type fakeAppointmentsService struct {
	bookFn          func(ctx context.Context, in appointments.BookInput) (domain.Appointment, error)
	rescheduleFn    func(ctx context.Context, id uuid.UUID, newStart time.Time) (domain.Appointment, error)
	cancelFn        func(ctx context.Context, id uuid.UUID) error
	updateStatusFn  func(ctx context.Context, id uuid.UUID, rawStatus string) (domain.Appointment, error)
	updateNotesFn   func(ctx context.Context, id uuid.UUID, notes string) (domain.Appointment, error)
	getFn           func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	listFn          func(ctx context.Context) ([]domain.Appointment, error)
	listByPatientFn func(ctx context.Context, patientID string) ([]domain.Appointment, error)
	listByDoctorFn  func(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	listByStatusFn  func(ctx context.Context, rawStatus string) ([]domain.Appointment, error)
	listUpcomingFn  func(ctx context.Context) ([]domain.Appointment, error)
	listInRangeFn   func(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
}

func (f *fakeAppointmentsService) Book(ctx context.Context, in appointments.BookInput) (domain.Appointment, error) {
	if f.bookFn == nil {
		panic("Book not configured")
	}
	return f.bookFn(ctx, in)
}

func (f *fakeAppointmentsService) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) (domain.Appointment, error) {
	if f.rescheduleFn == nil {
		panic("Reschedule not configured")
	}
	return f.rescheduleFn(ctx, id, newStart)
}

func (f *fakeAppointmentsService) Cancel(ctx context.Context, id uuid.UUID) error {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, id)
}

func (f *fakeAppointmentsService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (domain.Appointment, error) {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, id, rawStatus)
}

func (f *fakeAppointmentsService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.Appointment, error) {
	if f.updateNotesFn == nil {
		panic("UpdateNotes not configured")
	}
	return f.updateNotesFn(ctx, id, notes)
}

func (f *fakeAppointmentsService) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeAppointmentsService) List(ctx context.Context) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx)
}

func (f *fakeAppointmentsService) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	if f.listByPatientFn == nil {
		panic("ListByPatient not configured")
	}
	return f.listByPatientFn(ctx, patientID)
}

func (f *fakeAppointmentsService) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	if f.listByDoctorFn == nil {
		panic("ListByDoctor not configured")
	}
	return f.listByDoctorFn(ctx, doctorID)
}

func (f *fakeAppointmentsService) ListByStatus(ctx context.Context, rawStatus string) ([]domain.Appointment, error) {
	if f.listByStatusFn == nil {
		panic("ListByStatus not configured")
	}
	return f.listByStatusFn(ctx, rawStatus)
}

func (f *fakeAppointmentsService) ListUpcoming(ctx context.Context) ([]domain.Appointment, error) {
	if f.listUpcomingFn == nil {
		panic("ListUpcoming not configured")
	}
	return f.listUpcomingFn(ctx)
}

func (f *fakeAppointmentsService) ListInRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	if f.listInRangeFn == nil {
		panic("ListInRange not configured")
	}
	return f.listInRangeFn(ctx, from, to)
}

func TestBookAppointment_RejectsMissingStartTime(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{}, slog.Default())

	_, err := srv.BookAppointment(context.Background(), &medislotv1.BookAppointmentRequest{PatientId: "p1", DoctorId: "d1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}

	_, err = srv.BookAppointment(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("nil request code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestBookAppointment_PassesInputToService(t *testing.T) {
	var got appointments.BookInput
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		bookFn: func(ctx context.Context, in appointments.BookInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{
				ID:              uuid.MustParse("00000000-0000-0000-0000-000000000010"),
				PatientID:       in.PatientID,
				DoctorID:        in.DoctorID,
				StartTime:       in.StartTime,
				EndTime:         in.StartTime.Add(45 * time.Minute),
				DurationMinutes: *in.DurationMinutes,
				Status:          domain.StatusScheduled,
			}, nil
		},
	}, slog.Default())

	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	resp, err := srv.BookAppointment(context.Background(), &medislotv1.BookAppointmentRequest{
		PatientId:       "p1",
		DoctorId:        "d1",
		StartTime:       timestamppb.New(start),
		DurationMinutes: proto.Int32(45),
		Reason:          "follow-up",
	})
	if err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if got.PatientID != "p1" || got.DoctorID != "d1" || !got.StartTime.Equal(start) || got.DurationMinutes == nil || *got.DurationMinutes != 45 || got.Reason != "follow-up" {
		t.Fatalf("service input = %+v", got)
	}
	if resp.Appointment.Id != "00000000-0000-0000-0000-000000000010" || resp.Appointment.Status != "SCHEDULED" || resp.Appointment.DurationMinutes != 45 {
		t.Fatalf("response = %+v", resp.Appointment)
	}
}

func TestStatusMapping(t *testing.T) {
	id := "00000000-0000-0000-0000-000000000020"
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", &appointments.ValidationError{}, codes.InvalidArgument},
		{"invalid status", domain.ErrInvalidStatus, codes.InvalidArgument},
		{"not found", store.ErrNotFound, codes.NotFound},
		{"slot taken", &appointments.ConflictError{Reason: "new time unavailable"}, codes.FailedPrecondition},
		{"strict transition", fmt.Errorf("COMPLETED -> SCHEDULED: %w", domain.ErrInvalidTransition), codes.FailedPrecondition},
		{"deadline", fmt.Errorf("lock doctor d1: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"other", fmt.Errorf("save appointment: %w", fmt.Errorf("connection reset")), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewAppointmentsServer(&fakeAppointmentsService{
				updateStatusFn: func(ctx context.Context, id uuid.UUID, rawStatus string) (domain.Appointment, error) {
					return domain.Appointment{}, tt.err
				},
			}, slog.Default())

			_, err := srv.UpdateAppointmentStatus(context.Background(), &medislotv1.UpdateAppointmentStatusRequest{AppointmentId: id, Status: "CONFIRMED"})
			if status.Code(err) != tt.want {
				t.Fatalf("code = %s, want %s", status.Code(err), tt.want)
			}
		})
	}
}

func TestAppointmentIDValidation(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{}, slog.Default())
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	calls := map[string]func() error{
		"reschedule": func() error {
			_, err := srv.RescheduleAppointment(ctx, &medislotv1.RescheduleAppointmentRequest{AppointmentId: "nope", NewStartTime: timestamppb.New(start)})
			return err
		},
		"cancel": func() error {
			_, err := srv.CancelAppointment(ctx, &medislotv1.CancelAppointmentRequest{AppointmentId: "nope"})
			return err
		},
		"status": func() error {
			_, err := srv.UpdateAppointmentStatus(ctx, &medislotv1.UpdateAppointmentStatusRequest{AppointmentId: "nope", Status: "CONFIRMED"})
			return err
		},
		"get": func() error {
			_, err := srv.GetAppointment(ctx, &medislotv1.GetAppointmentRequest{AppointmentId: ""})
			return err
		},
	}
	for name, call := range calls {
		if code := status.Code(call()); code != codes.InvalidArgument {
			t.Fatalf("%s code = %s, want %s", name, code, codes.InvalidArgument)
		}
	}
}

func TestListAppointments_Filters(t *testing.T) {
	var called string
	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	one := []domain.Appointment{{ID: uuid.MustParse("00000000-0000-0000-0000-000000000030"), Status: domain.StatusScheduled}}
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		listFn: func(ctx context.Context) ([]domain.Appointment, error) {
			called = "all"
			return one, nil
		},
		listByPatientFn: func(ctx context.Context, patientID string) ([]domain.Appointment, error) {
			called = "patient:" + patientID
			return one, nil
		},
		listByDoctorFn: func(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
			called = "doctor:" + doctorID
			return one, nil
		},
		listByStatusFn: func(ctx context.Context, rawStatus string) ([]domain.Appointment, error) {
			called = "status:" + rawStatus
			return nil, domain.ErrInvalidStatus
		},
		listUpcomingFn: func(ctx context.Context) ([]domain.Appointment, error) {
			called = "upcoming"
			return one, nil
		},
		listInRangeFn: func(ctx context.Context, gotFrom, gotTo time.Time) ([]domain.Appointment, error) {
			if !gotFrom.Equal(from) || !gotTo.Equal(to) {
				t.Errorf("range = [%v, %v), want [%v, %v)", gotFrom, gotTo, from, to)
			}
			called = "range"
			return one, nil
		},
	}, slog.Default())
	ctx := context.Background()

	tests := []struct {
		req      *medislotv1.ListAppointmentsRequest
		wantCall string
		wantCode codes.Code
	}{
		{nil, "all", codes.OK},
		{&medislotv1.ListAppointmentsRequest{PatientId: "p1"}, "patient:p1", codes.OK},
		{&medislotv1.ListAppointmentsRequest{DoctorId: "d1"}, "doctor:d1", codes.OK},
		{&medislotv1.ListAppointmentsRequest{Status: "later"}, "status:later", codes.InvalidArgument},
		{&medislotv1.ListAppointmentsRequest{Upcoming: true}, "upcoming", codes.OK},
		{&medislotv1.ListAppointmentsRequest{StartFrom: timestamppb.New(from), StartTo: timestamppb.New(to)}, "range", codes.OK},
		{&medislotv1.ListAppointmentsRequest{StartFrom: timestamppb.New(from)}, "", codes.InvalidArgument},
		{&medislotv1.ListAppointmentsRequest{PatientId: "p1", Upcoming: true}, "", codes.InvalidArgument},
		{&medislotv1.ListAppointmentsRequest{DoctorId: "d1", StartFrom: timestamppb.New(from), StartTo: timestamppb.New(to)}, "", codes.InvalidArgument},
	}
	for _, tt := range tests {
		called = ""
		resp, err := srv.ListAppointments(ctx, tt.req)
		if status.Code(err) != tt.wantCode {
			t.Fatalf("%+v: code = %s, want %s", tt.req, status.Code(err), tt.wantCode)
		}
		if called != tt.wantCall {
			t.Fatalf("%+v: called %q, want %q", tt.req, called, tt.wantCall)
		}
		if err == nil && len(resp.Appointments) != 1 {
			t.Fatalf("%+v: appointments = %d, want 1", tt.req, len(resp.Appointments))
		}
	}
}

func TestBookAppointment_DurationPresence(t *testing.T) {
	var got appointments.BookInput
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		bookFn: func(ctx context.Context, in appointments.BookInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{ID: uuid.New(), Status: domain.StatusScheduled}, nil
		},
	}, slog.Default())
	start := timestamppb.New(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))

	if _, err := srv.BookAppointment(context.Background(), &medislotv1.BookAppointmentRequest{PatientId: "p1", DoctorId: "d1", StartTime: start}); err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if got.DurationMinutes != nil {
		t.Fatalf("unset duration reached the service as %d", *got.DurationMinutes)
	}

	if _, err := srv.BookAppointment(context.Background(), &medislotv1.BookAppointmentRequest{PatientId: "p1", DoctorId: "d1", StartTime: start, DurationMinutes: proto.Int32(0)}); err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 0 {
		t.Fatalf("explicit zero duration = %v, want a pointer to 0", got.DurationMinutes)
	}
}

func TestUpdateAppointmentNotes(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000040")
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		updateNotesFn: func(ctx context.Context, gotID uuid.UUID, notes string) (domain.Appointment, error) {
			if gotID != id {
				return domain.Appointment{}, store.ErrNotFound
			}
			return domain.Appointment{ID: id, Notes: notes, Status: domain.StatusConfirmed}, nil
		},
	}, slog.Default())
	ctx := context.Background()

	resp, err := srv.UpdateAppointmentNotes(ctx, &medislotv1.UpdateAppointmentNotesRequest{AppointmentId: id.String(), Notes: "bring x-rays"})
	if err != nil {
		t.Fatalf("UpdateAppointmentNotes error: %v", err)
	}
	if resp.Appointment.Notes != "bring x-rays" || resp.Appointment.Status != "CONFIRMED" {
		t.Fatalf("response = %+v", resp.Appointment)
	}

	_, err = srv.UpdateAppointmentNotes(ctx, &medislotv1.UpdateAppointmentNotesRequest{AppointmentId: uuid.NewString()})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown id code = %s, want %s", status.Code(err), codes.NotFound)
	}
	_, err = srv.UpdateAppointmentNotes(ctx, &medislotv1.UpdateAppointmentNotesRequest{AppointmentId: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad id code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}
