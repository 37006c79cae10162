package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"medislot/internal/domain"
	medislotv1 "medislot/internal/gen/proto/medislot/v1"
	"medislot/internal/service/appointments"
	"medislot/internal/store"
)

type AppointmentsServer struct {
	medislotv1.UnimplementedAppointmentsServiceServer

	svc appointmentsService
	log *slog.Logger
}

type appointmentsService interface {
	Book(ctx context.Context, in appointments.BookInput) (domain.Appointment, error)
	Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) (domain.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (domain.Appointment, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	ListByStatus(ctx context.Context, rawStatus string) ([]domain.Appointment, error)
	ListUpcoming(ctx context.Context) ([]domain.Appointment, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
}

func NewAppointmentsServer(svc appointmentsService, log *slog.Logger) *AppointmentsServer {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.appointments")),
	}
}

func (s *AppointmentsServer) BookAppointment(ctx context.Context, req *medislotv1.BookAppointmentRequest) (*medislotv1.BookAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "BookAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.StartTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start_time"), slog.String("doctor_id", req.DoctorId))
		return nil, status.Error(codes.InvalidArgument, "start_time is required")
	}

	var duration *int
	if req.DurationMinutes != nil {
		d := int(req.GetDurationMinutes())
		duration = &d
	}

	appt, err := s.svc.Book(ctx, appointments.BookInput{
		PatientID:       req.PatientId,
		DoctorID:        req.DoctorId,
		StartTime:       req.StartTime.AsTime(),
		DurationMinutes: duration,
		Reason:          req.Reason,
		Department:      req.Department,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, s.statusError(log, "appointment booking failed", err,
			slog.String("doctor_id", req.DoctorId),
			slog.Time("start_time", req.StartTime.AsTime()),
		)
	}

	log.Info(
		"appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("doctor_id", appt.DoctorID),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)
	return &medislotv1.BookAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *AppointmentsServer) RescheduleAppointment(ctx context.Context, req *medislotv1.RescheduleAppointmentRequest) (*medislotv1.RescheduleAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "RescheduleAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	if req.NewStartTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_new_start_time"), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.InvalidArgument, "new_start_time is required")
	}

	appt, err := s.svc.Reschedule(ctx, id, req.NewStartTime.AsTime())
	if err != nil {
		return nil, s.statusError(log, "appointment reschedule failed", err,
			slog.String("appointment_id", id.String()),
			slog.Time("new_start_time", req.NewStartTime.AsTime()),
		)
	}

	log.Info("appointment rescheduled", slog.String("appointment_id", id.String()), slog.Time("start_time", appt.StartTime))
	return &medislotv1.RescheduleAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *AppointmentsServer) CancelAppointment(ctx context.Context, req *medislotv1.CancelAppointmentRequest) (*medislotv1.CancelAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "CancelAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	if err := s.svc.Cancel(ctx, id); err != nil {
		return nil, s.statusError(log, "appointment cancel failed", err, slog.String("appointment_id", id.String()))
	}

	log.Info("appointment cancelled", slog.String("appointment_id", id.String()))
	return &medislotv1.CancelAppointmentResponse{}, nil
}

func (s *AppointmentsServer) UpdateAppointmentStatus(ctx context.Context, req *medislotv1.UpdateAppointmentStatusRequest) (*medislotv1.UpdateAppointmentStatusResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointmentStatus"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	appt, err := s.svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, s.statusError(log, "appointment status update failed", err,
			slog.String("appointment_id", id.String()),
			slog.String("status", req.Status),
		)
	}

	log.Info("appointment status updated", slog.String("appointment_id", id.String()), slog.String("status", appt.Status.String()))
	return &medislotv1.UpdateAppointmentStatusResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *AppointmentsServer) UpdateAppointmentNotes(ctx context.Context, req *medislotv1.UpdateAppointmentNotesRequest) (*medislotv1.UpdateAppointmentNotesResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointmentNotes"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	appt, err := s.svc.UpdateNotes(ctx, id, req.Notes)
	if err != nil {
		return nil, s.statusError(log, "appointment notes update failed", err, slog.String("appointment_id", id.String()))
	}

	log.Info("appointment notes updated", slog.String("appointment_id", id.String()))
	return &medislotv1.UpdateAppointmentNotesResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *AppointmentsServer) GetAppointment(ctx context.Context, req *medislotv1.GetAppointmentRequest) (*medislotv1.GetAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	appt, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, s.statusError(log, "appointment get failed", err, slog.String("appointment_id", id.String()))
	}
	return &medislotv1.GetAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *AppointmentsServer) ListAppointments(ctx context.Context, req *medislotv1.ListAppointmentsRequest) (*medislotv1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		req = &medislotv1.ListAppointmentsRequest{}
	}

	if (req.StartFrom == nil) != (req.StartTo == nil) {
		log.Warn("invalid request", slog.String("reason", "half_range"))
		return nil, status.Error(codes.InvalidArgument, "start_from and start_to must be set together")
	}
	ranged := req.StartFrom != nil

	filters := 0
	for _, set := range []bool{req.PatientId != "", req.DoctorId != "", req.Status != "", req.Upcoming, ranged} {
		if set {
			filters++
		}
	}
	if filters > 1 {
		log.Warn("invalid request", slog.String("reason", "multiple_filters"))
		return nil, status.Error(codes.InvalidArgument, "at most one of patient_id, doctor_id, status, upcoming, start_from/start_to may be set")
	}

	var (
		appts []domain.Appointment
		err   error
	)
	switch {
	case req.PatientId != "":
		appts, err = s.svc.ListByPatient(ctx, req.PatientId)
	case req.DoctorId != "":
		appts, err = s.svc.ListByDoctor(ctx, req.DoctorId)
	case req.Status != "":
		appts, err = s.svc.ListByStatus(ctx, req.Status)
	case req.Upcoming:
		appts, err = s.svc.ListUpcoming(ctx)
	case ranged:
		appts, err = s.svc.ListInRange(ctx, req.StartFrom.AsTime(), req.StartTo.AsTime())
	default:
		appts, err = s.svc.List(ctx)
	}
	if err != nil {
		return nil, s.statusError(log, "appointments list failed", err)
	}

	out := make([]*medislotv1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug("appointments listed", slog.Int("count", len(out)))
	return &medislotv1.ListAppointmentsResponse{Appointments: out}, nil
}

func parseAppointmentID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}
	return id, nil
}

// statusError maps engine errors onto gRPC codes and logs at a level matching the cause.
func (s *AppointmentsServer) statusError(log *slog.Logger, msg string, err error, attrs ...any) error {
	args := append([]any{slog.Any("err", err)}, attrs...)

	var vErr *appointments.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, "status must be one of SCHEDULED, CONFIRMED, IN_PROGRESS, COMPLETED, CANCELLED, NO_SHOW")
	case errors.Is(err, store.ErrNotFound):
		log.Info("appointment not found", args...)
		return status.Error(codes.NotFound, "appointment not found")
	case errors.Is(err, appointments.ErrResourceUnavailable):
		log.Info("appointment slot unavailable", args...)
		return status.Error(codes.FailedPrecondition, "The doctor already has an appointment during that time. Pick a different slot.")
	case errors.Is(err, domain.ErrInvalidTransition):
		log.Info("appointment status transition rejected", args...)
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn(msg, args...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		log.Info(msg, args...)
		return status.Error(codes.Canceled, "request canceled")
	default:
		log.Error(msg, args...)
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoAppointment(a domain.Appointment) *medislotv1.Appointment {
	return &medislotv1.Appointment{
		Id:              a.ID.String(),
		PatientId:       a.PatientID,
		DoctorId:        a.DoctorID,
		StartTime:       timestamppb.New(a.StartTime),
		EndTime:         timestamppb.New(a.EndTime),
		DurationMinutes: int32(a.DurationMinutes),
		Status:          a.Status.String(),
		Reason:          a.Reason,
		Department:      a.Department,
		Notes:           a.Notes,
		CreatedAt:       timestamppb.New(a.CreatedAt),
		UpdatedAt:       timestamppb.New(a.UpdatedAt),
	}
}
