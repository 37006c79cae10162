package notify

import (
	"context"
	"log/slog"

	"medislot/internal/domain"
)

// LogPublisher records events in the service log when no broker is configured.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	if log == nil {
		log = slog.Default()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Name() string { return "log" }

func (p *LogPublisher) Publish(ctx context.Context, ev domain.BookedEvent) error {
	p.log.InfoContext(ctx, "appointment booked event",
		slog.String("event_type", domain.EventTypeAppointmentBooked),
		slog.String("event_id", ev.EventID.String()),
		slog.String("appointment_id", ev.AppointmentID.String()),
		slog.String("patient_id", ev.PatientID),
		slog.String("doctor_id", ev.DoctorID),
		slog.Time("appointment_date_time", ev.AppointmentTime),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
