package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeAppointmentBooked = "appointment.booked.v1"

// BookedEvent is emitted once per successful booking for billing, patient and inventory consumers.
type BookedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	AppointmentID   uuid.UUID `json:"appointment_id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_date_time"`
	PatientEmail    string    `json:"patient_email"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewBookedEvent(a Appointment, contact string, now time.Time) BookedEvent {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return BookedEvent{
		EventID:         id,
		AppointmentID:   a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentTime: a.StartTime.UTC(),
		PatientEmail:    contact,
		OccurredAt:      now.UTC(),
	}
}
