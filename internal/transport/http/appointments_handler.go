package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medislot/internal/domain"
	"medislot/internal/service/appointments"
)

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

type AppointmentsHandler struct {
	svc appointmentsService
	log *slog.Logger
}

func NewAppointmentsHandler(svc appointmentsService, log *slog.Logger) *AppointmentsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsHandler{svc: svc, log: log.With(slog.String("component", "http.appointments"))}
}

func (h *AppointmentsHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/appointments")
	g.POST("", h.book)
	g.GET("", h.list)
	g.GET("/upcoming", h.upcoming)
	g.GET("/patient/:patientId", h.byPatient)
	g.GET("/doctor/:doctorId", h.byDoctor)
	g.GET("/status/:status", h.byStatus)
	g.GET("/:id", h.get)
	g.PUT("/:id/status", h.updateStatus)
	g.PUT("/:id/reschedule", h.reschedule)
	g.PUT("/:id/cancel", h.cancel)
	g.PUT("/:id/notes", h.updateNotes)
}

type bookRequest struct {
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes *int      `json:"duration_minutes"`
	Reason          string    `json:"reason"`
	Department      string    `json:"department"`
	Notes           string    `json:"notes"`
}

func (h *AppointmentsHandler) book(c *gin.Context) {
	var req bookRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := h.svc.Book(c.Request.Context(), appointments.BookInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		Department:      req.Department,
		Notes:           req.Notes,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondCreated(c, toResponse(appt))
}

// list serves every appointment, or those starting in [from, to) when both are given.
func (h *AppointmentsHandler) list(c *gin.Context) {
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" && toRaw == "" {
		appts, err := h.svc.List(c.Request.Context())
		h.respondList(c, appts, err)
		return
	}

	from, err := time.Parse(time.RFC3339, fromRaw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, toRaw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "to must be an RFC 3339 timestamp")
		return
	}
	appts, err := h.svc.ListInRange(c.Request.Context(), from, to)
	h.respondList(c, appts, err)
}

func (h *AppointmentsHandler) upcoming(c *gin.Context) {
	appts, err := h.svc.ListUpcoming(c.Request.Context())
	h.respondList(c, appts, err)
}

func (h *AppointmentsHandler) byPatient(c *gin.Context) {
	appts, err := h.svc.ListByPatient(c.Request.Context(), c.Param("patientId"))
	h.respondList(c, appts, err)
}

func (h *AppointmentsHandler) byDoctor(c *gin.Context) {
	appts, err := h.svc.ListByDoctor(c.Request.Context(), c.Param("doctorId"))
	h.respondList(c, appts, err)
}

func (h *AppointmentsHandler) byStatus(c *gin.Context) {
	appts, err := h.svc.ListByStatus(c.Request.Context(), c.Param("status"))
	h.respondList(c, appts, err)
}

func (h *AppointmentsHandler) respondList(c *gin.Context, appts []domain.Appointment, err error) {
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondOK(c, toResponses(appts))
}

func (h *AppointmentsHandler) get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	appt, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondOK(c, toResponse(appt))
}

func (h *AppointmentsHandler) updateStatus(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	raw, present := c.GetQuery("status")
	if !present {
		respondError(c, http.StatusBadRequest, "status query parameter is required")
		return
	}
	appt, err := h.svc.UpdateStatus(c.Request.Context(), id, raw)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondOK(c, toResponse(appt))
}

func (h *AppointmentsHandler) reschedule(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	raw := strings.TrimSpace(c.Query("newDateTime"))
	if raw == "" {
		respondError(c, http.StatusBadRequest, "newDateTime query parameter is required")
		return
	}
	newStart, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "newDateTime must be an RFC 3339 timestamp")
		return
	}
	appt, err := h.svc.Reschedule(c.Request.Context(), id, newStart)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondOK(c, toResponse(appt))
}

func (h *AppointmentsHandler) cancel(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse[any]{Message: "appointment cancelled"})
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *AppointmentsHandler) updateNotes(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req notesRequest
	if !bindJSON(c, &req) {
		return
	}
	appt, err := h.svc.UpdateNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondOK(c, toResponse(appt))
}
