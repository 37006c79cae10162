package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medislot/internal/domain"
	"medislot/internal/service/appointments"
	"medislot/internal/store"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}

type appointmentResponse struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Department      string    `json:"department,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID.String(),
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		StartTime:       a.StartTime.UTC(),
		EndTime:         a.EndTime.UTC(),
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status.String(),
		Reason:          a.Reason,
		Department:      a.Department,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.UTC(),
		UpdatedAt:       a.UpdatedAt.UTC(),
	}
}

func toResponses(in []domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(in))
	for _, a := range in {
		out = append(out, toResponse(a))
	}
	return out
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondServiceError(c *gin.Context, log *slog.Logger, err error) {
	var vErr *appointments.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Code: "INVALID_REQUEST"})
		return
	}

	var cErr *appointments.ConflictError
	if errors.As(err, &cErr) {
		ids := make([]string, 0, len(cErr.Conflicts))
		for _, a := range cErr.Conflicts {
			ids = append(ids, a.ID.String())
		}
		c.JSON(http.StatusConflict, ErrorResponse{Error: cErr.Reason, Code: "RESOURCE_UNAVAILABLE", Conflicts: ids})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_STATUS"})

	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "appointment not found", Code: "NOT_FOUND"})

	case errors.Is(err, appointments.ErrResourceUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "RESOURCE_UNAVAILABLE"})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "INVALID_TRANSITION"})

	default:
		log.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Any("err", err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "INVALID_REQUEST"})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID", Code: "INVALID_REQUEST"})
		return uuid.Nil, false
	}
	return id, true
}
