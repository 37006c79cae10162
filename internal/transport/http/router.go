// Package http exposes the appointment engine as a JSON REST API on gin.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Appointments appointmentsService
	Logger       *slog.Logger
	Metrics      requestObserver
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	ReadyChecks    []ReadyCheck
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(requestID(), accessLog(log.With(slog.String("component", "http")), cfg.Metrics), gin.Recovery())

	r.GET("/healthz", healthz)
	r.GET("/readyz", readyz(cfg.ReadyChecks))
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	v1 := r.Group("/api/v1")
	NewAppointmentsHandler(cfg.Appointments, log).Register(v1)

	return r
}
