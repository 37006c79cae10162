package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/trace"

	"medislot/internal/domain"
)

const (
	defaultQueueSize      = 1024
	defaultWorkers        = 2
	defaultPublishTimeout = 5 * time.Second
)

type Metrics interface {
	NotificationPublished(publisher, outcome string)
	NotificationDropped()
}

type DispatcherConfig struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

type job struct {
	ev   domain.BookedEvent
	span trace.SpanContext
}

// Dispatcher queues booked events and publishes them from background workers. A full
// queue drops the event; a failed publish is logged and not retried.
type Dispatcher struct {
	pub     Publisher
	log     *slog.Logger
	metrics Metrics
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	jobs   chan job
	wg     sync.WaitGroup
}

func NewDispatcher(pub Publisher, cfg DispatcherConfig, log *slog.Logger, metrics Metrics) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultPublishTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	d := &Dispatcher{
		pub:     pub,
		log:     log,
		metrics: metrics,
		timeout: cfg.Timeout,
		jobs:    make(chan job, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// NotifyBooked enqueues ev without blocking. Only the caller's trace identity is kept;
// cancellation of ctx does not affect delivery.
func (d *Dispatcher) NotifyBooked(ctx context.Context, ev domain.BookedEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ev, "dispatcher closed")
		return
	}
	select {
	case d.jobs <- job{ev: ev, span: trace.SpanContextFromContext(ctx)}:
	default:
		d.drop(ev, "notification queue full")
	}
}

func (d *Dispatcher) drop(ev domain.BookedEvent, reason string) {
	d.metrics.NotificationDropped()
	d.log.Warn(reason+", dropping event",
		slog.String("event_id", ev.EventID.String()),
		slog.String("appointment_id", ev.AppointmentID.String()),
	)
}

// Shutdown stops accepting events and waits for queued ones until ctx is done.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return d.pub.Close()
	case <-ctx.Done():
		d.log.Warn("notification dispatcher shutdown timed out; queued events may be lost")
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.publish(j)
	}
}

func (d *Dispatcher) publish(j job) {
	ctx := trace.ContextWithRemoteSpanContext(context.Background(), j.span)
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.pub.Publish(ctx, j.ev)
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "breaker_open"
	default:
		outcome = "error"
	}
	d.metrics.NotificationPublished(d.pub.Name(), outcome)

	if err != nil {
		d.log.Error("failed to publish notification",
			slog.String("publisher", d.pub.Name()),
			slog.String("event_id", j.ev.EventID.String()),
			slog.String("appointment_id", j.ev.AppointmentID.String()),
			slog.Any("err", err),
		)
	}
}

type nopMetrics struct{}

func (nopMetrics) NotificationPublished(string, string) {}
func (nopMetrics) NotificationDropped()                 {}
