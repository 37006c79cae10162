package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"medislot/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() domain.BookedEvent {
	return domain.BookedEvent{
		EventID:         uuid.MustParse("00000000-0000-0000-0000-0000000000e1"),
		AppointmentID:   uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		PatientID:       "p1",
		DoctorID:        "d1",
		AppointmentTime: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		PatientEmail:    "patient@example.org",
		OccurredAt:      time.Date(2026, 5, 30, 12, 0, 0, 0, time.UTC),
	}
}

type fakePublisher struct {
	publishFn func(ctx context.Context, ev domain.BookedEvent) error
	calls     atomic.Int32
	closed    atomic.Bool
}

func (f *fakePublisher) Name() string { return "fake" }

func (f *fakePublisher) Publish(ctx context.Context, ev domain.BookedEvent) error {
	f.calls.Add(1)
	if f.publishFn == nil {
		panic("Publish not configured")
	}
	return f.publishFn(ctx, ev)
}

func (f *fakePublisher) Close() error {
	f.closed.Store(true)
	return nil
}

type countingMetrics struct {
	mu        sync.Mutex
	published map[string]int
	dropped   int
}

func (m *countingMetrics) NotificationPublished(publisher, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.published == nil {
		m.published = map[string]int{}
	}
	m.published[outcome]++
}

func (m *countingMetrics) NotificationDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped++
}

func TestDispatcher_PublishesAndDrainsOnShutdown(t *testing.T) {
	var got []domain.BookedEvent
	var mu sync.Mutex
	pub := &fakePublisher{publishFn: func(ctx context.Context, ev domain.BookedEvent) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("publish context has no deadline")
		}
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
		return nil
	}}
	metrics := &countingMetrics{}
	d := NewDispatcher(pub, DispatcherConfig{QueueSize: 16, Workers: 3}, discardLogger(), metrics)

	// A cancelled request context must not stop delivery.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 10; i++ {
		d.NotifyBooked(ctx, testEvent())
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()
	if err := d.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("published = %d, want 10", len(got))
	}
	if metrics.published["ok"] != 10 {
		t.Fatalf("ok metric = %d, want 10", metrics.published["ok"])
	}
	if !pub.closed.Load() {
		t.Fatalf("publisher not closed on shutdown")
	}

	d.NotifyBooked(context.Background(), testEvent())
	if metrics.dropped != 1 {
		t.Fatalf("dropped after shutdown = %d, want 1", metrics.dropped)
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	pub := &fakePublisher{publishFn: func(ctx context.Context, ev domain.BookedEvent) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}}
	metrics := &countingMetrics{}
	d := NewDispatcher(pub, DispatcherConfig{QueueSize: 2, Workers: 1}, discardLogger(), metrics)

	d.NotifyBooked(context.Background(), testEvent())
	<-started

	begin := time.Now()
	for i := 0; i < 5; i++ {
		d.NotifyBooked(context.Background(), testEvent())
	}
	if elapsed := time.Since(begin); elapsed > time.Second {
		t.Fatalf("NotifyBooked blocked for %v", elapsed)
	}

	close(release)
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}
	if metrics.dropped != 3 {
		t.Fatalf("dropped = %d, want 3", metrics.dropped)
	}
	if n := pub.calls.Load(); n != 3 {
		t.Fatalf("publish calls = %d, want 3", n)
	}
}

func TestDispatcher_FailuresAreNotRetried(t *testing.T) {
	pub := &fakePublisher{publishFn: func(ctx context.Context, ev domain.BookedEvent) error {
		return errors.New("broker down")
	}}
	metrics := &countingMetrics{}
	d := NewDispatcher(pub, DispatcherConfig{Workers: 1}, discardLogger(), metrics)

	d.NotifyBooked(context.Background(), testEvent())
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}
	if n := pub.calls.Load(); n != 1 {
		t.Fatalf("publish calls = %d, want 1", n)
	}
	if metrics.published["error"] != 1 {
		t.Fatalf("error metric = %d, want 1", metrics.published["error"])
	}
}

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("broker down")
	next := &fakePublisher{publishFn: func(ctx context.Context, ev domain.BookedEvent) error {
		return boom
	}}
	b := NewBreakerPublisher(next, BreakerConfig{MaxFailures: 2, OpenTimeout: time.Minute}, discardLogger())

	for i := 0; i < 2; i++ {
		if err := b.Publish(context.Background(), testEvent()); !errors.Is(err, boom) {
			t.Fatalf("call %d err = %v, want %v", i, err, boom)
		}
	}
	if b.State() != gobreaker.StateOpen {
		t.Fatalf("state = %s, want open", b.State())
	}
	if err := b.Publish(context.Background(), testEvent()); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("open err = %v, want %v", err, gobreaker.ErrOpenState)
	}
	if n := next.calls.Load(); n != 2 {
		t.Fatalf("underlying calls = %d, want 2", n)
	}
}

type fakeWriter struct {
	writeFn func(ctx context.Context, msgs ...kafka.Message) error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.writeFn == nil {
		panic("WriteMessages not configured")
	}
	return f.writeFn(ctx, msgs...)
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_MessageShape(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	var got kafka.Message
	p := NewKafkaPublisherWithWriter(&fakeWriter{writeFn: func(ctx context.Context, msgs ...kafka.Message) error {
		if len(msgs) != 1 {
			t.Fatalf("messages = %d, want 1", len(msgs))
		}
		got = msgs[0]
		return nil
	}}, "appointments.booked")

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	ev := testEvent()
	if err := p.Publish(ctx, ev); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if string(got.Key) != ev.AppointmentID.String() {
		t.Fatalf("key = %q, want appointment id", got.Key)
	}
	headers := map[string]string{}
	for _, h := range got.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers["event_id"] != ev.EventID.String() || headers["event_type"] != domain.EventTypeAppointmentBooked {
		t.Fatalf("headers = %v", headers)
	}
	if headers["traceparent"] == "" {
		t.Fatalf("missing traceparent header: %v", headers)
	}

	var body map[string]any
	if err := json.Unmarshal(got.Value, &body); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	for _, field := range []string{"event_id", "appointment_id", "patient_id", "doctor_id", "appointment_date_time", "patient_email"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("payload missing %q: %s", field, got.Value)
		}
	}
}

func TestKafkaPublisher_WrapsWriteError(t *testing.T) {
	boom := errors.New("leader not available")
	p := NewKafkaPublisherWithWriter(&fakeWriter{writeFn: func(ctx context.Context, msgs ...kafka.Message) error {
		return boom
	}}, "appointments.booked")

	if err := p.Publish(context.Background(), testEvent()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestNewKafkaPublisher_RequiresConfig(t *testing.T) {
	if _, err := NewKafkaPublisher(nil, "t"); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewKafkaPublisher([]string{"localhost:9092"}, " "); err == nil {
		t.Fatalf("expected error without topic")
	}
}

func TestSplitBrokers(t *testing.T) {
	got := SplitBrokers(" a:9092, ,b:9092,")
	if len(got) != 2 || got[0] != "a:9092" || got[1] != "b:9092" {
		t.Fatalf("SplitBrokers = %v", got)
	}
}

type fakeChannel struct {
	publishFn func(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

func (f *fakeChannel) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.publishFn == nil {
		panic("Publish not configured")
	}
	return f.publishFn(ctx, channel, message)
}

func TestRedisPublisher(t *testing.T) {
	var gotChannel string
	var gotPayload []byte
	client := &fakeChannel{publishFn: func(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
		gotChannel = channel
		gotPayload, _ = message.([]byte)
		cmd := redis.NewIntCmd(ctx)
		cmd.SetVal(1)
		return cmd
	}}

	p, err := NewRedisPublisher(client, "appointments")
	if err != nil {
		t.Fatalf("NewRedisPublisher error: %v", err)
	}
	if err := p.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if gotChannel != "appointments" {
		t.Fatalf("channel = %q", gotChannel)
	}
	var ev domain.BookedEvent
	if err := json.Unmarshal(gotPayload, &ev); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if ev.AppointmentID != testEvent().AppointmentID {
		t.Fatalf("appointment_id = %s", ev.AppointmentID)
	}

	boom := errors.New("connection refused")
	client.publishFn = func(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
		cmd := redis.NewIntCmd(ctx)
		cmd.SetErr(boom)
		return cmd
	}
	if err := p.Publish(context.Background(), testEvent()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	if _, err := NewRedisPublisher(client, ""); err == nil {
		t.Fatalf("expected error without channel")
	}
}
