package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	medislotv1 "medislot/internal/gen/proto/medislot/v1"
	"medislot/internal/service/appointments"
	"medislot/internal/store/memory"
)

func startBufconnServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	medislotv1.RegisterAppointmentsServiceServer(srv, NewAppointmentsServer(appointments.NewService(memory.NewAppointmentStore()), log))
	hs := health.NewServer()
	hs.SetServingStatus(medislotv1.AppointmentsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestAppointmentsService_RoundTrip(t *testing.T) {
	conn := startBufconnServer(t)
	client := medislotv1.NewAppointmentsServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now().UTC().Add(time.Hour).Truncate(time.Minute)
	booked, err := client.BookAppointment(ctx, &medislotv1.BookAppointmentRequest{PatientId: "p1", DoctorId: "d1", StartTime: timestamppb.New(start)})
	if err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if booked.Appointment.DurationMinutes != 30 || !booked.Appointment.StartTime.AsTime().Equal(start) {
		t.Fatalf("booked = %+v", booked.Appointment)
	}

	_, err = client.BookAppointment(ctx, &medislotv1.BookAppointmentRequest{PatientId: "p2", DoctorId: "d1", StartTime: timestamppb.New(start.Add(10 * time.Minute))})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("overlap code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}

	_, err = client.BookAppointment(ctx, &medislotv1.BookAppointmentRequest{PatientId: "p3", DoctorId: "d2", StartTime: timestamppb.New(start), DurationMinutes: proto.Int32(0)})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("zero duration code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}

	later := start.Add(2 * time.Hour)
	moved, err := client.RescheduleAppointment(ctx, &medislotv1.RescheduleAppointmentRequest{AppointmentId: booked.Appointment.Id, NewStartTime: timestamppb.New(later)})
	if err != nil {
		t.Fatalf("RescheduleAppointment error: %v", err)
	}
	if !moved.Appointment.StartTime.AsTime().Equal(later) {
		t.Fatalf("moved start = %v, want %v", moved.Appointment.StartTime.AsTime(), later)
	}

	noted, err := client.UpdateAppointmentNotes(ctx, &medislotv1.UpdateAppointmentNotesRequest{AppointmentId: booked.Appointment.Id, Notes: "fasting"})
	if err != nil {
		t.Fatalf("UpdateAppointmentNotes error: %v", err)
	}
	if noted.Appointment.Notes != "fasting" {
		t.Fatalf("notes = %q, want %q", noted.Appointment.Notes, "fasting")
	}

	ranged, err := client.ListAppointments(ctx, &medislotv1.ListAppointmentsRequest{
		StartFrom: timestamppb.New(later.Add(-time.Minute)),
		StartTo:   timestamppb.New(later.Add(time.Minute)),
	})
	if err != nil {
		t.Fatalf("ListAppointments range error: %v", err)
	}
	if len(ranged.Appointments) != 1 || ranged.Appointments[0].Id != booked.Appointment.Id {
		t.Fatalf("ranged = %+v, want the moved appointment", ranged.Appointments)
	}

	if _, err := client.UpdateAppointmentStatus(ctx, &medislotv1.UpdateAppointmentStatusRequest{AppointmentId: booked.Appointment.Id, Status: "confirmed"}); err != nil {
		t.Fatalf("UpdateAppointmentStatus error: %v", err)
	}
	if _, err := client.CancelAppointment(ctx, &medislotv1.CancelAppointmentRequest{AppointmentId: booked.Appointment.Id}); err != nil {
		t.Fatalf("CancelAppointment error: %v", err)
	}

	got, err := client.GetAppointment(ctx, &medislotv1.GetAppointmentRequest{AppointmentId: booked.Appointment.Id})
	if err != nil {
		t.Fatalf("GetAppointment error: %v", err)
	}
	if got.Appointment.Status != "CANCELLED" {
		t.Fatalf("status = %s, want CANCELLED", got.Appointment.Status)
	}

	upcoming, err := client.ListAppointments(ctx, &medislotv1.ListAppointmentsRequest{Upcoming: true})
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(upcoming.Appointments) != 1 {
		t.Fatalf("upcoming = %d, want 1", len(upcoming.Appointments))
	}

	_, err = client.GetAppointment(ctx, &medislotv1.GetAppointmentRequest{AppointmentId: "00000000-0000-0000-0000-000000000099"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("missing code = %s, want %s", status.Code(err), codes.NotFound)
	}

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: medislotv1.AppointmentsService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("health Check error: %v", err)
	}
	if hc.Status != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health = %s, want SERVING", hc.Status)
	}
}
