package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"medislot/internal/config"
	"medislot/internal/domain"
	medislotv1 "medislot/internal/gen/proto/medislot/v1"
	"medislot/internal/locking"
	"medislot/internal/metrics"
	"medislot/internal/notify"
	"medislot/internal/service/appointments"
	"medislot/internal/store"
	"medislot/internal/store/memory"
	"medislot/internal/store/postgres"
	"medislot/internal/telemetry"
	grpcTransport "medislot/internal/transport/grpc"
	httpTransport "medislot/internal/transport/http"
)

const serviceName = "medislot-server"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.Error("server exited with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	log.Info("starting",
		slog.String("grpc_addr", cfg.GRPCAddr()),
		slog.String("http_addr", cfg.HTTPAddr),
		slog.String("log_level", cfg.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("lock_backend", cfg.Lock.Backend),
		slog.String("notify_backend", cfg.Notify.Backend),
	)

	tp, shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: serviceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("tracing shutdown failed", slog.Any("err", err))
		}
	}()

	collector := metrics.NewCollector("medislot")
	var readyChecks []httpTransport.ReadyCheck

	var (
		st      store.AppointmentStore
		lockOpt appointments.Option
	)
	switch cfg.Database.Driver {
	case "memory":
		log.Warn("using in-memory appointment store; data is lost on restart")
		st = memory.NewAppointmentStore()
	default:
		log.Info("connecting to database", databaseLogArgs(cfg.Database.URL)...)
		db, err := postgres.Open(cfg.Database.URL, postgres.PoolConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		})
		if err != nil {
			args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.Database.URL)...)
			log.Error("database connection failed", args...)
			return err
		}
		defer func() {
			if err := postgres.Close(db); err != nil {
				log.Warn("database close failed", slog.Any("err", err))
			}
		}()

		if cfg.Database.AutoMigrate {
			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				return err
			}
			log.Info("database migrations applied", slog.Any("migrations", applied))
		}

		st = postgres.NewAppointmentRepo(db)
		readyChecks = append(readyChecks, httpTransport.ReadyCheck{Name: "database", Check: postgres.ReadyCheck(db)})
		if cfg.Lock.Backend == "postgres" {
			lockOpt = appointments.WithScopedLocker(postgres.NewTxLocker(db))
		}
	}

	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn("redis close failed", slog.Any("err", err))
			}
		}()
		readyChecks = append(readyChecks, httpTransport.ReadyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	switch cfg.Lock.Backend {
	case "redis":
		lockOpt = appointments.WithLocker(locking.NewRedis(rdb,
			locking.WithLeaseTTL(cfg.Lock.TTL),
			locking.WithRetryInterval(cfg.Lock.RetryInterval),
			locking.WithLogger(log),
		))
	case "local":
		lockOpt = appointments.WithLocker(locking.NewLocal())
	}

	opts := []appointments.Option{
		lockOpt,
		appointments.WithMetrics(collector),
		appointments.WithTracerProvider(tp),
		appointments.WithLogger(log),
		appointments.WithUpcomingWindow(cfg.Scheduling.UpcomingWindow),
		appointments.WithContactAddress(cfg.Notify.ContactAddress),
	}
	if cfg.Scheduling.StrictTransitions {
		opts = append(opts, appointments.WithPolicy(domain.StrictPolicy{}))
	}

	var dispatcher *notify.Dispatcher
	if cfg.Notify.Backend != "none" {
		pub, check, err := newPublisher(cfg, rdb, log)
		if err != nil {
			return err
		}
		if check != nil {
			readyChecks = append(readyChecks, *check)
		}
		breaker := notify.NewBreakerPublisher(pub, notify.BreakerConfig{
			MaxFailures: cfg.Notify.BreakerMaxFailures,
			OpenTimeout: cfg.Notify.BreakerOpenTimeout,
		}, log)
		dispatcher = notify.NewDispatcher(breaker, notify.DispatcherConfig{
			QueueSize: cfg.Notify.QueueSize,
			Workers:   cfg.Notify.Workers,
			Timeout:   cfg.Notify.Timeout,
		}, log, collector)
		opts = append(opts, appointments.WithNotifier(dispatcher))
	}

	svc := appointments.NewService(st, opts...)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler(otelgrpc.WithTracerProvider(tp))),
		grpc.UnaryInterceptor(defaultRequestTimeoutInterceptor(cfg.GRPCRequestTimeout)),
	)
	medislotv1.RegisterAppointmentsServiceServer(grpcServer, grpcTransport.NewAppointmentsServer(svc, log))
	healthServer := health.NewServer()
	healthServer.SetServingStatus(medislotv1.AppointmentsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	var handler http.Handler = httpTransport.NewRouter(httpTransport.RouterConfig{
		Appointments:   svc,
		Logger:         log,
		Metrics:        collector,
		MetricsHandler: collector.Handler(),
		ReadyChecks:    readyChecks,
	})
	handler = otelhttp.NewHandler(handler, "medislot", otelhttp.WithTracerProvider(tp))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("servers started", slog.String("grpc_addr", cfg.GRPCAddr()), slog.String("http_addr", cfg.HTTPAddr))

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("server stopped with error", slog.Any("err", err))
			serveErr = err
		}
	}

	healthServer.Shutdown()
	shutdown(log, grpcServer, httpServer, cfg.ShutdownTimeout)

	if dispatcher != nil {
		// Runs after the servers stop so no booking can enqueue behind the drain.
		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := dispatcher.Shutdown(drainCtx); err != nil {
			log.Warn("notification dispatcher shutdown incomplete", slog.Any("err", err))
		}
	}
	return serveErr
}

func newPublisher(cfg config.Config, rdb *redis.Client, log *slog.Logger) (notify.Publisher, *httpTransport.ReadyCheck, error) {
	switch cfg.Notify.Backend {
	case "kafka":
		brokers := notify.SplitBrokers(cfg.Notify.KafkaBrokers)
		pub, err := notify.NewKafkaPublisher(brokers, cfg.Notify.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return pub, &httpTransport.ReadyCheck{Name: "kafka", Check: notify.KafkaReadyCheck(brokers)}, nil
	case "redis":
		pub, err := notify.NewRedisPublisher(rdb, cfg.Notify.RedisChannel)
		if err != nil {
			return nil, nil, err
		}
		return pub, nil, nil
	default:
		return notify.NewLogPublisher(log), nil, nil
	}
}

func defaultRequestTimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}

func shutdown(log *slog.Logger, s *grpc.Server, hs *http.Server, timeout time.Duration) {
	log.Info("shutting down servers", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := hs.Shutdown(ctx); err != nil {
		log.Warn("http graceful shutdown failed", slog.Any("err", err))
		_ = hs.Close()
	} else {
		log.Info("http server stopped")
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-ctx.Done():
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
