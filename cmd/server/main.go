package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/config"
	v1 "github.com/clinicdesk/clinicdesk/internal/handler/v1"
	"github.com/clinicdesk/clinicdesk/internal/middleware"
	"github.com/clinicdesk/clinicdesk/internal/repository"
	"github.com/clinicdesk/clinicdesk/internal/service"
	"github.com/clinicdesk/clinicdesk/pkg/database"
	"github.com/clinicdesk/clinicdesk/pkg/logger"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
	"github.com/clinicdesk/clinicdesk/pkg/tracer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		zlog.Fatal("initializing tracer", zap.Error(err))
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("connecting to database", zap.Error(err))
	}
	if err := database.Migrate(db, zlog); err != nil {
		zlog.Fatal("migrating database", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	col := metrics.New(reg, "clinicdesk")

	doctorStore := repository.NewDoctorStore(db)
	patientStore := repository.NewPatientStore(db)
	roomStore := repository.NewRoomStore(db)
	appointmentStore := repository.NewAppointmentStore(db)

	auditSvc := service.NewAuditService(repository.NewAuditStore(db), zlog, col)
	doctorSvc := service.NewDoctorService(doctorStore, auditSvc, col, zlog)
	patientSvc := service.NewPatientService(patientStore, auditSvc, col, zlog)
	roomSvc := service.NewRoomService(roomStore, auditSvc, col, zlog)
	appointmentSvc := service.NewAppointmentService(appointmentStore, patientStore, doctorStore, auditSvc, col, zlog)

	router := v1.NewRouter(v1.RouterDeps{
		Log:          zlog,
		Collector:    col,
		Registry:     reg,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
		Doctors:      v1.NewDoctorHandler(doctorSvc),
		Patients:     v1.NewPatientHandler(patientSvc),
		Rooms:        v1.NewRoomHandler(roomSvc),
		Appointments: v1.NewAppointmentHandler(appointmentSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Info("server listening",
			zap.String("addr", cfg.Server.Address()),
			zap.String("environment", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("http server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	auditSvc.Shutdown()
	if err := tp.Shutdown(shutdownCtx); err != nil {
		zlog.Error("tracer shutdown", zap.Error(err))
	}
}
