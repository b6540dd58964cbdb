package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

type AppointmentService struct {
	repo        appointment.Repository
	patientRepo patient.Repository
	doctorRepo  doctor.Repository
	auditSvc    *AuditService
	col         *metrics.Collector
	log         *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	auditSvc *AuditService,
	col *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		auditSvc:    auditSvc,
		col:         col,
		log:         log,
	}
}

// Schedule validates the request, verifies its references, and books the
// appointment. The overlap check against the room's existing appointments
// runs inside the repository so that concurrent requests for the same room
// cannot both commit.
func (s *AppointmentService) Schedule(ctx context.Context, cmd *appointment.CreateAppointmentCommand, meta RequestMeta) (*appointment.Appointment, error) {
	a := &appointment.Appointment{
		PatientID:  cmd.PatientID,
		DoctorID:   cmd.DoctorID,
		RoomName:   cmd.RoomName,
		StartsAt:   cmd.StartsAt,
		FinishesAt: cmd.FinishesAt,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.patientRepo.FindByID(ctx, a.PatientID); err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			return nil, appointment.ErrUnknownPatient
		}
		return nil, fmt.Errorf("verifying patient: %w", err)
	}
	if _, err := s.doctorRepo.FindByID(ctx, a.DoctorID); err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			return nil, appointment.ErrUnknownDoctor
		}
		return nil, fmt.Errorf("verifying doctor: %w", err)
	}

	if err := s.repo.Schedule(ctx, a); err != nil {
		if errors.Is(err, appointment.ErrAppointmentConflict) {
			s.col.SchedulingConflictsTotal.Inc()
			s.log.Info("appointment rejected: room already booked",
				zap.String("room", a.RoomName),
				zap.Time("starts_at", a.StartsAt),
				zap.Time("finishes_at", a.FinishesAt),
			)
			return nil, err
		}
		if errors.Is(err, appointment.ErrUnknownRoom) {
			return nil, err
		}
		s.log.Error("failed to schedule appointment", zap.Error(err))
		return nil, fmt.Errorf("scheduling appointment: %w", err)
	}

	s.col.AppointmentsScheduledTotal.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionCreate,
		ResourceType: "appointment",
		ResourceKey:  fmt.Sprintf("%d", a.ID),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})

	return a, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]*appointment.Appointment, error) {
	return s.repo.FindAll(ctx)
}

func (s *AppointmentService) Get(ctx context.Context, id int64) (*appointment.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByRoom returns the bookings of one room, the comparison set of the
// conflict check.
func (s *AppointmentService) ListByRoom(ctx context.Context, roomName string) ([]*appointment.Appointment, error) {
	return s.repo.ListByRoom(ctx, roomName)
}

func (s *AppointmentService) Delete(ctx context.Context, id int64, meta RequestMeta) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDelete,
		ResourceType: "appointment",
		ResourceKey:  fmt.Sprintf("%d", id),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}

func (s *AppointmentService) DeleteAll(ctx context.Context, meta RequestMeta) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting appointments: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDeleteAll,
		ResourceType: "appointment",
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}
