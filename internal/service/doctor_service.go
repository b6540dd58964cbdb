package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

// RequestMeta carries request-scoped context for the audit trail.
type RequestMeta struct {
	RequestID string
	IPAddress string
}

type DoctorService struct {
	repo     doctor.Repository
	auditSvc *AuditService
	col      *metrics.Collector
	log      *zap.Logger
}

func NewDoctorService(repo doctor.Repository, auditSvc *AuditService, col *metrics.Collector, log *zap.Logger) *DoctorService {
	return &DoctorService{repo: repo, auditSvc: auditSvc, col: col, log: log}
}

func (s *DoctorService) Create(ctx context.Context, cmd *doctor.CreateDoctorCommand, meta RequestMeta) (*doctor.Doctor, error) {
	if err := validatePerson(cmd.FirstName, cmd.LastName, cmd.Age, cmd.Email); err != nil {
		return nil, err
	}

	d := &doctor.Doctor{
		Person: clinic.Person{
			FirstName: cmd.FirstName,
			LastName:  cmd.LastName,
			Age:       cmd.Age,
			Email:     cmd.Email,
		},
	}

	if err := s.repo.Save(ctx, d); err != nil {
		s.log.Error("failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("creating doctor: %w", err)
	}

	s.col.DoctorsCreatedTotal.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionCreate,
		ResourceType: "doctor",
		ResourceKey:  fmt.Sprintf("%d", d.ID),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})

	return d, nil
}

func (s *DoctorService) List(ctx context.Context) ([]*doctor.Doctor, error) {
	return s.repo.FindAll(ctx)
}

func (s *DoctorService) Get(ctx context.Context, id int64) (*doctor.Doctor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DoctorService) Delete(ctx context.Context, id int64, meta RequestMeta) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDelete,
		ResourceType: "doctor",
		ResourceKey:  fmt.Sprintf("%d", id),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}

// DeleteAll removes every doctor and succeeds even when none exist.
func (s *DoctorService) DeleteAll(ctx context.Context, meta RequestMeta) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting doctors: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDeleteAll,
		ResourceType: "doctor",
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}
