package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

type PatientService struct {
	repo     patient.Repository
	auditSvc *AuditService
	col      *metrics.Collector
	log      *zap.Logger
}

func NewPatientService(repo patient.Repository, auditSvc *AuditService, col *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, auditSvc: auditSvc, col: col, log: log}
}

func (s *PatientService) Create(ctx context.Context, cmd *patient.CreatePatientCommand, meta RequestMeta) (*patient.Patient, error) {
	if err := validatePerson(cmd.FirstName, cmd.LastName, cmd.Age, cmd.Email); err != nil {
		return nil, err
	}

	p := &patient.Patient{
		Person: clinic.Person{
			FirstName: cmd.FirstName,
			LastName:  cmd.LastName,
			Age:       cmd.Age,
			Email:     cmd.Email,
		},
	}

	if err := s.repo.Save(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.col.PatientsCreatedTotal.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionCreate,
		ResourceType: "patient",
		ResourceKey:  fmt.Sprintf("%d", p.ID),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})

	return p, nil
}

func (s *PatientService) List(ctx context.Context) ([]*patient.Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *PatientService) Get(ctx context.Context, id int64) (*patient.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) Delete(ctx context.Context, id int64, meta RequestMeta) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDelete,
		ResourceType: "patient",
		ResourceKey:  fmt.Sprintf("%d", id),
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}

func (s *PatientService) DeleteAll(ctx context.Context, meta RequestMeta) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting patients: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDeleteAll,
		ResourceType: "patient",
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}
