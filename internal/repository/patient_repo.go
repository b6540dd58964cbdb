package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

type PatientStore struct {
	lifecycle[patient.Patient, int64]
}

func NewPatientStore(db *gorm.DB) *PatientStore {
	return &PatientStore{newLifecycle[patient.Patient, int64](db, "id", patient.ErrPatientNotFound)}
}

func (s *PatientStore) FindByID(ctx context.Context, id int64) (*patient.Patient, error) {
	return s.FindByKey(ctx, id)
}

func (s *PatientStore) DeleteByID(ctx context.Context, id int64) error {
	return s.DeleteByKey(ctx, id)
}
