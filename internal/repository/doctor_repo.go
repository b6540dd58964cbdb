package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
)

type DoctorStore struct {
	lifecycle[doctor.Doctor, int64]
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{newLifecycle[doctor.Doctor, int64](db, "id", doctor.ErrDoctorNotFound)}
}

func (s *DoctorStore) FindByID(ctx context.Context, id int64) (*doctor.Doctor, error) {
	return s.FindByKey(ctx, id)
}

func (s *DoctorStore) DeleteByID(ctx context.Context, id int64) error {
	return s.DeleteByKey(ctx, id)
}
