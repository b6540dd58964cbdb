package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
)

type AuditStore struct {
	db *gorm.DB
}

func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) Create(ctx context.Context, entry *clinic.AuditLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	return nil
}
