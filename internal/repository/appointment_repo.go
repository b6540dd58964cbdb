package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/room"
)

type AppointmentStore struct {
	lifecycle[appointment.Appointment, int64]
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{newLifecycle[appointment.Appointment, int64](db, "id", appointment.ErrAppointmentNotFound)}
}

func (s *AppointmentStore) FindByID(ctx context.Context, id int64) (*appointment.Appointment, error) {
	return s.FindByKey(ctx, id)
}

func (s *AppointmentStore) DeleteByID(ctx context.Context, id int64) error {
	return s.DeleteByKey(ctx, id)
}

func (s *AppointmentStore) ListByRoom(ctx context.Context, roomName string) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	err := s.db.WithContext(ctx).
		Where("room_name = ?", roomName).
		Order("starts_at").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing room appointments: %w", err)
	}
	return out, nil
}

// Schedule runs the check-then-insert sequence in a transaction that locks
// the room row, so two concurrent requests for the same room cannot both
// pass the overlap check.
func (s *AppointmentStore) Schedule(ctx context.Context, a *appointment.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rm room.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rm, "room_name = ?", a.RoomName).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appointment.ErrUnknownRoom
			}
			return fmt.Errorf("locking room %q: %w", a.RoomName, err)
		}

		var existing []*appointment.Appointment
		if err := tx.Where("room_name = ?", a.RoomName).Find(&existing).Error; err != nil {
			return fmt.Errorf("fetching room appointments: %w", err)
		}

		if conflict := appointment.FindConflict(a, existing); conflict != nil {
			return appointment.ErrAppointmentConflict
		}

		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("inserting appointment: %w", err)
		}
		return nil
	})
}
