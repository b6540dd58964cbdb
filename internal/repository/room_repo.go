package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinicdesk/internal/domain/room"
)

type RoomStore struct {
	lifecycle[room.Room, string]
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{newLifecycle[room.Room, string](db, "room_name", room.ErrRoomNotFound)}
}

// Save maps the primary-key violation on room_name to ErrRoomAlreadyExists.
func (s *RoomStore) Save(ctx context.Context, r *room.Room) error {
	err := s.lifecycle.Save(ctx, r)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return room.ErrRoomAlreadyExists
	}
	return err
}

func (s *RoomStore) FindByName(ctx context.Context, name string) (*room.Room, error) {
	return s.FindByKey(ctx, name)
}

func (s *RoomStore) DeleteByName(ctx context.Context, name string) error {
	return s.DeleteByKey(ctx, name)
}
