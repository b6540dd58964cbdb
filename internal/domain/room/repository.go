package room

import "context"

type Repository interface {
	// FindAll returns every room on record.
	FindAll(ctx context.Context) ([]*Room, error)

	// FindByName returns ErrRoomNotFound when no room has the given name.
	FindByName(ctx context.Context, name string) (*Room, error)

	// Save persists a new room. Returns ErrRoomAlreadyExists on a duplicate
	// name; uniqueness is enforced by the store, not the domain.
	Save(ctx context.Context, r *Room) error

	// DeleteByName returns ErrRoomNotFound when no room has the given name.
	DeleteByName(ctx context.Context, name string) error

	// DeleteAll removes every room. Succeeds on an empty collection.
	DeleteAll(ctx context.Context) error
}
