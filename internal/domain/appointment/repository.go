package appointment

import "context"

type Repository interface {
	// FindAll returns every appointment on record.
	FindAll(ctx context.Context) ([]*Appointment, error)

	// FindByID returns ErrAppointmentNotFound when no appointment has the
	// given id.
	FindByID(ctx context.Context, id int64) (*Appointment, error)

	// ListByRoom returns the appointments booked in the named room.
	ListByRoom(ctx context.Context, roomName string) ([]*Appointment, error)

	// Schedule atomically checks the candidate against the appointments of
	// its room and persists it. Concurrent schedule calls for the same room
	// are serialized by the store. Returns ErrAppointmentConflict when the
	// interval overlaps an existing appointment and ErrUnknownRoom when the
	// room does not exist.
	Schedule(ctx context.Context, a *Appointment) error

	// DeleteByID returns ErrAppointmentNotFound when no appointment has the
	// given id.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every appointment. Succeeds on an empty collection.
	DeleteAll(ctx context.Context) error
}
