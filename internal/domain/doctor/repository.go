package doctor

import "context"

type Repository interface {
	// FindAll returns every doctor on record.
	FindAll(ctx context.Context) ([]*Doctor, error)

	// FindByID returns ErrDoctorNotFound when no doctor has the given id.
	FindByID(ctx context.Context, id int64) (*Doctor, error)

	// Save persists a new doctor and assigns its id.
	Save(ctx context.Context, d *Doctor) error

	// DeleteByID returns ErrDoctorNotFound when no doctor has the given id.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every doctor. Succeeds on an empty collection.
	DeleteAll(ctx context.Context) error
}
