package patient

import "context"

type Repository interface {
	// FindAll returns every patient on record.
	FindAll(ctx context.Context) ([]*Patient, error)

	// FindByID returns ErrPatientNotFound when no patient has the given id.
	FindByID(ctx context.Context, id int64) (*Patient, error)

	// Save persists a new patient and assigns its id.
	Save(ctx context.Context, p *Patient) error

	// DeleteByID returns ErrPatientNotFound when no patient has the given id.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every patient. Succeeds on an empty collection.
	DeleteAll(ctx context.Context) error
}
