package appointment

import "context"

// Repository is the remote appointments API.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)

	// Create submits d and returns the stored appointment with its id.
	Create(ctx context.Context, d Draft) (*Appointment, error)

	Delete(ctx context.Context, id int64) error
}
