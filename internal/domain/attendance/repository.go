package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. Fetches return
// plain record slices; all derived state (day merge, monthly totals) is
// recomputed by the domain on every fetch.
type Repository interface {
	// Create inserts a new record and returns it with its assigned ID.
	Create(ctx context.Context, record Record) (Record, error)

	// Update replaces an existing record; ErrRecordNotFound if it is gone.
	Update(ctx context.Context, record Record) (Record, error)

	// Delete removes a record; ErrRecordNotFound if already deleted.
	Delete(ctx context.Context, id string) error

	// GetByID retrieves one record.
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByUserAndDate retrieves one worker's records on one calendar day.
	// Used by the validator's duplicate-paid-leave check and the day resolver.
	ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]Record, error)

	// ListByUserAndMonth retrieves all of one worker's records for a
	// calendar month, every partition included.
	ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]Record, error)

	// ListByDate retrieves every worker's records on one calendar day, for
	// the same-day bulk marking matrix.
	ListByDate(ctx context.Context, day time.Time) ([]Record, error)
}
