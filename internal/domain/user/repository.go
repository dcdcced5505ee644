package user

import "context"

// Repository is the worker directory consumed by the attendance flows.
type Repository interface {
	// GetByID retrieves one worker; ErrUserNotFound if unknown.
	GetByID(ctx context.Context, id string) (User, error)

	// List retrieves all active workers, ordered by name.
	List(ctx context.Context) ([]User, error)
}
