package project

import "context"

// Repository is the project directory consumed by the attendance flows.
type Repository interface {
	// GetByID retrieves one project; ErrProjectNotFound if unknown.
	GetByID(ctx context.Context, id string) (Project, error)

	// List retrieves all active projects.
	List(ctx context.Context) ([]Project, error)

	// ListByUser retrieves the projects a worker is assigned to. Returns an
	// empty slice, not an error, when none are assigned.
	ListByUser(ctx context.Context, userID string) ([]Project, error)
}
