package project

import "context"

type Service interface {
	List(ctx context.Context) ([]ProjectResponse, error)

	// ListByUser returns the projects a worker is assigned to.
	ListByUser(ctx context.Context, userID string) ([]ProjectResponse, error)
}
