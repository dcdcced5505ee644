package user

import "context"

type Service interface {
	List(ctx context.Context) ([]UserResponse, error)
}
