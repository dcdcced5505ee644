package user

import (
	"context"

	"github.com/fieldops/presence-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &UserServiceImpl{repo: repo}
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	workers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return user.NewUserResponses(workers), nil
}
