package project

import (
	"context"

	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/domain/user"
)

type ProjectServiceImpl struct {
	repo  project.Repository
	users user.Repository
}

func NewProjectService(repo project.Repository, users user.Repository) project.Service {
	return &ProjectServiceImpl{
		repo:  repo,
		users: users,
	}
}

// List implements project.Service.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return project.NewProjectResponses(projects), nil
}

// ListByUser implements project.Service.
func (s *ProjectServiceImpl) ListByUser(ctx context.Context, userID string) ([]project.ProjectResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return project.NewProjectResponses(projects), nil
}
