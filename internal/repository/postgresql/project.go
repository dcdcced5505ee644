package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepository{db: db}
}

// GetByID implements project.Repository.
func (p *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, client, active, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var proj project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&proj.ID, &proj.Name, &proj.Client, &proj.Active, &proj.CreatedAt, &proj.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List implements project.Repository.
func (p *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, name, client, active, created_at, updated_at
		FROM projects
		WHERE active
		ORDER BY name
	`
	return p.collect(ctx, query)
}

// ListByUser implements project.Repository.
func (p *projectRepository) ListByUser(ctx context.Context, userID string) ([]project.Project, error) {
	query := `
		SELECT p.id, p.name, p.client, p.active, p.created_at, p.updated_at
		FROM projects p
		INNER JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = $1 AND p.active
		ORDER BY p.name
	`
	return p.collect(ctx, query, userID)
}

func (p *projectRepository) collect(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(
			&proj.ID, &proj.Name, &proj.Client, &proj.Active, &proj.CreatedAt, &proj.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}
