package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-portal/internal/types"
)

// CreateProject assigns a project to a CV and returns the stored record.
func (db *DB) CreateProject(ctx context.Context, cvID uuid.UUID, req *types.CreateProjectRequest) (*types.CVProject, error) {
	var p types.CVProject
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cv_projects (cv_id, name, description, domain, start_date, end_date, responsibilities, environment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, name, description, domain, start_date, end_date, responsibilities, environment`,
		cvID, req.Name, req.Description, req.Domain, req.StartDate, req.EndDate,
		req.Responsibilities, req.Environment,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Domain, &p.StartDate, &p.EndDate, &p.Responsibilities, &p.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

// ListProjects retrieves the projects on a CV, most recent start first.
func (db *DB) ListProjects(ctx context.Context, cvID uuid.UUID) ([]types.CVProject, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, description, domain, start_date, end_date, responsibilities, environment
		 FROM cv_projects WHERE cv_id = $1 ORDER BY start_date DESC`,
		cvID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.CVProject
	for rows.Next() {
		var p types.CVProject
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Domain, &p.StartDate, &p.EndDate, &p.Responsibilities, &p.Environment); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// UpdateProject applies a partial update to a project assignment. Slice
// fields replace the stored value only when non-nil. Returns nil when the
// project does not exist.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, req *types.UpdateProjectRequest) (*types.CVProject, error) {
	var p types.CVProject
	err := db.pool.QueryRow(ctx,
		`UPDATE cv_projects SET
		   name = COALESCE($2, name),
		   description = COALESCE($3, description),
		   domain = COALESCE($4, domain),
		   start_date = COALESCE($5, start_date),
		   end_date = COALESCE($6, end_date),
		   responsibilities = COALESCE($7, responsibilities),
		   environment = COALESCE($8, environment)
		 WHERE id = $1
		 RETURNING id, name, description, domain, start_date, end_date, responsibilities, environment`,
		projectID, req.Name, req.Description, req.Domain, req.StartDate, req.EndDate,
		req.Responsibilities, req.Environment,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Domain, &p.StartDate, &p.EndDate, &p.Responsibilities, &p.Environment)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &p, nil
}

// DeleteProject removes a project assignment from a CV.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cv_projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}
