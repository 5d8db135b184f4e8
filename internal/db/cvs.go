package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-portal/internal/types"
)

// CreateCV inserts a new CV for a user and returns the full record.
func (db *DB) CreateCV(ctx context.Context, userID uuid.UUID, req *types.CreateCVRequest) (*types.CV, error) {
	var cv types.CV
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cvs (user_id, name, description, education)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, name, description, education, created_at, updated_at`,
		userID, req.Name, req.Description, req.Education,
	).Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.Description, &cv.Education, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return &cv, nil
}

// GetCV retrieves a CV with its skills, languages and projects. The three
// child collections are loaded concurrently. Returns nil when not found.
func (db *DB) GetCV(ctx context.Context, cvID uuid.UUID) (*types.CV, error) {
	var cv types.CV
	err := db.pool.QueryRow(ctx,
		`SELECT c.id, c.user_id, c.name, c.description, c.education, c.created_at, c.updated_at,
		        COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.position, '')
		 FROM cvs c
		 LEFT JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`,
		cvID,
	).Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.Description, &cv.Education, &cv.CreatedAt, &cv.UpdatedAt,
		&cv.Profile.FirstName, &cv.Profile.LastName, &cv.Profile.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := db.ListSkills(gCtx, cvID)
		if err != nil {
			return err
		}
		cv.Skills = skills
		return nil
	})
	g.Go(func() error {
		languages, err := db.ListLanguages(gCtx, cvID)
		if err != nil {
			return err
		}
		cv.Languages = languages
		return nil
	})
	g.Go(func() error {
		projects, err := db.ListProjects(gCtx, cvID)
		if err != nil {
			return err
		}
		cv.Projects = projects
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &cv, nil
}

// ListCVs retrieves the CVs belonging to a user, newest first. Child
// collections are not loaded.
func (db *DB) ListCVs(ctx context.Context, userID uuid.UUID) ([]types.CV, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, description, education, created_at, updated_at
		 FROM cvs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	var cvs []types.CV
	for rows.Next() {
		var cv types.CV
		if err := rows.Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.Description, &cv.Education, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cv: %w", err)
		}
		cvs = append(cvs, cv)
	}
	return cvs, nil
}

// UpdateCV applies a partial update of the CV's free-text fields. Returns the
// updated record, or nil when the CV does not exist.
func (db *DB) UpdateCV(ctx context.Context, cvID uuid.UUID, req *types.UpdateCVRequest) (*types.CV, error) {
	var cv types.CV
	err := db.pool.QueryRow(ctx,
		`UPDATE cvs SET
		   name = COALESCE($2, name),
		   description = COALESCE($3, description),
		   education = COALESCE($4, education),
		   updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, user_id, name, description, education, created_at, updated_at`,
		cvID, req.Name, req.Description, req.Education,
	).Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.Description, &cv.Education, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update cv: %w", err)
	}
	return &cv, nil
}

// DeleteCV deletes a CV and all its child records (via cascade).
func (db *DB) DeleteCV(ctx context.Context, cvID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, cvID)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", cvID)
	}
	return nil
}
