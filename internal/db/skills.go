package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/types"
)

// UpsertSkill adds a skill to a CV or updates its mastery/category when the
// skill name already exists on that CV.
func (db *DB) UpsertSkill(ctx context.Context, cvID uuid.UUID, req *types.UpsertSkillRequest) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO cv_skills (cv_id, name, mastery, category_id)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (cv_id, name) DO UPDATE SET mastery = $3, category_id = $4`,
		cvID, req.Name, req.Mastery, req.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill %s: %w", req.Name, err)
	}
	return nil
}

// ListSkills retrieves the skills on a CV.
func (db *DB) ListSkills(ctx context.Context, cvID uuid.UUID) ([]types.SkillMastery, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, mastery, category_id FROM cv_skills WHERE cv_id = $1 ORDER BY name`,
		cvID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.SkillMastery
	for rows.Next() {
		var s types.SkillMastery
		if err := rows.Scan(&s.Name, &s.Mastery, &s.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// DeleteSkill removes a skill from a CV by name.
func (db *DB) DeleteSkill(ctx context.Context, cvID uuid.UUID, name string) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cv_skills WHERE cv_id = $1 AND name = $2`, cvID, name)
	if err != nil {
		return fmt.Errorf("failed to delete skill %s: %w", name, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", name)
	}
	return nil
}

// CreateCategory creates a skill category. ParentID nests it one level under
// an existing top-level category.
func (db *DB) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*types.SkillCategory, error) {
	var c types.SkillCategory
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skill_categories (name, parent_id)
		 VALUES ($1, $2)
		 RETURNING id, name, parent_id`,
		req.Name, req.ParentID,
	).Scan(&c.ID, &c.Name, &c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

// ListCategories retrieves all skill categories.
func (db *DB) ListCategories(ctx context.Context) ([]types.SkillCategory, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, parent_id FROM skill_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []types.SkillCategory
	for rows.Next() {
		var c types.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// DeleteCategory removes a category. Skills referencing it keep a dangling id
// cleared to NULL by the schema, and children become top-level.
func (db *DB) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %s", id)
	}
	return nil
}
