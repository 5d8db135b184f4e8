package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/types"
)

// UpsertLanguage adds a language to a CV or updates its proficiency.
func (db *DB) UpsertLanguage(ctx context.Context, cvID uuid.UUID, req *types.UpsertLanguageRequest) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO cv_languages (cv_id, name, proficiency)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (cv_id, name) DO UPDATE SET proficiency = $3`,
		cvID, req.Name, req.Proficiency,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert language %s: %w", req.Name, err)
	}
	return nil
}

// ListLanguages retrieves the languages on a CV.
func (db *DB) ListLanguages(ctx context.Context, cvID uuid.UUID) ([]types.LanguageProficiency, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, proficiency FROM cv_languages WHERE cv_id = $1 ORDER BY name`,
		cvID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	defer rows.Close()

	var languages []types.LanguageProficiency
	for rows.Next() {
		var l types.LanguageProficiency
		if err := rows.Scan(&l.Name, &l.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}
	return languages, nil
}

// DeleteLanguage removes a language from a CV by name.
func (db *DB) DeleteLanguage(ctx context.Context, cvID uuid.UUID, name string) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cv_languages WHERE cv_id = $1 AND name = $2`, cvID, name)
	if err != nil {
		return fmt.Errorf("failed to delete language %s: %w", name, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("language not found: %s", name)
	}
	return nil
}
