package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-portal/internal/types"
)

// CreateUser inserts a new user account with a precomputed password hash.
func (db *DB) CreateUser(ctx context.Context, req *types.CreateUserRequest, passwordHash string) (*types.User, error) {
	var u types.User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, position)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, email, first_name, last_name, position, is_admin, created_at, updated_at`,
		req.Email, passwordHash, req.FirstName, req.LastName, req.Position,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Position, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

// GetUser retrieves a user profile by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	var u types.User
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, position, is_admin, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Position, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves a user and their password hash for login checks.
// Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, string, error) {
	var u types.User
	var hash string
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, position, is_admin, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &u.Position, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, hash, nil
}

// UpdateUser applies a partial profile update. Returns nil when not found.
func (db *DB) UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*types.User, error) {
	var u types.User
	err := db.pool.QueryRow(ctx,
		`UPDATE users SET
		   first_name = COALESCE($2, first_name),
		   last_name = COALESCE($3, last_name),
		   position = COALESCE($4, position),
		   updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, email, first_name, last_name, position, is_admin, created_at, updated_at`,
		userID, req.FirstName, req.LastName, req.Position,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Position, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}

// ListUsers retrieves all user profiles, newest first.
func (db *DB) ListUsers(ctx context.Context) ([]types.User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, email, first_name, last_name, position, is_admin, created_at, updated_at
		 FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Position, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// DeleteUser removes a user and all their CVs (via cascade).
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
