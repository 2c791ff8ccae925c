package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Mayank9336/TheVarches/internal/models"
)

// AdminByEmail looks up an admin user for login.
func (s *Store) AdminByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE email = ? AND role = 'admin'`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return u, nil
}

// UpsertAdmin creates the admin account or refreshes its password hash.
// Used by the setup command; email is the unique key.
func (s *Store) UpsertAdmin(ctx context.Context, username, email, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES (?, ?, ?, 'admin')
		ON DUPLICATE KEY UPDATE username = VALUES(username), password_hash = VALUES(password_hash)`,
		username, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to upsert admin user: %w", err)
	}
	return nil
}
