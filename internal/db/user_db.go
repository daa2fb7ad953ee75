package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// User is a club account. PasswordHash never leaves this package.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// ErrEmailTaken is returned when registering with an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")

// CreateUser inserts a user together with its empty profile row in one
// transaction, so every account always has a profile to hang a role on.
func CreateUser(email, passwordHash, fullName string) (*User, error) {
	ctx, cancel := GetContext()
	defer cancel()

	tx, err := Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	var user User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, last_login_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, email, password_hash, created_at, updated_at, last_login_at
	`, email, passwordHash).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO profiles (id, full_name, role)
		VALUES ($1, NULLIF($2, ''), 'member')
	`, user.ID, fullName)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &user, nil
}

// GetUserByEmail returns the account for a login attempt.
func GetUserByEmail(email string) (*User, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var user User
	err := Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at, updated_at, last_login_at
		FROM users
		WHERE email = $1
	`, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &user, nil
}

// TouchLastLogin records a successful login.
func TouchLastLogin(userID uuid.UUID) error {
	ctx, cancel := GetContext()
	defer cancel()

	_, err := Pool.Exec(ctx, `
		UPDATE users
		SET last_login_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}
