package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coinclub/coinclub-api/internal/models"
)

// GetProfile returns a member profile by user id.
func GetProfile(userID uuid.UUID) (*models.Profile, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var p models.Profile
	err := Pool.QueryRow(ctx, `
		SELECT id, full_name, phone, location, preferred_contact, role, updated_at
		FROM profiles
		WHERE id = $1
	`, userID).Scan(
		&p.ID,
		&p.FullName,
		&p.Phone,
		&p.Location,
		&p.PreferredContact,
		&p.Role,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return &p, nil
}

// GetProfileRole returns only the role column, for the admin gate.
func GetProfileRole(userID string) (string, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var role string
	err := Pool.QueryRow(ctx, `SELECT role FROM profiles WHERE id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("querying profile role: %w", err)
	}

	return role, nil
}

// UpsertProfile writes the member-editable profile fields and returns the
// stored row. The role column is never touched here.
func UpsertProfile(userID uuid.UUID, fullName, phone, location *string, preferredContact string) (*models.Profile, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var p models.Profile
	err := Pool.QueryRow(ctx, `
		INSERT INTO profiles (id, full_name, phone, location, preferred_contact)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET full_name = $2, phone = $3, location = $4, preferred_contact = $5, updated_at = NOW()
		RETURNING id, full_name, phone, location, preferred_contact, role, updated_at
	`, userID, fullName, phone, location, preferredContact).Scan(
		&p.ID,
		&p.FullName,
		&p.Phone,
		&p.Location,
		&p.PreferredContact,
		&p.Role,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting profile: %w", err)
	}

	return &p, nil
}
