package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coinclub/coinclub-api/internal/models"
)

// InsertJoinRequest stores a membership application with status "pending".
func InsertJoinRequest(fullName, email string, message *string) error {
	ctx, cancel := GetContext()
	defer cancel()

	_, err := Pool.Exec(ctx, `
		INSERT INTO club_join_requests (full_name, email, message, status)
		VALUES ($1, $2, $3, 'pending')
	`, fullName, email, message)
	if err != nil {
		return fmt.Errorf("inserting join request: %w", err)
	}
	return nil
}

// ListJoinRequests returns applications, optionally filtered by status,
// newest first.
func ListJoinRequests(status string) ([]models.JoinRequest, error) {
	ctx, cancel := GetContext()
	defer cancel()

	query := `
		SELECT id, full_name, email, message, status, created_at
		FROM club_join_requests
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying join requests: %w", err)
	}
	defer rows.Close()

	requests := []models.JoinRequest{}
	for rows.Next() {
		var r models.JoinRequest
		if err := rows.Scan(&r.ID, &r.FullName, &r.Email, &r.Message, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning join request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading join requests: %w", err)
	}

	return requests, nil
}

// UpdateJoinRequestStatus moves an application to approved or rejected.
func UpdateJoinRequestStatus(id uuid.UUID, status string) (*models.JoinRequest, error) {
	ctx, cancel := GetContext()
	defer cancel()

	var r models.JoinRequest
	err := Pool.QueryRow(ctx, `
		UPDATE club_join_requests
		SET status = $1
		WHERE id = $2
		RETURNING id, full_name, email, message, status, created_at
	`, status, id).Scan(&r.ID, &r.FullName, &r.Email, &r.Message, &r.Status, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating join request: %w", err)
	}

	return &r, nil
}
