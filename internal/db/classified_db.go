package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coinclub/coinclub-api/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("record not found")

const classifiedColumns = "id, user_id, title, description, price, category, status, contact_email, photo_url, created_at, updated_at"

// classifiedUpdateColumns fixes the order in which partial-update fields are
// rendered into SQL, so the same field set always produces the same statement.
var classifiedUpdateColumns = []string{
	"title", "description", "price", "category", "status", "contact_email", "photo_url",
}

// ClassifiedStore is the Postgres-backed store for classified ads.
type ClassifiedStore struct{}

// NewClassifiedStore creates a new ClassifiedStore.
func NewClassifiedStore() *ClassifiedStore {
	return &ClassifiedStore{}
}

// buildListQuery renders a filter into a parameterized SELECT. User input
// only ever appears as bind arguments, never inside the SQL text.
func buildListQuery(f models.ClassifiedFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if q := strings.TrimSpace(f.Query); q != "" {
		// Commas are folded to spaces before building the match pattern; the
		// search form treats them as word separators.
		q = strings.ReplaceAll(q, ",", " ")
		args = append(args, "%"+q+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}

	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := "SELECT " + classifiedColumns + " FROM classifieds"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch f.Sort {
	case "price_asc":
		query += " ORDER BY price ASC"
	case "price_desc":
		query += " ORDER BY price DESC"
	default: // newest
		query += " ORDER BY created_at DESC"
	}

	return query, args
}

// List returns classifieds matching the filter. The operation is read-only.
func (s *ClassifiedStore) List(ctx context.Context, f models.ClassifiedFilter) ([]models.Classified, error) {
	query, args := buildListQuery(f)

	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying classifieds: %w", err)
	}
	defer rows.Close()

	return collectClassifieds(rows)
}

// ListByUser returns a member's own classifieds, newest first.
func (s *ClassifiedStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Classified, error) {
	rows, err := Pool.Query(ctx, `
		SELECT `+classifiedColumns+`
		FROM classifieds
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying user classifieds: %w", err)
	}
	defer rows.Close()

	return collectClassifieds(rows)
}

// Get returns a single classified by id.
func (s *ClassifiedStore) Get(ctx context.Context, id uuid.UUID) (*models.Classified, error) {
	row := Pool.QueryRow(ctx, `
		SELECT `+classifiedColumns+`
		FROM classifieds
		WHERE id = $1
	`, id)

	return scanClassified(row)
}

// Insert stores a new classified and returns the row as stored, with the
// server-assigned id and timestamps.
func (s *ClassifiedStore) Insert(ctx context.Context, c *models.Classified) (*models.Classified, error) {
	row := Pool.QueryRow(ctx, `
		INSERT INTO classifieds (user_id, title, description, price, category, status, contact_email, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+classifiedColumns, c.UserID, c.Title, c.Description, c.Price, c.Category, c.Status, c.ContactEmail, c.PhotoURL)

	return scanClassified(row)
}

// Update applies a partial field set and returns the updated row. Keys not in
// classifiedUpdateColumns are ignored.
func (s *ClassifiedStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Classified, error) {
	var (
		sets []string
		args []any
	)

	for _, col := range classifiedUpdateColumns {
		if v, ok := fields[col]; ok {
			args = append(args, v)
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}

	if len(sets) == 0 {
		return nil, errors.New("no fields to update")
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE classifieds SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), classifiedColumns)

	return scanClassified(Pool.QueryRow(ctx, query, args...))
}

// Delete removes a classified and returns its prior state.
func (s *ClassifiedStore) Delete(ctx context.Context, id uuid.UUID) (*models.Classified, error) {
	row := Pool.QueryRow(ctx, `
		DELETE FROM classifieds
		WHERE id = $1
		RETURNING `+classifiedColumns, id)

	return scanClassified(row)
}

func scanClassified(row pgx.Row) (*models.Classified, error) {
	var c models.Classified
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.Price,
		&c.Category,
		&c.Status,
		&c.ContactEmail,
		&c.PhotoURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning classified: %w", err)
	}
	return &c, nil
}

func collectClassifieds(rows pgx.Rows) ([]models.Classified, error) {
	classifieds := []models.Classified{}
	for rows.Next() {
		var c models.Classified
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Title,
			&c.Description,
			&c.Price,
			&c.Category,
			&c.Status,
			&c.ContactEmail,
			&c.PhotoURL,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning classified row: %w", err)
		}
		classifieds = append(classifieds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading classified rows: %w", err)
	}
	return classifieds, nil
}
