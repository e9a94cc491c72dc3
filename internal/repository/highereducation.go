package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Padala-Srishanth/placements/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HigherEducationRepository struct {
	db *pgxpool.Pool
}

func (r HigherEducationRepository) List(ctx context.Context, filter model.HigherEducationFilter, limit, offset int) ([]model.HigherEducation, error) {
	var b queryBuilder
	if filter.Country != "" {
		b.prefix("country", filter.Country)
	}
	if filter.University != "" {
		b.prefix("universityName", filter.University)
	}
	if filter.Course != "" {
		b.prefix("course", filter.Course)
	}
	if filter.Year != 0 {
		b.equalInt("yearOfAdmission", filter.Year)
	}

	q, args := b.page("SELECT id, doc FROM higher_education", limit, offset)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query higher education: %w", err)
	}
	defer rows.Close()

	out := make([]model.HigherEducation, 0, limit)
	for rows.Next() {
		var (
			id  string
			doc map[string]any
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan higher education row: %w", err)
		}
		out = append(out, *model.HigherEducationFromDocument(id, doc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r HigherEducationRepository) Get(ctx context.Context, id string) (*model.HigherEducation, error) {
	const q = `SELECT doc FROM higher_education WHERE id = $1`
	var doc map[string]any
	if err := r.db.QueryRow(ctx, q, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get higher education: %w", err)
	}
	return model.HigherEducationFromDocument(id, doc), nil
}

// ListAll returns the full collection snapshot for filter-option
// extraction.
func (r HigherEducationRepository) ListAll(ctx context.Context) ([]model.HigherEducation, error) {
	const q = `SELECT id, doc FROM higher_education ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("scan higher education: %w", err)
	}
	defer rows.Close()

	var out []model.HigherEducation
	for rows.Next() {
		var (
			id  string
			doc map[string]any
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan higher education row: %w", err)
		}
		out = append(out, *model.HigherEducationFromDocument(id, doc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r HigherEducationRepository) Create(ctx context.Context, e *model.HigherEducation) error {
	e.ID = uuid.NewString()
	const q = `
INSERT INTO higher_education (id, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.db.Exec(ctx, q, e.ID, e.Document(), e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("insert higher education: %w", err)
	}
	return nil
}

func (r HigherEducationRepository) Update(ctx context.Context, e *model.HigherEducation) error {
	const q = `UPDATE higher_education SET doc = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, e.ID, e.Document(), e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update higher education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r HigherEducationRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM higher_education WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("delete higher education: %w", err)
	}
	return nil
}
