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

type PlacementRepository struct {
	db *pgxpool.Pool
}

func (r PlacementRepository) List(ctx context.Context, filter model.PlacementFilter, limit, offset int) ([]model.Placement, error) {
	var b queryBuilder
	if filter.Company != "" {
		b.prefix("companyName", filter.Company)
	}
	if filter.Role != "" {
		b.prefix("role", filter.Role)
	}
	if filter.Difficulty != "" {
		b.equal("difficulty", filter.Difficulty)
	}
	if filter.Year != 0 {
		b.equalInt("batchYear", filter.Year)
	}

	q, args := b.page("SELECT id, doc FROM placements", limit, offset)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query placements: %w", err)
	}
	defer rows.Close()

	out := make([]model.Placement, 0, limit)
	for rows.Next() {
		var (
			id  string
			doc map[string]any
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan placement row: %w", err)
		}
		out = append(out, *model.PlacementFromDocument(id, doc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r PlacementRepository) Get(ctx context.Context, id string) (*model.Placement, error) {
	const q = `SELECT doc FROM placements WHERE id = $1`
	var doc map[string]any
	if err := r.db.QueryRow(ctx, q, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get placement: %w", err)
	}
	return model.PlacementFromDocument(id, doc), nil
}

// ListAll returns the full collection snapshot for filter-option
// extraction.
func (r PlacementRepository) ListAll(ctx context.Context) ([]model.Placement, error) {
	const q = `SELECT id, doc FROM placements ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("scan placements: %w", err)
	}
	defer rows.Close()

	var out []model.Placement
	for rows.Next() {
		var (
			id  string
			doc map[string]any
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan placement row: %w", err)
		}
		out = append(out, *model.PlacementFromDocument(id, doc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// Create persists the document under a fresh opaque id and fills it in on
// the entity.
func (r PlacementRepository) Create(ctx context.Context, p *model.Placement) error {
	p.ID = uuid.NewString()
	const q = `
INSERT INTO placements (id, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.db.Exec(ctx, q, p.ID, p.Document(), p.CreatedAt, p.UpdatedAt); err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}

// Update overwrites the full document. A missing id is not found.
func (r PlacementRepository) Update(ctx context.Context, p *model.Placement) error {
	const q = `UPDATE placements SET doc = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, p.ID, p.Document(), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete hard-deletes the document. Deleting an absent id is a no-op with
// the same post-state, so it succeeds.
func (r PlacementRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM placements WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("delete placement: %w", err)
	}
	return nil
}
