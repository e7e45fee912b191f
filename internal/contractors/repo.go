// Package contractors exposes the read-only contractor reference data.
// Contractors are seeded externally; this service never creates or
// mutates them.
package contractors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PIliev24/green-street/internal/domain"
)

const searchLimit = 20

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Contractor, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT id::text, name, image, created_at::text
FROM contractors
ORDER BY name ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Search matches names case-insensitively by substring, capped at 20 rows.
func (r *Repo) Search(ctx context.Context, q string) ([]domain.Contractor, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT id::text, name, image, created_at::text
FROM contractors
WHERE name ILIKE '%' || $1 || '%'
ORDER BY name ASC
LIMIT $2
`, q, searchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.Contractor, error) {
	var c domain.Contractor
	err := r.Pool.QueryRow(ctx, `
SELECT id::text, name, image, created_at::text
FROM contractors
WHERE id = $1::uuid
`, id).Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contractor{}, domain.ErrNotFound
		}
		return domain.Contractor{}, err
	}
	return c, nil
}

func collect(rows pgx.Rows) ([]domain.Contractor, error) {
	out := []domain.Contractor{}
	for rows.Next() {
		var c domain.Contractor
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
