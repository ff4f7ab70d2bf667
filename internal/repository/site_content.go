package repository

import (
	"context"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SiteContentRepository struct {
	pool *pgxpool.Pool
}

func NewSiteContentRepository(pool *pgxpool.Pool) *SiteContentRepository {
	return &SiteContentRepository{pool: pool}
}

func (r *SiteContentRepository) List(ctx context.Context) ([]model.SiteContent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, value, description, updated_at
		FROM site_content
		ORDER BY key ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.SiteContent
	for rows.Next() {
		var e model.SiteContent
		if err := rows.Scan(&e.Key, &e.Value, &e.Description, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Upsert replaces the entry for the key. Entries are identified by key,
// never by a generated id.
func (r *SiteContentRepository) Upsert(ctx context.Context, e *model.SiteContent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO site_content (key, value, description, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, description = EXCLUDED.description, updated_at = NOW()
	`, e.Key, e.Value, e.Description)
	return err
}

func (r *SiteContentRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM site_content WHERE key = $1`, key)
	return err
}
