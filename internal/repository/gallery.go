package repository

import (
	"context"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GalleryRepository struct {
	pool *pgxpool.Pool
}

func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// List returns gallery items newest first.
func (r *GalleryRepository) List(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, image, alt, size, category, created_at
		FROM gallery
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.GalleryItem
	for rows.Next() {
		var g model.GalleryItem
		if err := rows.Scan(&g.ID, &g.Image, &g.Alt, &g.Size, &g.Category, &g.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *GalleryRepository) Insert(ctx context.Context, g *model.GalleryItem) (*model.GalleryItem, error) {
	out := &model.GalleryItem{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO gallery (image, alt, size, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, image, alt, size, category, created_at
	`, g.Image, g.Alt, g.Size, g.Category).Scan(
		&out.ID, &out.Image, &out.Alt, &out.Size, &out.Category, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, g *model.GalleryItem) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE gallery SET image = $2, alt = $3, size = $4, category = $5 WHERE id = $1
	`, id, g.Image, g.Alt, g.Size, g.Category)
	return err
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	return err
}
