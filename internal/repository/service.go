package repository

import (
	"context"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

// List returns all services oldest first, the order the public page
// renders them in.
func (r *ServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, subtitle, description, image, alignment, color_theme, price, badges, created_at
		FROM services
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Subtitle, &s.Description, &s.Image,
			&s.Alignment, &s.ColorTheme, &s.Price, &s.Badges, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Insert(ctx context.Context, s *model.Service) (*model.Service, error) {
	out := &model.Service{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO services (title, subtitle, description, image, alignment, color_theme, price, badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, subtitle, description, image, alignment, color_theme, price, badges, created_at
	`, s.Title, s.Subtitle, s.Description, s.Image, s.Alignment, s.ColorTheme, s.Price, s.Badges).Scan(
		&out.ID, &out.Title, &out.Subtitle, &out.Description, &out.Image,
		&out.Alignment, &out.ColorTheme, &out.Price, &out.Badges, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, s *model.Service) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE services
		SET title = $2, subtitle = $3, description = $4, image = $5,
		    alignment = $6, color_theme = $7, price = $8, badges = $9
		WHERE id = $1
	`, id, s.Title, s.Subtitle, s.Description, s.Image, s.Alignment, s.ColorTheme, s.Price, s.Badges)
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}
