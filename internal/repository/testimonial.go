package repository

import (
	"context"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, quote, author, role, created_at
		FROM testimonials
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Quote, &t.Author, &t.Role, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	out := &model.Testimonial{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO testimonials (quote, author, role)
		VALUES ($1, $2, $3)
		RETURNING id, quote, author, role, created_at
	`, t.Quote, t.Author, t.Role).Scan(&out.ID, &out.Quote, &out.Author, &out.Role, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, t *model.Testimonial) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE testimonials SET quote = $2, author = $3, role = $4 WHERE id = $1
	`, id, t.Quote, t.Author, t.Role)
	return err
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	return err
}
