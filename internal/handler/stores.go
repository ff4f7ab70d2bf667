package handler

import (
	"context"

	"github.com/Ibrahima96/pacao/internal/model"
)

// Store interfaces consumed by the handlers. The pgx repositories satisfy
// them; tests swap in func-field mocks. A nil store means no database is
// configured: public reads fall back to the built-in content, admin
// mutations are refused.

type ServiceStore interface {
	List(ctx context.Context) ([]model.Service, error)
	Insert(ctx context.Context, s *model.Service) (*model.Service, error)
	Update(ctx context.Context, id string, s *model.Service) error
	Delete(ctx context.Context, id string) error
}

type GalleryStore interface {
	List(ctx context.Context) ([]model.GalleryItem, error)
	Insert(ctx context.Context, g *model.GalleryItem) (*model.GalleryItem, error)
	Update(ctx context.Context, id string, g *model.GalleryItem) error
	Delete(ctx context.Context, id string) error
}

type TestimonialStore interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Insert(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error)
	Update(ctx context.Context, id string, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type SiteContentStore interface {
	List(ctx context.Context) ([]model.SiteContent, error)
	Upsert(ctx context.Context, e *model.SiteContent) error
	Delete(ctx context.Context, key string) error
}

// Stores bundles the four content tables for handler wiring.
type Stores struct {
	Services     ServiceStore
	Gallery      GalleryStore
	Testimonials TestimonialStore
	SiteContent  SiteContentStore
}

// Notifier pushes refresh hints to connected pages after a mutation.
// Satisfied by *service.Hub.
type Notifier interface {
	NotifyContentUpdated(table string)
}
