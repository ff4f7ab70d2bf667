package handler

import (
	"context"
	"errors"

	"github.com/Ibrahima96/pacao/internal/model"
)

// Func-field mocks for the store interfaces. A nil func fails the call,
// which keeps "must not be called" assertions cheap.

var errMockNotWired = errors.New("mock: call not expected")

type mockServiceStore struct {
	ListFunc   func(ctx context.Context) ([]model.Service, error)
	InsertFunc func(ctx context.Context, s *model.Service) (*model.Service, error)
	UpdateFunc func(ctx context.Context, id string, s *model.Service) error
	DeleteFunc func(ctx context.Context, id string) error

	inserts, updates, deletes int
}

func (m *mockServiceStore) List(ctx context.Context) ([]model.Service, error) {
	if m.ListFunc == nil {
		return nil, errMockNotWired
	}
	return m.ListFunc(ctx)
}

func (m *mockServiceStore) Insert(ctx context.Context, s *model.Service) (*model.Service, error) {
	m.inserts++
	if m.InsertFunc == nil {
		return nil, errMockNotWired
	}
	return m.InsertFunc(ctx, s)
}

func (m *mockServiceStore) Update(ctx context.Context, id string, s *model.Service) error {
	m.updates++
	if m.UpdateFunc == nil {
		return errMockNotWired
	}
	return m.UpdateFunc(ctx, id, s)
}

func (m *mockServiceStore) Delete(ctx context.Context, id string) error {
	m.deletes++
	if m.DeleteFunc == nil {
		return errMockNotWired
	}
	return m.DeleteFunc(ctx, id)
}

type mockGalleryStore struct {
	ListFunc   func(ctx context.Context) ([]model.GalleryItem, error)
	InsertFunc func(ctx context.Context, g *model.GalleryItem) (*model.GalleryItem, error)
	UpdateFunc func(ctx context.Context, id string, g *model.GalleryItem) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockGalleryStore) List(ctx context.Context) ([]model.GalleryItem, error) {
	if m.ListFunc == nil {
		return nil, errMockNotWired
	}
	return m.ListFunc(ctx)
}

func (m *mockGalleryStore) Insert(ctx context.Context, g *model.GalleryItem) (*model.GalleryItem, error) {
	if m.InsertFunc == nil {
		return nil, errMockNotWired
	}
	return m.InsertFunc(ctx, g)
}

func (m *mockGalleryStore) Update(ctx context.Context, id string, g *model.GalleryItem) error {
	if m.UpdateFunc == nil {
		return errMockNotWired
	}
	return m.UpdateFunc(ctx, id, g)
}

func (m *mockGalleryStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc == nil {
		return errMockNotWired
	}
	return m.DeleteFunc(ctx, id)
}

type mockTestimonialStore struct {
	ListFunc   func(ctx context.Context) ([]model.Testimonial, error)
	InsertFunc func(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error)
	UpdateFunc func(ctx context.Context, id string, t *model.Testimonial) error
	DeleteFunc func(ctx context.Context, id string) error

	inserts, deletes int
}

func (m *mockTestimonialStore) List(ctx context.Context) ([]model.Testimonial, error) {
	if m.ListFunc == nil {
		return nil, errMockNotWired
	}
	return m.ListFunc(ctx)
}

func (m *mockTestimonialStore) Insert(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	m.inserts++
	if m.InsertFunc == nil {
		return nil, errMockNotWired
	}
	return m.InsertFunc(ctx, t)
}

func (m *mockTestimonialStore) Update(ctx context.Context, id string, t *model.Testimonial) error {
	if m.UpdateFunc == nil {
		return errMockNotWired
	}
	return m.UpdateFunc(ctx, id, t)
}

func (m *mockTestimonialStore) Delete(ctx context.Context, id string) error {
	m.deletes++
	if m.DeleteFunc == nil {
		return errMockNotWired
	}
	return m.DeleteFunc(ctx, id)
}

type mockSiteContentStore struct {
	ListFunc   func(ctx context.Context) ([]model.SiteContent, error)
	UpsertFunc func(ctx context.Context, e *model.SiteContent) error
	DeleteFunc func(ctx context.Context, key string) error

	upserts int
}

func (m *mockSiteContentStore) List(ctx context.Context) ([]model.SiteContent, error) {
	if m.ListFunc == nil {
		return nil, errMockNotWired
	}
	return m.ListFunc(ctx)
}

func (m *mockSiteContentStore) Upsert(ctx context.Context, e *model.SiteContent) error {
	m.upserts++
	if m.UpsertFunc == nil {
		return errMockNotWired
	}
	return m.UpsertFunc(ctx, e)
}

func (m *mockSiteContentStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc == nil {
		return errMockNotWired
	}
	return m.DeleteFunc(ctx, key)
}

type mockNotifier struct {
	tables []string
}

func (m *mockNotifier) NotifyContentUpdated(table string) {
	m.tables = append(m.tables, table)
}
