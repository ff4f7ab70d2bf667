package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ibrahima96/pacao/internal/defaults"
	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicApp(stores Stores) *fiber.App {
	h := NewPublicHandler(stores)
	app := fiber.New()
	app.Get("/services", h.Services)
	app.Get("/gallery", h.Gallery)
	app.Get("/testimonials", h.Testimonials)
	app.Get("/site", h.SiteContent)
	return app
}

func TestPublicServesDefaultsWithoutDatabase(t *testing.T) {
	app := newPublicApp(Stores{})

	status, out := doJSON(t, app, "GET", "/services", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "true", string(out["fallback"]))

	var services []model.Service
	require.NoError(t, json.Unmarshal(out["services"], &services))
	assert.Equal(t, defaults.Services(), services)
}

func TestPublicServesDefaultsOnListError(t *testing.T) {
	store := &mockTestimonialStore{
		ListFunc: func(_ context.Context) ([]model.Testimonial, error) {
			return nil, errors.New("connection refused")
		},
	}
	app := newPublicApp(Stores{Testimonials: store})

	status, out := doJSON(t, app, "GET", "/testimonials", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "true", string(out["fallback"]))

	var list []model.Testimonial
	require.NoError(t, json.Unmarshal(out["testimonials"], &list))
	assert.Equal(t, defaults.Testimonials(), list)
}

func TestPublicServesDefaultsOnEmptyTable(t *testing.T) {
	store := &mockGalleryStore{
		ListFunc: func(_ context.Context) ([]model.GalleryItem, error) { return nil, nil },
	}
	app := newPublicApp(Stores{Gallery: store})

	status, out := doJSON(t, app, "GET", "/gallery", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "true", string(out["fallback"]))
}

func TestPublicPassesStoredRowsThrough(t *testing.T) {
	stored := []model.GalleryItem{
		{ID: "g-new", Image: "https://example.com/a.jpg", Alt: "Dernier projet", Size: model.SizeLarge, Category: "Print"},
		{ID: "g-old", Image: "https://example.com/b.jpg", Alt: "Plus ancien", Size: model.SizeSmall, Category: "Tech"},
	}
	store := &mockGalleryStore{
		ListFunc: func(_ context.Context) ([]model.GalleryItem, error) { return stored, nil },
	}
	app := newPublicApp(Stores{Gallery: store})

	status, out := doJSON(t, app, "GET", "/gallery", "")
	require.Equal(t, 200, status)
	assert.Nil(t, out["fallback"])

	var items []model.GalleryItem
	require.NoError(t, json.Unmarshal(out["gallery"], &items))
	assert.Equal(t, stored, items)
}

func TestSiteContentOverlaysStoredKeysOnDefaults(t *testing.T) {
	store := &mockSiteContentStore{
		ListFunc: func(_ context.Context) ([]model.SiteContent, error) {
			return []model.SiteContent{
				{Key: "hero_title", Value: "PACAO Digital"},
				{Key: "promo_banner", Value: "Offre de lancement"},
			}, nil
		},
	}
	app := newPublicApp(Stores{SiteContent: store})

	status, out := doJSON(t, app, "GET", "/site", "")
	require.Equal(t, 200, status)

	var content map[string]string
	require.NoError(t, json.Unmarshal(out["content"], &content))

	// Stored keys win, unknown keys are added, untouched defaults survive.
	assert.Equal(t, "PACAO Digital", content["hero_title"])
	assert.Equal(t, "Offre de lancement", content["promo_banner"])
	assert.Equal(t, defaults.WhatsAppNumber, content["whatsapp_number"])
	assert.Equal(t, "Prêt à collaborer ?", content["footer_cta_title"])
}

func TestSiteContentWithoutDatabaseIsPureDefaults(t *testing.T) {
	app := newPublicApp(Stores{})

	status, out := doJSON(t, app, "GET", "/site", "")
	require.Equal(t, 200, status)

	var content map[string]string
	require.NoError(t, json.Unmarshal(out["content"], &content))
	assert.Equal(t, defaults.SiteContent(), content)

	// An empty list, never null, same as the assistant history endpoint
	assert.Equal(t, "[]", string(out["entries"]))
}
