package handler

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Ibrahima96/pacao/internal/model"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderApp(siteContent SiteContentStore) *fiber.App {
	h := NewOrderHandler(service.NewOrderService("221779883924"), siteContent)
	app := fiber.New()
	app.Post("/orders/link", h.BuildLink)
	return app
}

func TestBuildOrderLinkUsesConfiguredNumber(t *testing.T) {
	app := newOrderApp(nil)

	status, out := doJSON(t, app, "POST", "/orders/link",
		`{"name":"Jean D.","service":"Impression Grand Format","quantity":"100 affiches","details":"Format A2 couleur"}`)
	require.Equal(t, 200, status)

	var link model.OrderLink
	require.NoError(t, json.Unmarshal(out["url"], &link.URL))
	require.NoError(t, json.Unmarshal(out["message"], &link.Message))

	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/221779883924?text="))
	assert.Contains(t, link.Message, "Jean D.")
	assert.Contains(t, link.Message, "100 affiches")
}

func TestBuildOrderLinkPrefersSiteContentNumber(t *testing.T) {
	store := &mockSiteContentStore{
		ListFunc: func(_ context.Context) ([]model.SiteContent, error) {
			return []model.SiteContent{{Key: "whatsapp_number", Value: "221770000000"}}, nil
		},
	}
	app := newOrderApp(store)

	status, out := doJSON(t, app, "POST", "/orders/link",
		`{"name":"Awa","service":"Branding","details":"Logo complet"}`)
	require.Equal(t, 200, status)

	var u string
	require.NoError(t, json.Unmarshal(out["url"], &u))
	assert.True(t, strings.HasPrefix(u, "https://wa.me/221770000000?text="))
}

func TestBuildOrderLinkLookupFailureFallsBackToDefault(t *testing.T) {
	store := &mockSiteContentStore{
		ListFunc: func(_ context.Context) ([]model.SiteContent, error) {
			return nil, context.DeadlineExceeded
		},
	}
	app := newOrderApp(store)

	status, out := doJSON(t, app, "POST", "/orders/link",
		`{"name":"Awa","service":"Branding","details":"Logo complet"}`)
	require.Equal(t, 200, status)

	var u string
	require.NoError(t, json.Unmarshal(out["url"], &u))
	assert.True(t, strings.HasPrefix(u, "https://wa.me/221779883924?text="))
}

func TestBuildOrderLinkRejectsIncompleteRequest(t *testing.T) {
	app := newOrderApp(nil)

	status, out := doJSON(t, app, "POST", "/orders/link", `{"name":"Awa","service":"Branding"}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, string(out["error"]), "required")
}
