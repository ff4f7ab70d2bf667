package handler

import (
	"log"

	"github.com/Ibrahima96/pacao/internal/defaults"
	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the four content collections to the landing page.
// Read errors never reach the visitor: a failed or empty list degrades to
// the built-in fallback rows, exactly like a site with no backend wired.
type PublicHandler struct {
	stores Stores
}

func NewPublicHandler(stores Stores) *PublicHandler {
	return &PublicHandler{stores: stores}
}

func (h *PublicHandler) Services(c *fiber.Ctx) error {
	if h.stores.Services != nil {
		services, err := h.stores.Services.List(c.Context())
		if err != nil {
			log.Printf("[Public] List services failed, serving defaults: %v", err)
		} else if len(services) > 0 {
			return c.JSON(fiber.Map{"services": services})
		}
	}
	return c.JSON(fiber.Map{"services": defaults.Services(), "fallback": true})
}

func (h *PublicHandler) Gallery(c *fiber.Ctx) error {
	if h.stores.Gallery != nil {
		items, err := h.stores.Gallery.List(c.Context())
		if err != nil {
			log.Printf("[Public] List gallery failed, serving defaults: %v", err)
		} else if len(items) > 0 {
			return c.JSON(fiber.Map{"gallery": items})
		}
	}
	return c.JSON(fiber.Map{"gallery": defaults.Gallery(), "fallback": true})
}

func (h *PublicHandler) Testimonials(c *fiber.Ctx) error {
	if h.stores.Testimonials != nil {
		list, err := h.stores.Testimonials.List(c.Context())
		if err != nil {
			log.Printf("[Public] List testimonials failed, serving defaults: %v", err)
		} else if len(list) > 0 {
			return c.JSON(fiber.Map{"testimonials": list})
		}
	}
	return c.JSON(fiber.Map{"testimonials": defaults.Testimonials(), "fallback": true})
}

// SiteContent returns the copy map the page renders from: the hard-coded
// defaults overlaid with whatever keys the store holds.
func (h *PublicHandler) SiteContent(c *fiber.Ctx) error {
	content := defaults.SiteContent()
	entries := []model.SiteContent{}

	if h.stores.SiteContent != nil {
		stored, err := h.stores.SiteContent.List(c.Context())
		if err != nil {
			log.Printf("[Public] List site content failed, serving defaults: %v", err)
		}
		for _, e := range stored {
			content[e.Key] = e.Value
		}
		entries = append(entries, stored...)
	}

	return c.JSON(fiber.Map{"content": content, "entries": entries})
}
