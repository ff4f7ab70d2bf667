package handler

import (
	"errors"
	"log"

	"github.com/Ibrahima96/pacao/internal/model"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler prepares the WhatsApp handoff for the quote form. The
// contact number prefers the site_content override when one exists.
type OrderHandler struct {
	orders      *service.OrderService
	siteContent SiteContentStore
}

func NewOrderHandler(orders *service.OrderService, siteContent SiteContentStore) *OrderHandler {
	return &OrderHandler{orders: orders, siteContent: siteContent}
}

func (h *OrderHandler) BuildLink(c *fiber.Ctx) error {
	var req model.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	link, err := h.orders.BuildLink(&req, h.overrideNumber(c))
	if err != nil {
		if errors.Is(err, service.ErrIncompleteOrder) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to build order link"})
	}

	return c.JSON(link)
}

func (h *OrderHandler) overrideNumber(c *fiber.Ctx) string {
	if h.siteContent == nil {
		return ""
	}
	entries, err := h.siteContent.List(c.Context())
	if err != nil {
		log.Printf("[Order] Site content lookup failed, using default number: %v", err)
		return ""
	}
	for _, e := range entries {
		if e.Key == "whatsapp_number" {
			return e.Value
		}
	}
	return ""
}
