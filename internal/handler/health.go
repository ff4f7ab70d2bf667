package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientCounter reports how many pages hold an open update socket.
// Satisfied by *service.Hub.
type ClientCounter interface {
	ConnectedCount() int
}

type HealthHandler struct {
	db  *pgxpool.Pool // nil when no database is configured
	hub ClientCounter
}

func NewHealthHandler(db *pgxpool.Pool, hub ClientCounter) *HealthHandler {
	return &HealthHandler{db: db, hub: hub}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"ws_clients": h.hub.ConnectedCount(),
	})
}

// Ready checks the database. A site running on fallback content alone is
// still ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.db == nil {
		return c.JSON(fiber.Map{"status": "ready", "database": "not configured"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.Status(503).JSON(fiber.Map{"status": "not ready", "database": "unreachable"})
	}
	return c.JSON(fiber.Map{"status": "ready", "database": "ok"})
}
