package handler

import (
	"strings"

	"github.com/Ibrahima96/pacao/internal/model"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AssistantHandler struct {
	assistant *service.AssistantService
}

func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Ask answers one visitor question. A missing session id starts a fresh
// session; the id comes back in the response so the page can reuse it.
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req model.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query is required"})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp := h.assistant.Ask(c.Context(), sessionID, query)
	return c.JSON(resp)
}

// History returns the ordered transcript for a session. A fresh page
// remount calls this to restore the conversation.
func (h *AssistantHandler) History(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id is required"})
	}

	messages := h.assistant.History(sessionID)
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return c.JSON(fiber.Map{"session_id": sessionID, "messages": messages})
}

// Clear wipes a transcript. Requires the same explicit confirmation as
// content deletion.
func (h *AssistantHandler) Clear(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id is required"})
	}
	if c.Query("confirm") != "true" {
		return c.Status(400).JSON(fiber.Map{"error": service.ErrConfirmationNeeded.Error()})
	}

	h.assistant.Clear(sessionID)
	return c.JSON(fiber.Map{"ok": true})
}
