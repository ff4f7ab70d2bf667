package handler

import (
	"errors"
	"log"

	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	storage *service.StorageService
}

func NewUploadHandler(storage *service.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload stores one image from a multipart form. Validation failures
// (wrong type, too large) stop the request before anything is written.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "file field is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "failed to read upload"})
	}
	defer f.Close()

	url, err := h.storage.SaveImage(fileHeader.Header.Get("Content-Type"), fileHeader.Filename, fileHeader.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage),
			errors.Is(err, service.ErrImageTooBig),
			errors.Is(err, service.ErrEmptyUpload):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("[Upload] Save failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to store image"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"url": url})
}

// Delete removes a stored image by its public URL.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(400).JSON(fiber.Map{"error": "url is required"})
	}

	if err := h.storage.DeleteImage(req.URL); err != nil {
		if errors.Is(err, service.ErrInvalidImage) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[Upload] Delete failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete image"})
	}

	return c.JSON(fiber.Map{"ok": true})
}
