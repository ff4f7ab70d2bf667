package handler

import (
	"log"

	"github.com/Ibrahima96/pacao/internal/model"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler is the server side of the editing workflow. Every save
// validates, mutates, then re-lists the collection so the response
// carries the fresh rows and the dashboard never patches its cache
// incrementally. A hub broadcast tells open public pages to refetch.
type ContentHandler struct {
	stores Stores
	hub    Notifier
}

func NewContentHandler(stores Stores, hub Notifier) *ContentHandler {
	return &ContentHandler{stores: stores, hub: hub}
}

// --- Services ---

func (h *ContentHandler) SaveService(c *fiber.Ctx) error {
	if h.stores.Services == nil {
		return storeUnavailable(c)
	}

	var draft model.ServiceDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	row, err := service.PrepareService(&draft)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if service.IsNewDraft(draft.ID) {
		_, err = h.stores.Services.Insert(c.Context(), row)
	} else {
		err = h.stores.Services.Update(c.Context(), draft.ID, row)
	}
	if err != nil {
		log.Printf("[Content] Save service failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save service"})
	}

	services, err := h.stores.Services.List(c.Context())
	if err != nil {
		log.Printf("[Content] Refetch services failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "saved but failed to reload services"})
	}

	h.hub.NotifyContentUpdated("services")
	return c.JSON(fiber.Map{"services": services})
}

func (h *ContentHandler) DeleteService(c *fiber.Ctx) error {
	if h.stores.Services == nil {
		return storeUnavailable(c)
	}
	if !confirmed(c) {
		return confirmationMissing(c)
	}

	if err := h.stores.Services.Delete(c.Context(), c.Params("id")); err != nil {
		log.Printf("[Content] Delete service failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete service"})
	}

	services, err := h.stores.Services.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "deleted but failed to reload services"})
	}

	h.hub.NotifyContentUpdated("services")
	return c.JSON(fiber.Map{"services": services})
}

// EditService returns a stored row in form shape, badges re-joined into
// the editable comma-separated text.
func (h *ContentHandler) EditService(c *fiber.Ctx) error {
	if h.stores.Services == nil {
		return storeUnavailable(c)
	}

	id := c.Params("id")
	services, err := h.stores.Services.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load services"})
	}
	for i := range services {
		if services[i].ID == id {
			return c.JSON(fiber.Map{"draft": service.ServiceToDraft(&services[i])})
		}
	}
	return c.Status(404).JSON(fiber.Map{"error": "service not found"})
}

// --- Gallery ---

func (h *ContentHandler) SaveGalleryItem(c *fiber.Ctx) error {
	if h.stores.Gallery == nil {
		return storeUnavailable(c)
	}

	var draft model.GalleryDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	row, err := service.PrepareGalleryItem(&draft)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if service.IsNewDraft(draft.ID) {
		_, err = h.stores.Gallery.Insert(c.Context(), row)
	} else {
		err = h.stores.Gallery.Update(c.Context(), draft.ID, row)
	}
	if err != nil {
		log.Printf("[Content] Save gallery item failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save gallery item"})
	}

	items, err := h.stores.Gallery.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "saved but failed to reload gallery"})
	}

	h.hub.NotifyContentUpdated("gallery")
	return c.JSON(fiber.Map{"gallery": items})
}

func (h *ContentHandler) DeleteGalleryItem(c *fiber.Ctx) error {
	if h.stores.Gallery == nil {
		return storeUnavailable(c)
	}
	if !confirmed(c) {
		return confirmationMissing(c)
	}

	if err := h.stores.Gallery.Delete(c.Context(), c.Params("id")); err != nil {
		log.Printf("[Content] Delete gallery item failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete gallery item"})
	}

	items, err := h.stores.Gallery.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "deleted but failed to reload gallery"})
	}

	h.hub.NotifyContentUpdated("gallery")
	return c.JSON(fiber.Map{"gallery": items})
}

// --- Testimonials ---

func (h *ContentHandler) SaveTestimonial(c *fiber.Ctx) error {
	if h.stores.Testimonials == nil {
		return storeUnavailable(c)
	}

	var draft model.TestimonialDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	row, err := service.PrepareTestimonial(&draft)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if service.IsNewDraft(draft.ID) {
		_, err = h.stores.Testimonials.Insert(c.Context(), row)
	} else {
		err = h.stores.Testimonials.Update(c.Context(), draft.ID, row)
	}
	if err != nil {
		log.Printf("[Content] Save testimonial failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save testimonial"})
	}

	list, err := h.stores.Testimonials.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "saved but failed to reload testimonials"})
	}

	h.hub.NotifyContentUpdated("testimonials")
	return c.JSON(fiber.Map{"testimonials": list})
}

func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	if h.stores.Testimonials == nil {
		return storeUnavailable(c)
	}
	if !confirmed(c) {
		return confirmationMissing(c)
	}

	if err := h.stores.Testimonials.Delete(c.Context(), c.Params("id")); err != nil {
		log.Printf("[Content] Delete testimonial failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete testimonial"})
	}

	list, err := h.stores.Testimonials.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "deleted but failed to reload testimonials"})
	}

	h.hub.NotifyContentUpdated("testimonials")
	return c.JSON(fiber.Map{"testimonials": list})
}

// --- Site content ---

// SaveSiteContent upserts by key. Keys are the identity here; saving an
// existing key replaces its value.
func (h *ContentHandler) SaveSiteContent(c *fiber.Ctx) error {
	if h.stores.SiteContent == nil {
		return storeUnavailable(c)
	}

	var draft model.SiteContentDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	entry, err := service.PrepareSiteContent(&draft)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.stores.SiteContent.Upsert(c.Context(), entry); err != nil {
		log.Printf("[Content] Upsert site content failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save site content"})
	}

	entries, err := h.stores.SiteContent.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "saved but failed to reload site content"})
	}

	h.hub.NotifyContentUpdated("site_content")
	return c.JSON(fiber.Map{"entries": entries})
}

func (h *ContentHandler) DeleteSiteContent(c *fiber.Ctx) error {
	if h.stores.SiteContent == nil {
		return storeUnavailable(c)
	}
	if !confirmed(c) {
		return confirmationMissing(c)
	}

	if err := h.stores.SiteContent.Delete(c.Context(), c.Params("key")); err != nil {
		log.Printf("[Content] Delete site content failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete site content"})
	}

	entries, err := h.stores.SiteContent.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "deleted but failed to reload site content"})
	}

	h.hub.NotifyContentUpdated("site_content")
	return c.JSON(fiber.Map{"entries": entries})
}

// confirmed reports whether the request carries the explicit
// confirm=true a destructive action requires.
func confirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}

func confirmationMissing(c *fiber.Ctx) error {
	return c.Status(400).JSON(fiber.Map{"error": service.ErrConfirmationNeeded.Error()})
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(503).JSON(fiber.Map{"error": "content store is not configured"})
}
