package service

import (
	"errors"
	"strings"

	"github.com/Ibrahima96/pacao/internal/model"
)

var (
	ErrMissingTitle       = errors.New("title and description are required")
	ErrMissingQuote       = errors.New("quote and author are required")
	ErrMissingImage       = errors.New("image is required")
	ErrMissingKey         = errors.New("key and value are required")
	ErrConfirmationNeeded = errors.New("deletion requires confirmation")
)

// SentinelNewID marks a draft that has never been persisted. Stripped
// before insert; the store assigns the real id.
const SentinelNewID = "new"

// Field defaults applied when a draft leaves them blank.
const (
	defaultAlignment  = model.AlignCenter
	defaultColorTheme = "#ffffff"
	defaultSize       = model.SizeMedium
	defaultCategory   = "Portfolio"
)

// ParseBadges turns the admin form's comma-separated badge text into the
// persisted list: split on commas, trim, drop empties.
func ParseBadges(input string) []string {
	badges := []string{}
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			badges = append(badges, token)
		}
	}
	return badges
}

// JoinBadges rebuilds the editable text from a stored badge list. The
// round trip is lossy when a badge itself contains a comma; the form has
// always accepted that.
func JoinBadges(badges []string) string {
	return strings.Join(badges, ", ")
}

// PrepareService validates a draft and applies defaults, returning the
// row to persist. A missing title or description aborts before any
// repository call.
func PrepareService(d *model.ServiceDraft) (*model.Service, error) {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" {
		return nil, ErrMissingTitle
	}

	s := &model.Service{
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Description: d.Description,
		Image:       d.Image,
		Alignment:   d.Alignment,
		ColorTheme:  d.ColorTheme,
		Price:       d.Price,
		Badges:      ParseBadges(d.BadgesInput),
	}
	if s.Alignment == "" {
		s.Alignment = defaultAlignment
	}
	if s.ColorTheme == "" {
		s.ColorTheme = defaultColorTheme
	}
	return s, nil
}

// ServiceToDraft loads a stored row back into form shape for editing.
func ServiceToDraft(s *model.Service) *model.ServiceDraft {
	return &model.ServiceDraft{
		ID:          s.ID,
		Title:       s.Title,
		Subtitle:    s.Subtitle,
		Description: s.Description,
		Image:       s.Image,
		Alignment:   s.Alignment,
		ColorTheme:  s.ColorTheme,
		Price:       s.Price,
		BadgesInput: JoinBadges(s.Badges),
	}
}

func PrepareGalleryItem(d *model.GalleryDraft) (*model.GalleryItem, error) {
	if strings.TrimSpace(d.Image) == "" {
		return nil, ErrMissingImage
	}
	g := &model.GalleryItem{
		Image:    d.Image,
		Alt:      d.Alt,
		Size:     d.Size,
		Category: d.Category,
	}
	if g.Size == "" {
		g.Size = defaultSize
	}
	if g.Category == "" {
		g.Category = defaultCategory
	}
	return g, nil
}

func PrepareTestimonial(d *model.TestimonialDraft) (*model.Testimonial, error) {
	if strings.TrimSpace(d.Quote) == "" || strings.TrimSpace(d.Author) == "" {
		return nil, ErrMissingQuote
	}
	return &model.Testimonial{Quote: d.Quote, Author: d.Author, Role: d.Role}, nil
}

func PrepareSiteContent(d *model.SiteContentDraft) (*model.SiteContent, error) {
	if strings.TrimSpace(d.Key) == "" || strings.TrimSpace(d.Value) == "" {
		return nil, ErrMissingKey
	}
	return &model.SiteContent{Key: d.Key, Value: d.Value, Description: d.Description}, nil
}

// IsNewDraft reports whether an id means "insert" rather than "update".
func IsNewDraft(id string) bool {
	return id == "" || id == SentinelNewID
}
