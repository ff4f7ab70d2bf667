package model

import "time"

// Alignment values accepted for a service block.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Gallery size classes. Display-only, no server-side meaning beyond
// validation.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Service is one offer block on the public page.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Alignment   string    `json:"alignment"`
	ColorTheme  string    `json:"color_theme"`
	Price       string    `json:"price,omitempty"`
	Badges      []string  `json:"badges"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceDraft is the admin form payload. Badges arrive as one
// comma-separated text field, the way the edit form presents them.
type ServiceDraft struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Alignment   string `json:"alignment"`
	ColorTheme  string `json:"color_theme"`
	Price       string `json:"price"`
	BadgesInput string `json:"badges_input"`
}

type GalleryItem struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Alt       string    `json:"alt"`
	Size      string    `json:"size"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type GalleryDraft struct {
	ID       string `json:"id,omitempty"`
	Image    string `json:"image"`
	Alt      string `json:"alt"`
	Size     string `json:"size"`
	Category string `json:"category"`
}

type Testimonial struct {
	ID        string    `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TestimonialDraft struct {
	ID     string `json:"id,omitempty"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// SiteContent is a keyed copy override (hero title, footer CTA,
// whatsapp_number, ...). The key is the identity; there is no generated id.
type SiteContent struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SiteContentDraft struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
