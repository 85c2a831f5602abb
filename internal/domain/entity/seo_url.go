package entity

import (
	"time"

	"github.com/google/uuid"
)

// SEOURL holds the sitemap and meta tags for a public page.
type SEOURL struct {
	ID              uuid.UUID `json:"id"`
	URL             string    `json:"url"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	Keywords        []string  `json:"keywords"`
	Priority        float64   `json:"priority"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SEOURLFilter is the whitelisted exact-match filter for listing SEO URLs.
type SEOURLFilter struct {
	IsActive *bool
}
