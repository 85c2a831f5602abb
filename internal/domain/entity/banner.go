// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a promotional image shown on the storefront. Priority orders the
// carousel and is unique among active banners only.
type Banner struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	ImageURL       string     `json:"imageUrl"`
	ImageKey       string     `json:"-"` // object storage key, empty for externally hosted images
	MobileImageURL string     `json:"mobileImageUrl,omitempty"`
	MobileImageKey string     `json:"-"`
	RedirectURL    string     `json:"redirectUrl"`
	Priority       int        `json:"priority"`
	IsActive       bool       `json:"isActive"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AssetKeys returns the storage keys owned by the banner.
func (b *Banner) AssetKeys() []string {
	keys := make([]string, 0, 2)
	if b.ImageKey != "" {
		keys = append(keys, b.ImageKey)
	}
	if b.MobileImageKey != "" {
		keys = append(keys, b.MobileImageKey)
	}

	return keys
}

// BannerFilter is the whitelisted exact-match filter for listing banners.
type BannerFilter struct {
	IsActive *bool
}
