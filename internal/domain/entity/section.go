package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section groups courses on the storefront. Names are unique.
type Section struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NamedFilter is the whitelisted filter shared by sections and teachers.
type NamedFilter struct {
	IsActive *bool
	Name     string
}
