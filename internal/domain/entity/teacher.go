package entity

import (
	"time"

	"github.com/google/uuid"
)

// Teacher is an instructor profile. Names are unique.
type Teacher struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ImageKey    string    `json:"-"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
