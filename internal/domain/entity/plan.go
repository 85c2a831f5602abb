package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status is the two-state lifecycle flag used by plans.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the Status is a known value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Plan is a subscription plan bundling courses, ebooks and coupons for a fixed duration.
type Plan struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Title          string      `json:"title,omitempty"`
	Amount         float64     `json:"amount"`
	DurationInDays int         `json:"durationInDays"`
	Priority       int         `json:"priority"`
	Status         Status      `json:"status"`
	CourseIDs      []string    `json:"courseIds"`
	EbookIDs       []string    `json:"ebookIds"`
	CouponIDs      []uuid.UUID `json:"couponIds"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// PlanFilter is the whitelisted exact-match filter for listing plans.
type PlanFilter struct {
	Status Status
}
