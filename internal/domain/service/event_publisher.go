package service

import (
	"context"
	"time"
)

// Content change actions.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionDeleted     = "deleted"
	ActionToggled     = "toggled"
	ActionDeactivated = "deactivated"
)

// ContentEvent announces a committed change to admin-managed content so
// storefront caches and sitemap builders can refresh.
type ContentEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content change event
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
