package context

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated admin behind a request.
type Actor struct {
	AdminID uuid.UUID
	Role    entity.Role
}

// WithActor returns a new context carrying the authenticated actor.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor extracts the authenticated actor, or nil for anonymous requests.
func GetActor(ctx context.Context) *Actor {
	if actor, ok := ctx.Value(actorKey).(*Actor); ok {
		return actor
	}

	return nil
}

// GetActorID returns the actor's admin ID as a string, or "" when anonymous.
func GetActorID(ctx context.Context) string {
	if actor := GetActor(ctx); actor != nil {
		return actor.AdminID.String()
	}

	return ""
}
