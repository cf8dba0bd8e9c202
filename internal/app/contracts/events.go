package contracts

import (
	"context"
	"time"
)

type MutationEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId,omitempty"`
	PatientID  string    `json:"patientId,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	ActorID    string    `json:"actorId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type MutationPublisher interface {
	Publish(ctx context.Context, event MutationEvent) error
}

// Invalidator runs after a successful mutation: it evicts the given cache tags
// and announces the change.
type Invalidator interface {
	AfterMutation(ctx context.Context, event MutationEvent, tags ...CacheTag)
}
