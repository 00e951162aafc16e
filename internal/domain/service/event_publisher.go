package service

import (
	"context"
)

// ActivityEvent mirrors an activity log row for downstream consumers such as
// analytics pipelines. Publishing is fire-and-forget and never gates the
// transaction that produced the log row.
type ActivityEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	ActorID      string            `json:"actor_id"`
	Action       string            `json:"action"`
	ResourceType string            `json:"resource_type"`
	ResourceID   string            `json:"resource_id"`
	Description  string            `json:"description,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	OccurredAt   string            `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
