package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of a domain event.
type EventType string

const (
	// EventType_PRODUCT_ADDED represents the event when a product is added to the catalog.
	EventType_PRODUCT_ADDED EventType = "PRODUCT.ADDED"
)

// ProductEvent represents a catalog domain event.
type ProductEvent struct {
	Type      EventType
	ProductID uuid.UUID
	CreatedAt time.Time
}

// ProductEventPublisher defines the interface for publishing catalog events.
type ProductEventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
