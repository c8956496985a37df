package ports

import (
	"context"
	"time"
)

// StatusChangedEvent describes one accepted status transition, emitted after
// the transition has been durably committed.
type StatusChangedEvent struct {
	OrderID        string     `json:"orderId"`
	PreviousStatus string     `json:"previousStatus"`
	NewStatus      string     `json:"newStatus"`
	WaybillNumber  string     `json:"waybillNumber,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	DeliveryDate   *time.Time `json:"deliveryDate,omitempty"`
	UpdatedBy      string     `json:"updatedBy"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

// StatusEventPublisher publishes status-change events to interested consumers
// (storefront, notifications). Delivery is best effort: the transition is
// already durable when Publish is called, so a publish failure must never be
// treated as a transition failure.
type StatusEventPublisher interface {
	Publish(ctx context.Context, event StatusChangedEvent) error
}
