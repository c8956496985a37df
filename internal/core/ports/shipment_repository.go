package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment records.
// A shipment is unique per order; the repository enforces the 1:1 ownership.
type ShipmentRepository interface {
	// Add persists a new shipment record.
	// Adding a second shipment for the same order fails; the storage schema
	// keeps order_id unique.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment record
	// (appended waybills, tracking URL, edited details).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByOrderID retrieves the shipment record owned by the given order.
	// Returns errs.ErrObjectNotFound if the order has no shipment yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}
