// Package ports defines repository and infrastructure interfaces for the
// shipment lifecycle domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// ErrConcurrentStatusChange is returned by OrderRepository.Update when the
// stored status no longer matches the status the aggregate was loaded with,
// meaning another transaction transitioned the order first.
var ErrConcurrentStatusChange = errors.New("order status was changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and updating orders with their
// current status and transition log.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	//
	// The status write is conditional: it only applies if the stored status
	// still equals the status the aggregate was restored with
	// (order.RestoredStatus). If another transaction changed the status in
	// the meantime, Update returns ErrConcurrentStatusChange and nothing is
	// written. Combined with the surrounding transaction this makes the
	// read-validate-write cycle of a transition atomic: of two racing
	// transitions against the same order, exactly one wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its transition log. Returns errs.ErrObjectNotFound if no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
