// Package queries contains read operations for the shipment lifecycle.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database with raw SQL, bypassing domain aggregates for performance.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the full shipment view for one order: its current
// status, whether a shipment record exists, the record's details if so, and
// whether one may be created now.
//
// Example:
//
//	query, err := NewGetShipmentQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment view: %w", err)
//	}
//	fmt.Printf("Order is %s, shipment created: %v\n", view.Status, view.ShipmentCreated)
type GetShipmentQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one order's shipment view.
// Validates that the order ID is a constructed UUID.
func NewGetShipmentQuery(orderID kernel.UUID) (GetShipmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetShipmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ShipmentDetails is the read model of a shipment record.
type ShipmentDetails struct {
	Mode           string
	WeightGrams    int
	LengthCm       int
	WidthCm        int
	HeightCm       int
	PickupLocation string
	WaybillNumbers []string
	TrackingURL    string
	CreatedAt      time.Time
}

// GetShipmentQueryResponse is the combined shipment view of an order.
// Shipment is nil when no shipment record exists yet.
type GetShipmentQueryResponse struct {
	OrderID           kernel.UUID
	Status            string
	ShipmentCreated   bool
	CanCreateShipment bool
	Shipment          *ShipmentDetails
}
