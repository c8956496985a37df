package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

var (
	// ErrOrderNotReady is returned when a shipment record is requested for an
	// order that is not in Confirmed status.
	ErrOrderNotReady = errors.New("order is not ready for shipment creation")

	// ErrShipmentAlreadyExists is returned when the order already owns a
	// shipment record.
	ErrShipmentAlreadyExists = errors.New("shipment already exists for order")
)

// CreateShipmentCommandHandler handles shipment record creation.
// A shipment can be created exactly once per order, and only while the order
// is Confirmed.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotReady):
//	    // order not Confirmed yet, or already past it
//	case errors.Is(err, ErrShipmentAlreadyExists):
//	    // duplicate creation attempt
//	}
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Verifies the owning order exists and is Confirmed, rejects duplicates, and
// persists the new shipment record within a transaction.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CanCreateShipment() {
		return ErrOrderNotReady
	}

	shipmentRepo := uow.ShipmentRepository()
	_, err = shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return ErrShipmentAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	record, err := shipment.NewShipment(cmd.OrderID(), cmd.Mode(), cmd.Weight(), cmd.Dimensions(), cmd.PickupLocation())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
