package commands

import (
	"context"
	"errors"
)

// ErrShipmentNotEditable is returned when the owning order's status does not
// allow shipment edits (before confirmation or after a terminal status).
var ErrShipmentNotEditable = errors.New("shipment is not editable in the order's current status")

// EditShipmentCommandHandler handles edits to an existing shipment record.
// Edits are allowed only while the order is in an active, non-terminal status.
type EditShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditShipmentCommandHandler creates a handler for shipment edit operations.
func NewEditShipmentCommandHandler(uowFactory UoWFactory) EditShipmentCommandHandler {
	return EditShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment edit command.
// Verifies the owning order's status allows edits, replaces the shipment's
// editable details, and persists within a transaction. The waybill list and
// tracking URL are untouched.
func (h EditShipmentCommandHandler) Handle(ctx context.Context, cmd EditShipmentCommand) error {
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

	if !aggregate.Status().AllowsShipmentEdit() {
		return ErrShipmentNotEditable
	}

	shipmentRepo := uow.ShipmentRepository()
	record, err := shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = record.ChangeDetails(cmd.Mode(), cmd.Weight(), cmd.Dimensions(), cmd.PickupLocation()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
