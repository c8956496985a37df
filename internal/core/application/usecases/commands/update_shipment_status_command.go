package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move an order to a new
// shipment status. The transition payload carries the operator identity and
// the optional waybill, tracking, reason, and delivery fields; which of them
// are required is decided by the target status.
//
// Example:
//
//	details, _ := order.NewTransitionDetails("ops@warehouse", order.WithWaybillNumber("WB123"))
//	cmd, err := NewUpdateShipmentStatusCommand(orderID, order.Dispatched, details)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory, publisher)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // illegal edge for the order's current status
//	case errors.Is(err, ports.ErrConcurrentStatusChange):
//	    // lost the race against another transition, safe to retry
//	}
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	details   order.TransitionDetails

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to transition an order to
// newStatus. Validates the order ID, the target status, and the transition
// payload construction. Status-specific required fields are checked later by
// the aggregate, against its actual current status.
func NewUpdateShipmentStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	details order.TransitionDetails,
) (UpdateShipmentStatusCommand, error) {
	statusCommand := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setDetails(details),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateShipmentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateShipmentStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Details returns the transition payload.
func (c UpdateShipmentStatusCommand) Details() order.TransitionDetails {
	return c.details
}

func (c *UpdateShipmentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateShipmentStatusCommand) setDetails(details order.TransitionDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
