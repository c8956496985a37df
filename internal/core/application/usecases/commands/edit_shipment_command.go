package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrEditShipmentCommandIsNotConstructed = errors.New(
	"EditShipmentCommand must be created via NewEditShipmentCommand constructor",
)

// EditShipmentCommand represents a request to replace the editable details of
// an existing shipment record: mode, weight, dimensions, and pickup location.
// Waybill numbers and the tracking URL are not editable; they only accumulate
// through status transitions.
type EditShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	mode           shipment.Mode
	weight         kernel.Weight
	dimensions     kernel.Dimensions
	pickupLocation string

	guard guard.ConstructorGuard
}

// NewEditShipmentCommand creates a command to edit an order's shipment record.
// Validates every field; the edit replaces all editable details at once.
func NewEditShipmentCommand(
	orderID kernel.UUID,
	mode shipment.Mode,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	pickupLocation string,
) (EditShipmentCommand, error) {
	editCommand := EditShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOrderID(orderID),
		editCommand.setMode(mode),
		editCommand.setWeight(weight),
		editCommand.setDimensions(dimensions),
		editCommand.setPickupLocation(pickupLocation),
	); err != nil {
		return EditShipmentCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditShipmentCommand) Validate() error {
	return c.guard.Validate(ErrEditShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that owns the shipment.
func (c EditShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Mode returns the new shipping mode.
func (c EditShipmentCommand) Mode() shipment.Mode {
	return c.mode
}

// Weight returns the new package weight.
func (c EditShipmentCommand) Weight() kernel.Weight {
	return c.weight
}

// Dimensions returns the new package dimensions.
func (c EditShipmentCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// PickupLocation returns the new pickup location.
func (c EditShipmentCommand) PickupLocation() string {
	return c.pickupLocation
}

func (c *EditShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditShipmentCommand) setMode(mode shipment.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *EditShipmentCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *EditShipmentCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *EditShipmentCommand) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}

	c.pickupLocation = pickupLocation
	return nil
}
