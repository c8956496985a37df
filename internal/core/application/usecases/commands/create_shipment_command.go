package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create the shipment record for
// an order: its physical properties, shipping mode, and pickup location.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	mode           shipment.Mode
	weight         kernel.Weight
	dimensions     kernel.Dimensions
	pickupLocation string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to attach a shipment record to an
// order. Validates every field; all of them are required.
func NewCreateShipmentCommand(
	orderID kernel.UUID,
	mode shipment.Mode,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	pickupLocation string,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setOrderID(orderID),
		shipmentCommand.setMode(mode),
		shipmentCommand.setWeight(weight),
		shipmentCommand.setDimensions(dimensions),
		shipmentCommand.setPickupLocation(pickupLocation),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that owns the shipment.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Mode returns the requested shipping mode.
func (c CreateShipmentCommand) Mode() shipment.Mode {
	return c.mode
}

// Weight returns the package weight.
func (c CreateShipmentCommand) Weight() kernel.Weight {
	return c.weight
}

// Dimensions returns the package dimensions.
func (c CreateShipmentCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// PickupLocation returns the pickup location.
func (c CreateShipmentCommand) PickupLocation() string {
	return c.pickupLocation
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setMode(mode shipment.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateShipmentCommand) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}

	c.pickupLocation = pickupLocation
	return nil
}
