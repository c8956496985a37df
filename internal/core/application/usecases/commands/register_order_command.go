package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRegisterOrderCommandIsNotConstructed = errors.New(
	"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
)

// RegisterOrderCommand represents a request to register a new order with the
// shipping service. The order enters the lifecycle in Pending status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewRegisterOrderCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
//	fmt.Printf("Order %s registered in Pending status", orderID)
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
// Validates that the order ID is a constructed UUID.
func NewRegisterOrderCommand(orderID kernel.UUID) (RegisterOrderCommand, error) {
	registerCommand := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := registerCommand.setOrderID(orderID); err != nil {
		return RegisterOrderCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterOrderCommandIsNotConstructed if validation fails.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
