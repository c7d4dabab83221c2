package commands

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents an administrative withdrawal of an order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
