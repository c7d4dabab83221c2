package commands

import (
	"errors"

	"freightline/internal/pkg/guard"
)

var ErrAuditStockCommandIsNotConstructed = errors.New(
	"AuditStockCommand must be created via NewAuditStockCommand constructor",
)

// AuditStockCommand triggers a sweep over all facilities comparing the stored
// stock aggregate against the sum of remaining quantities in the ledger.
// Parameterless; the sweep covers every facility.
type AuditStockCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAuditStockCommand creates a command to run the stock audit sweep.
func NewAuditStockCommand() AuditStockCommand {
	return AuditStockCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AuditStockCommand) Validate() error {
	return c.guard.Validate(ErrAuditStockCommandIsNotConstructed)
}
