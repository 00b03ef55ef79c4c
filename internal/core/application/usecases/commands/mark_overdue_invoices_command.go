package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand triggers the sweep that moves issued
// invoices past their due date to overdue.
//
// Example:
//
//	cmd := NewMarkOverdueInvoicesCommand()
//	handler := NewMarkOverdueInvoicesCommandHandler(uowFactory)
//
//	// Run periodically by the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Overdue sweep failed: %v", err)
//	}
type MarkOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command to run the overdue
// sweep. This is a parameterless command processing all issued invoices.
func NewMarkOverdueInvoicesCommand() MarkOverdueInvoicesCommand {
	command := MarkOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOverdueInvoicesCommandIsNotConstructed if validation fails.
func (c *MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}
