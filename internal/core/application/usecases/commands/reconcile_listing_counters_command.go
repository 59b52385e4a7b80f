package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrReconcileListingCountersCommandIsNotConstructed = errors.New(
		"ReconcileListingCountersCommand must be created via NewReconcileListingCountersCommand constructor",
	)
)

// ReconcileListingCountersCommand triggers a rewrite of every listing's order
// counter from the actual order rows. The per-order increment is best effort,
// so counters drift; this batch operation brings them back in line.
//
// Example:
//
//	cmd := NewReconcileListingCountersCommand()
//	handler := NewReconcileListingCountersCommandHandler(uowFactory)
//
//	// Run periodically from the job scheduler
//	changed, err := handler.Handle(ctx, cmd)
type ReconcileListingCountersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileListingCountersCommand creates a command to reconcile listing counters.
// This is a parameterless command that processes all listings.
func NewReconcileListingCountersCommand() ReconcileListingCountersCommand {
	command := ReconcileListingCountersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileListingCountersCommandIsNotConstructed if validation fails.
func (c *ReconcileListingCountersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileListingCountersCommandIsNotConstructed)
}
