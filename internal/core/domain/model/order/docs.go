// Package order contains the Order aggregate, the central entity of the
// marketplace core. An order is placed by a buyer against a seller's listing
// and moves through a defined status graph:
//
//	Pending ──> Accepted ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴──> Cancelled│
//	   └────────────┴─────────────┴──> Disputed
//
// Completed, Cancelled and Disputed are terminal. Disputed is reachable from
// every non-terminal status. Who may trigger each transition depends on the
// actor's relationship to the order (buyer or seller), not on their global
// role, and is enforced by the aggregate itself.
//
// Messages and deliverables are append-only child collections. The rating is
// settable at most once, by the buyer, after completion. The order total is a
// snapshot of the listing price at creation time and never tracks later price
// changes.
package order
