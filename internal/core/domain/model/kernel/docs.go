// Package kernel contains the shared value objects of the domain model.
// These are small immutable types used across aggregates: UUID for entity
// identity and Money for monetary amounts.
//
// Value objects in this package follow the same rules as the rest of the
// domain model: they are created through validating constructors, their zero
// values are invalid, and they expose a Validate method for use when
// reconstructing state from persistence or external input.
package kernel
