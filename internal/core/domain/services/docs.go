// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate or that callers need before an aggregate
// is mutated. The AccessGuard decides, per operation, whether an acting
// identity is permitted to touch an order at all.
package services
