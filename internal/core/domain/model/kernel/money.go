package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// the NewMoney constructor. This error is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a monetary amount in minor currency
// units (cents). Amounts are always non-negative; the marketplace has no
// concept of a negative price or order total.
//
// Money is immutable. A value copied from a listing price at order creation
// time is a snapshot: it does not track later changes to the listing.
//
// Example usage:
//
//	price, err := kernel.NewMoney(10000) // 100.00 in minor units
//	if err != nil {
//	    // handle error
//	}
type Money struct {
	cents int64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor currency units.
// The amount must be non-negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, e.g. "100.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate checks that the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
