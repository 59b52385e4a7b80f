// Package identity contains the Identity aggregate: a registered marketplace
// actor with a role, credentials, and the reputation figures maintained by the
// order lifecycle (aggregate rating and completed-order count).
package identity

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// MinAggregateRating is the lower bound of an identity's aggregate rating.
	MinAggregateRating = 0.0
	// MaxAggregateRating is the upper bound of an identity's aggregate rating.
	MaxAggregateRating = 5.0
)

// ErrIdentityIsNotConstructed is returned when using an improperly initialized Identity.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity or RestoreIdentity constructor")

// Identity represents a registered marketplace actor. An identity registers
// with a role (client or freelancer) but may act as either side of an order in
// practice; the order core derives the effective relationship per order.
//
// The aggregate rating is the running mean of all rated, completed orders
// where this identity was the seller, always within [0,5]. The completed-order
// counter increments each time one of the identity's sold orders completes.
// Identities are never deleted by this core.
type Identity struct {
	// id uniquely identifies the actor
	id kernel.UUID
	// name is the public display name
	name string
	// email is the unique login email, stored lowercased
	email string
	// passwordHash is the bcrypt hash of the login password
	passwordHash string
	// role is the registered marketplace role
	role Role
	// rating is the aggregate seller rating in [0,5]
	rating float64
	// completedOrders counts completed orders sold by this identity
	completedOrders int
	// guard ensures the identity was properly constructed
	guard guard.ConstructorGuard
}

// NewIdentity creates a freshly registered identity with no reputation yet.
//
// The email is normalized to lower case. The password hash must already be
// computed by the caller; the domain never sees plain-text passwords.
func NewIdentity(id kernel.UUID, name, email, passwordHash string, role Role) (*Identity, error) {
	i := &Identity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setEmail(email),
		i.setPasswordHash(passwordHash),
		i.setRole(role),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreIdentity reconstructs an Identity aggregate from persistent storage,
// including its reputation figures.
func RestoreIdentity(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	rating float64,
	completedOrders int,
) (*Identity, error) {
	i, err := NewIdentity(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	if err = i.ApplyAggregateRating(rating); err != nil {
		return nil, err
	}
	if completedOrders < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedOrders",
			fmt.Errorf("%d is negative", completedOrders))
	}
	i.completedOrders = completedOrders

	return i, nil
}

// Validate ensures the Identity instance was properly constructed.
func (i *Identity) Validate() error {
	if i == nil {
		return ErrIdentityIsNotConstructed
	}
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

// IsEqual compares two identities by their unique identifiers.
func (i *Identity) IsEqual(other *Identity) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the identity's unique identifier.
func (i *Identity) ID() kernel.UUID {
	return i.id
}

// Name returns the public display name.
func (i *Identity) Name() string {
	return i.name
}

// Email returns the lowercased login email.
func (i *Identity) Email() string {
	return i.email
}

// PasswordHash returns the stored bcrypt hash.
func (i *Identity) PasswordHash() string {
	return i.passwordHash
}

// Role returns the registered marketplace role.
func (i *Identity) Role() Role {
	return i.role
}

// Rating returns the aggregate seller rating in [0,5].
func (i *Identity) Rating() float64 {
	return i.rating
}

// CompletedOrders returns the number of completed orders sold by this identity.
func (i *Identity) CompletedOrders() int {
	return i.completedOrders
}

// RecordCompletedOrder increments the completed-order counter.
// Called once per order, in the same transaction that moves the order to
// its completed status.
func (i *Identity) RecordCompletedOrder() {
	i.completedOrders++
}

// ApplyAggregateRating replaces the identity's aggregate rating with a freshly
// recomputed mean. The value must lie within [0,5].
func (i *Identity) ApplyAggregateRating(rating float64) error {
	if rating < MinAggregateRating || rating > MaxAggregateRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinAggregateRating, MaxAggregateRating)
	}

	i.rating = rating
	return nil
}

func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Identity) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Identity) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	i.email = strings.ToLower(email)
	return nil
}

func (i *Identity) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	i.passwordHash = passwordHash
	return nil
}

func (i *Identity) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	i.role = role
	return nil
}
