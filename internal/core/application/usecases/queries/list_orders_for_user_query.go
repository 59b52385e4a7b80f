package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultPageSize is used when a query does not specify a limit.
	DefaultPageSize = 20

	// MaxPageSize caps the number of rows one page can request.
	MaxPageSize = 100
)

var (
	ErrListOrdersForUserQueryIsNotConstructed = errors.New(
		"ListOrdersForUserQuery must be created via NewListOrdersForUserQuery constructor",
	)
)

// OrderSide selects which side of the order relation a listing covers.
type OrderSide int

const (
	// SideAny lists orders where the user is buyer or seller.
	SideAny OrderSide = iota

	// SideBuyer lists only orders the user placed.
	SideBuyer

	// SideSeller lists only orders the user fulfils.
	SideSeller
)

// OrderSideFromString parses a side selector from its transport form.
// An empty string means both sides.
func OrderSideFromString(s string) (OrderSide, error) {
	switch s {
	case "":
		return SideAny, nil
	case "buyer":
		return SideBuyer, nil
	case "seller":
		return SideSeller, nil
	default:
		return SideAny, errs.NewValueIsInvalidErrorWithCause("side",
			errors.New(`side must be "buyer" or "seller"`))
	}
}

// ListOrdersForUserQuery retrieves the orders a user participates in on the
// selected side, newest first.
type ListOrdersForUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	side   OrderSide
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersForUserQuery creates a paginated query over a user's orders.
// Zero page or limit fall back to the first page and DefaultPageSize.
func NewListOrdersForUserQuery(userID kernel.UUID, side OrderSide, page, limit int) (ListOrdersForUserQuery, error) {
	query := ListOrdersForUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setSide(side),
		query.setPage(page),
		query.setLimit(limit),
	); err != nil {
		return ListOrdersForUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersForUserQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersForUserQueryIsNotConstructed)
}

// UserID returns the participant whose orders are listed.
func (q ListOrdersForUserQuery) UserID() kernel.UUID {
	return q.userID
}

// Side returns which side of the orders the user is viewed from.
func (q ListOrdersForUserQuery) Side() OrderSide {
	return q.side
}

// Page returns the 1-based page number.
func (q ListOrdersForUserQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersForUserQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset implied by page and limit.
func (q ListOrdersForUserQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *ListOrdersForUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *ListOrdersForUserQuery) setSide(side OrderSide) error {
	if side != SideAny && side != SideBuyer && side != SideSeller {
		return errs.NewValueIsInvalidError("side")
	}

	q.side = side
	return nil
}

func (q *ListOrdersForUserQuery) setPage(page int) error {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *ListOrdersForUserQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}

	q.limit = limit
	return nil
}

// ListOrdersForUserQueryResponse is one order summary row.
type ListOrdersForUserQueryResponse struct {
	ID           kernel.UUID
	BuyerID      kernel.UUID
	SellerID     kernel.UUID
	ListingID    kernel.UUID
	Status       string
	TotalAmount  kernel.Money
	DeliveryDate time.Time
	CreatedAt    time.Time
}
