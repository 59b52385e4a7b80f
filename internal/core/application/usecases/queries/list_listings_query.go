package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListListingsQueryIsNotConstructed = errors.New(
		"ListListingsQuery must be created via NewListListingsQuery constructor",
	)
)

// ListListingsQuery retrieves active listings, optionally filtered by
// category. This is the public catalog view; inactive listings never appear.
type ListListingsQuery struct { //nolint:recvcheck //using for validation
	category listing.Category
	page     int
	limit    int

	guard guard.ConstructorGuard
}

// NewListListingsQuery creates a paginated catalog query.
// CategoryUnknown means no category filter. Zero page or limit fall back to
// the first page and DefaultPageSize.
func NewListListingsQuery(category listing.Category, page, limit int) (ListListingsQuery, error) {
	query := ListListingsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCategory(category),
		query.setPage(page),
		query.setLimit(limit),
	); err != nil {
		return ListListingsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListListingsQuery) Validate() error {
	return q.guard.Validate(ErrListListingsQueryIsNotConstructed)
}

// Category returns the category filter, CategoryUnknown for none.
func (q ListListingsQuery) Category() listing.Category {
	return q.category
}

// HasCategoryFilter reports whether a category filter is set.
func (q ListListingsQuery) HasCategoryFilter() bool {
	return q.category != listing.CategoryUnknown
}

// Page returns the 1-based page number.
func (q ListListingsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListListingsQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset implied by page and limit.
func (q ListListingsQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *ListListingsQuery) setCategory(category listing.Category) error {
	if category == listing.CategoryUnknown {
		return nil
	}
	if err := category.Validate(); err != nil {
		return err
	}

	q.category = category
	return nil
}

func (q *ListListingsQuery) setPage(page int) error {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *ListListingsQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}

	q.limit = limit
	return nil
}

// ListListingsQueryResponse is one catalog row.
type ListListingsQueryResponse struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Title        string
	Description  string
	Price        kernel.Money
	DeliveryDays int
	Category     string
	TotalOrders  int
}
