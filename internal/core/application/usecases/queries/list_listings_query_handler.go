package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
)

// ListListingsQueryHandler serves the public listing catalog.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListListingsQueryHandler struct {
	db *gorm.DB
}

// NewListListingsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListListingsQueryHandler(db *gorm.DB) ListListingsQueryHandler {
	return ListListingsQueryHandler{db: db}
}

// Handle executes the query. Returns active listings ordered by title, with
// an optional category filter.
func (h ListListingsQueryHandler) Handle(
	ctx context.Context,
	query ListListingsQuery,
) ([]ListListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			owner_id,
			title,
			description,
			price_cents,
			delivery_days,
			category,
			total_orders
		FROM listings
		WHERE active
	`
	args := make([]any, 0, 3)
	if query.HasCategoryFilter() {
		sqlQuery += " AND category = ?"
		args = append(args, query.Category().String())
	}
	sqlQuery += " ORDER BY title, id LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]ListListingsQueryResponse, 0)
	for rows.Next() {
		var response ListListingsQueryResponse
		var id, ownerID uuid.UUID
		var priceCents int64

		err = rows.Scan(
			&id, &ownerID,
			&response.Title, &response.Description,
			&priceCents, &response.DeliveryDays,
			&response.Category, &response.TotalOrders,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if response.Price, err = kernel.NewMoney(priceCents); err != nil {
			return nil, err
		}

		listings = append(listings, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
