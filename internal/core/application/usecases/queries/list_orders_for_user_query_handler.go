package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
)

// ListOrdersForUserQueryHandler lists the orders a user participates in.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersForUserQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersForUserQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersForUserQueryHandler(db *gorm.DB) ListOrdersForUserQueryHandler {
	return ListOrdersForUserQueryHandler{db: db}
}

// Handle executes the query. Returns order summaries where the user is buyer
// or seller, newest first.
func (h ListOrdersForUserQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersForUserQuery,
) ([]ListOrdersForUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersForUserQueryResponse, 0)

	condition, args := sideCondition(query)
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			seller_id,
			listing_id,
			status,
			total_amount_cents,
			delivery_date,
			created_at
		FROM orders
		WHERE `+condition+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ListOrdersForUserQueryResponse
		var id, buyerID, sellerID, listingID uuid.UUID
		var totalAmountCents int64
		var deliveryDate, createdAt time.Time

		err = rows.Scan(
			&id, &buyerID, &sellerID, &listingID,
			&summary.Status, &totalAmountCents,
			&deliveryDate, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if summary.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if summary.ListingID, err = kernel.UUIDFromBytes(listingID[:]); err != nil {
			return nil, err
		}
		if summary.TotalAmount, err = kernel.NewMoney(totalAmountCents); err != nil {
			return nil, err
		}

		summary.DeliveryDate = deliveryDate
		summary.CreatedAt = createdAt
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func sideCondition(query ListOrdersForUserQuery) (string, []any) {
	userID := query.UserID().Bytes()

	switch query.Side() {
	case SideBuyer:
		return "buyer_id = ?", []any{userID}
	case SideSeller:
		return "seller_id = ?", []any{userID}
	default:
		return "(buyer_id = ? OR seller_id = ?)", []any{userID, userID}
	}
}
