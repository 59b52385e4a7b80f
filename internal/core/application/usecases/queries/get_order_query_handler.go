package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order with messages and deliverables.
// The row set is restored into the order aggregate so the access guard can
// decide whether the actor may see it at all.
type GetOrderQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and ForbiddenError when the actor is not a participant.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = h.accessGuard.Authorize(query.ActorID(), aggregate, services.OpReadOrder); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return mapOrderToResponse(aggregate), nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			seller_id,
			listing_id,
			requirements,
			status,
			total_amount_cents,
			delivery_date,
			created_at,
			rating_score,
			rating_review,
			payment_status
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id, buyerID, sellerID, listingID uuid.UUID
		requirements, status             string
		totalAmountCents                 int64
		deliveryDate, createdAt          time.Time
		ratingScore                      sql.NullInt64
		ratingReview                     sql.NullString
		paymentStatus                    string
	)

	err := row.Scan(
		&id, &buyerID, &sellerID, &listingID,
		&requirements, &status, &totalAmountCents,
		&deliveryDate, &createdAt,
		&ratingScore, &ratingReview, &paymentStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	messages, err := h.loadMessages(ctx, orderID)
	if err != nil {
		return nil, err
	}

	deliverables, err := h.loadDeliverables(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return restoreOrder(restoredOrderRow{
		id:               id,
		buyerID:          buyerID,
		sellerID:         sellerID,
		listingID:        listingID,
		requirements:     requirements,
		status:           status,
		totalAmountCents: totalAmountCents,
		deliveryDate:     deliveryDate,
		createdAt:        createdAt,
		ratingScore:      ratingScore,
		ratingReview:     ratingReview,
		paymentStatus:    paymentStatus,
		messages:         messages,
		deliverables:     deliverables,
	})
}

func (h GetOrderQueryHandler) loadMessages(ctx context.Context, orderID kernel.UUID) ([]order.Message, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sender_id, text, sent_at
		FROM order_messages
		WHERE order_id = ?
		ORDER BY sent_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []order.Message
	for rows.Next() {
		var senderID uuid.UUID
		var text string
		var sentAt time.Time
		if err = rows.Scan(&senderID, &text, &sentAt); err != nil {
			return nil, err
		}

		sender, idErr := kernel.UUIDFromBytes(senderID[:])
		if idErr != nil {
			return nil, idErr
		}

		message, msgErr := order.RestoreMessage(sender, text, sentAt)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func (h GetOrderQueryHandler) loadDeliverables(ctx context.Context, orderID kernel.UUID) ([]order.Deliverable, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT file_name, file_url, uploaded_at
		FROM order_deliverables
		WHERE order_id = ?
		ORDER BY uploaded_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliverables []order.Deliverable
	for rows.Next() {
		var fileName, fileURL string
		var uploadedAt time.Time
		if err = rows.Scan(&fileName, &fileURL, &uploadedAt); err != nil {
			return nil, err
		}

		deliverable, dErr := order.RestoreDeliverable(fileName, fileURL, uploadedAt)
		if dErr != nil {
			return nil, dErr
		}
		deliverables = append(deliverables, deliverable)
	}

	return deliverables, rows.Err()
}

type restoredOrderRow struct {
	id               uuid.UUID
	buyerID          uuid.UUID
	sellerID         uuid.UUID
	listingID        uuid.UUID
	requirements     string
	status           string
	totalAmountCents int64
	deliveryDate     time.Time
	createdAt        time.Time
	ratingScore      sql.NullInt64
	ratingReview     sql.NullString
	paymentStatus    string
	messages         []order.Message
	deliverables     []order.Deliverable
}

func restoreOrder(row restoredOrderRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.id[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(row.buyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(row.sellerID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(row.listingID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(row.status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(row.paymentStatus)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(row.totalAmountCents)
	if err != nil {
		return nil, err
	}

	var rating *order.Rating
	if row.ratingScore.Valid {
		restored, rErr := order.RestoreRating(int(row.ratingScore.Int64), row.ratingReview.String)
		if rErr != nil {
			return nil, rErr
		}
		rating = &restored
	}

	return order.RestoreOrder(
		id, buyerID, sellerID, listingID,
		row.requirements, status, totalAmount,
		row.deliveryDate, row.createdAt,
		row.messages, row.deliverables, rating,
		paymentStatus,
	)
}

func mapOrderToResponse(aggregate *order.Order) GetOrderQueryResponse {
	response := GetOrderQueryResponse{
		ID:            aggregate.ID(),
		BuyerID:       aggregate.BuyerID(),
		SellerID:      aggregate.SellerID(),
		ListingID:     aggregate.ListingID(),
		Requirements:  aggregate.Requirements(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount(),
		DeliveryDate:  aggregate.DeliveryDate(),
		CreatedAt:     aggregate.CreatedAt(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Messages:      make([]MessageResponse, 0, len(aggregate.Messages())),
		Deliverables:  make([]DeliverableResponse, 0, len(aggregate.Deliverables())),
	}

	for _, message := range aggregate.Messages() {
		response.Messages = append(response.Messages, MessageResponse{
			SenderID: message.SenderID(),
			Text:     message.Text(),
			SentAt:   message.SentAt(),
		})
	}

	for _, deliverable := range aggregate.Deliverables() {
		response.Deliverables = append(response.Deliverables, DeliverableResponse{
			FileName:   deliverable.FileName(),
			FileURL:    deliverable.FileURL(),
			UploadedAt: deliverable.UploadedAt(),
		})
	}

	if rating := aggregate.Rating(); rating != nil {
		response.Rating = &RatingResponse{
			Score:  rating.Score(),
			Review: rating.Review(),
		}
	}

	return response
}
