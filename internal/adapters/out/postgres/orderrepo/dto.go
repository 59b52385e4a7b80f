// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string names so the rows stay readable and the
// read-side SQL needs no decoding table. The rating lives inline: it is
// at-most-one per order and its absence (NULL score) is what the conditional
// rating update checks.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID          uuid.UUID `gorm:"type:uuid;index"`
	SellerID         uuid.UUID `gorm:"type:uuid;index"`
	ListingID        uuid.UUID `gorm:"type:uuid;index"`
	Requirements     string
	Status           string `gorm:"index"`
	TotalAmountCents int64
	DeliveryDate     time.Time
	CreatedAt        time.Time
	RatingScore      *int
	RatingReview     *string
	PaymentStatus    string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// MessageDTO represents one row of an order's conversation thread.
// Rows are append-only; nothing ever updates or deletes them.
type MessageDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	SenderID uuid.UUID `gorm:"type:uuid"`
	Text     string
	SentAt   time.Time
}

// TableName specifies the database table name for order messages.
func (MessageDTO) TableName() string {
	return "order_messages"
}

// DeliverableDTO represents one file reference attached to an order.
// Append-only, like messages.
type DeliverableDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FileName   string
	FileURL    string
	UploadedAt time.Time
}

// TableName specifies the database table name for order deliverables.
func (DeliverableDTO) TableName() string {
	return "order_deliverables"
}

// fromDomain converts an order domain aggregate to its database representation.
// Child collections are not included; they are persisted row by row through
// the append operations.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		BuyerID:          aggregate.BuyerID().Bytes(),
		SellerID:         aggregate.SellerID().Bytes(),
		ListingID:        aggregate.ListingID().Bytes(),
		Requirements:     aggregate.Requirements(),
		Status:           aggregate.Status().String(),
		TotalAmountCents: aggregate.TotalAmount().Cents(),
		DeliveryDate:     aggregate.DeliveryDate(),
		CreatedAt:        aggregate.CreatedAt(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
	}

	if rating := aggregate.Rating(); rating != nil {
		score := rating.Score()
		review := rating.Review()
		dto.RatingScore = &score
		dto.RatingReview = &review
	}

	return dto
}

func messageFromDomain(orderID kernel.UUID, message order.Message) MessageDTO {
	return MessageDTO{
		OrderID:  orderID.Bytes(),
		SenderID: message.SenderID().Bytes(),
		Text:     message.Text(),
		SentAt:   message.SentAt(),
	}
}

func deliverableFromDomain(orderID kernel.UUID, deliverable order.Deliverable) DeliverableDTO {
	return DeliverableDTO{
		OrderID:    orderID.Bytes(),
		FileName:   deliverable.FileName(),
		FileURL:    deliverable.FileURL(),
		UploadedAt: deliverable.UploadedAt(),
	}
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including thread, deliverables and
// rating using RestoreOrder.
func toDomain(dto OrderDTO, messageDTOs []MessageDTO, deliverableDTOs []DeliverableDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	messages := make([]order.Message, 0, len(messageDTOs))
	for _, messageDTO := range messageDTOs {
		senderID, senderErr := kernel.UUIDFromBytes(messageDTO.SenderID[:])
		if senderErr != nil {
			return nil, senderErr
		}

		message, msgErr := order.RestoreMessage(senderID, messageDTO.Text, messageDTO.SentAt)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	deliverables := make([]order.Deliverable, 0, len(deliverableDTOs))
	for _, deliverableDTO := range deliverableDTOs {
		deliverable, dErr := order.RestoreDeliverable(
			deliverableDTO.FileName, deliverableDTO.FileURL, deliverableDTO.UploadedAt,
		)
		if dErr != nil {
			return nil, dErr
		}
		deliverables = append(deliverables, deliverable)
	}

	var rating *order.Rating
	if dto.RatingScore != nil {
		var review string
		if dto.RatingReview != nil {
			review = *dto.RatingReview
		}

		restored, rErr := order.RestoreRating(*dto.RatingScore, review)
		if rErr != nil {
			return nil, rErr
		}
		rating = &restored
	}

	return order.RestoreOrder(
		id, buyerID, sellerID, listingID,
		dto.Requirements, status, totalAmount,
		dto.DeliveryDate, dto.CreatedAt,
		messages, deliverables, rating,
		paymentStatus,
	)
}
