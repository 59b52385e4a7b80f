package http

import "time"

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse returns the identifier of the newly registered identity.
type RegisterResponse struct {
	ID string `json:"id"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateListingRequest is the body of POST /api/v1/listings.
type CreateListingRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents"`
	DeliveryDays int    `json:"delivery_days"`
	Category     string `json:"category"`
}

// CreateListingResponse returns the identifier of the published listing.
type CreateListingResponse struct {
	ID string `json:"id"`
}

// ListingResponse is one catalog entry in GET /api/v1/listings.
type ListingResponse struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents"`
	DeliveryDays int    `json:"delivery_days"`
	Category     string `json:"category"`
	TotalOrders  int    `json:"total_orders"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// A missing delivery date defers to the listing's delivery window.
type CreateOrderRequest struct {
	ListingID    string     `json:"listing_id"`
	Requirements string     `json:"requirements"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// CreateOrderResponse returns the identifier of the placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderSummaryResponse is one entry in GET /api/v1/orders.
type OrderSummaryResponse struct {
	ID               string    `json:"id"`
	BuyerID          string    `json:"buyer_id"`
	SellerID         string    `json:"seller_id"`
	ListingID        string    `json:"listing_id"`
	Status           string    `json:"status"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	DeliveryDate     time.Time `json:"delivery_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// MessageDTO is one thread entry inside OrderResponse.
type MessageDTO struct {
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}

// DeliverableDTO is one uploaded file inside OrderResponse.
type DeliverableDTO struct {
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// RatingDTO is the buyer's review inside OrderResponse, present once rated.
type RatingDTO struct {
	Score  int    `json:"score"`
	Review string `json:"review"`
}

// OrderResponse is the full order view returned by GET /api/v1/orders/:id.
type OrderResponse struct {
	ID               string           `json:"id"`
	BuyerID          string           `json:"buyer_id"`
	SellerID         string           `json:"seller_id"`
	ListingID        string           `json:"listing_id"`
	Requirements     string           `json:"requirements"`
	Status           string           `json:"status"`
	PaymentStatus    string           `json:"payment_status"`
	TotalAmountCents int64            `json:"total_amount_cents"`
	DeliveryDate     time.Time        `json:"delivery_date"`
	CreatedAt        time.Time        `json:"created_at"`
	Messages         []MessageDTO     `json:"messages"`
	Deliverables     []DeliverableDTO `json:"deliverables"`
	Rating           *RatingDTO       `json:"rating,omitempty"`
}

// TransitionStatusRequest is the body of POST /api/v1/orders/:id/status.
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// AppendMessageRequest is the body of POST /api/v1/orders/:id/messages.
type AppendMessageRequest struct {
	Text string `json:"text"`
}

// AppendDeliverableRequest is the body of POST /api/v1/orders/:id/deliverables.
type AppendDeliverableRequest struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}

// AttachRatingRequest is the body of POST /api/v1/orders/:id/rating.
type AttachRatingRequest struct {
	Score  int    `json:"score"`
	Review string `json:"review"`
}
