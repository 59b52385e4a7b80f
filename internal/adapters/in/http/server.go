package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// loginLookupTimeout bounds the credential lookup during login so a slow
// identity store answers 503 instead of holding the connection.
const loginLookupTimeout = 2 * time.Second

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	auth       *Auth
	identities ports.IdentityRepository

	// Command handlers
	registerIdentityHandler  commands.RegisterIdentityCommandHandler
	createListingHandler     commands.CreateListingCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	transitionStatusHandler  commands.TransitionOrderStatusCommandHandler
	appendMessageHandler     commands.AppendMessageCommandHandler
	appendDeliverableHandler commands.AppendDeliverableCommandHandler
	attachRatingHandler      commands.AttachRatingCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersForUserQueryHandler
	listListingsHandler queries.ListListingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The identity repository backs credential checks on login.
func NewServer(
	auth *Auth,
	identities ports.IdentityRepository,
	registerIdentityHandler commands.RegisterIdentityCommandHandler,
	createListingHandler commands.CreateListingCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionStatusHandler commands.TransitionOrderStatusCommandHandler,
	appendMessageHandler commands.AppendMessageCommandHandler,
	appendDeliverableHandler commands.AppendDeliverableCommandHandler,
	attachRatingHandler commands.AttachRatingCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersForUserQueryHandler,
	listListingsHandler queries.ListListingsQueryHandler,
) *Server {
	return &Server{
		auth:                     auth,
		identities:               identities,
		registerIdentityHandler:  registerIdentityHandler,
		createListingHandler:     createListingHandler,
		createOrderHandler:       createOrderHandler,
		transitionStatusHandler:  transitionStatusHandler,
		appendMessageHandler:     appendMessageHandler,
		appendDeliverableHandler: appendDeliverableHandler,
		attachRatingHandler:      attachRatingHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		listListingsHandler:      listListingsHandler,
	}
}

// RegisterRoutes wires all endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/listings", s.ListListings)

	protected := api.Group("", s.auth.Middleware())
	protected.POST("/listings", s.CreateListing)
	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders", s.ListOrders)
	protected.GET("/orders/:id", s.GetOrder)
	protected.POST("/orders/:id/status", s.TransitionStatus)
	protected.POST("/orders/:id/messages", s.AppendMessage)
	protected.POST("/orders/:id/deliverables", s.AppendDeliverable)
	protected.POST("/orders/:id/rating", s.AttachRating)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Register handles POST /api/v1/auth/register - creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := identity.RoleFromString(request.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	identityID := kernel.NewUUID()
	cmd, err := commands.NewRegisterIdentityCommand(
		identityID, request.Name, request.Email, request.Password, role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerIdentityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: identityID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lookupCtx, cancel := context.WithTimeout(ctx.Request().Context(), loginLookupTimeout)
	defer cancel()

	account, err := s.identities.GetByEmail(lookupCtx, request.Email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return unauthorized(ctx)
		case errors.Is(err, context.DeadlineExceeded):
			return respondError(ctx, errs.NewUnavailableErrorWithCause("identity", err))
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(request.Password)) != nil {
		return unauthorized(ctx)
	}

	token, err := s.auth.IssueToken(account.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// CreateListing handles POST /api/v1/listings - publishes a new listing.
func (s *Server) CreateListing(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request CreateListingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(request.PriceCents)
	if err != nil {
		return respondError(ctx, err)
	}

	category, err := listing.CategoryFromString(request.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		listingID, actorID, request.Title, request.Description,
		price, request.DeliveryDays, category,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateListingResponse{ID: listingID.String()})
}

// ListListings handles GET /api/v1/listings - serves the public catalog.
func (s *Server) ListListings(ctx echo.Context) error {
	category := listing.CategoryUnknown
	if raw := ctx.QueryParam("category"); raw != "" {
		parsed, err := listing.CategoryFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		category = parsed
	}

	page, limit, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid pagination parameters")
	}

	query, err := queries.NewListListingsQuery(category, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	listings, err := s.listListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ListingResponse, len(listings))
	for i, entry := range listings {
		response[i] = ListingResponse{
			ID:           entry.ID.String(),
			OwnerID:      entry.OwnerID.String(),
			Title:        entry.Title,
			Description:  entry.Description,
			PriceCents:   entry.Price.Cents(),
			DeliveryDays: entry.DeliveryDays,
			Category:     entry.Category,
			TotalOrders:  entry.TotalOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order against a listing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	listingID, err := kernel.UUIDFromString(request.ListingID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actorID, listingID, request.Requirements, derefTime(request.DeliveryDate),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists the actor's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	side, err := queries.OrderSideFromString(ctx.QueryParam("side"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, limit, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid pagination parameters")
	}

	query, err := queries.NewListOrdersForUserQuery(actorID, side, page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, summary := range orders {
		response[i] = OrderSummaryResponse{
			ID:               summary.ID.String(),
			BuyerID:          summary.BuyerID.String(),
			SellerID:         summary.SellerID.String(),
			ListingID:        summary.ListingID.String(),
			Status:           summary.Status,
			TotalAmountCents: summary.TotalAmount.Cents(),
			DeliveryDate:     summary.DeliveryDate,
			CreatedAt:        summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapOrderResponse(result))
}

// TransitionStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) TransitionStatus(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request TransitionStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, actorID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AppendMessage handles POST /api/v1/orders/:id/messages - posts to the
// order's message thread.
func (s *Server) AppendMessage(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request AppendMessageRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAppendMessageCommand(orderID, actorID, request.Text)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.appendMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AppendDeliverable handles POST /api/v1/orders/:id/deliverables - attaches
// an uploaded file reference to the order.
func (s *Server) AppendDeliverable(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request AppendDeliverableRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAppendDeliverableCommand(orderID, actorID, request.FileName, request.FileURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.appendDeliverableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AttachRating handles POST /api/v1/orders/:id/rating - rates a completed order.
func (s *Server) AttachRating(ctx echo.Context) error {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request AttachRatingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachRatingCommand(orderID, actorID, request.Score, request.Review)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.attachRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func mapOrderResponse(result queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:               result.ID.String(),
		BuyerID:          result.BuyerID.String(),
		SellerID:         result.SellerID.String(),
		ListingID:        result.ListingID.String(),
		Requirements:     result.Requirements,
		Status:           result.Status,
		PaymentStatus:    result.PaymentStatus,
		TotalAmountCents: result.TotalAmount.Cents(),
		DeliveryDate:     result.DeliveryDate,
		CreatedAt:        result.CreatedAt,
		Messages:         make([]MessageDTO, len(result.Messages)),
		Deliverables:     make([]DeliverableDTO, len(result.Deliverables)),
	}

	for i, message := range result.Messages {
		response.Messages[i] = MessageDTO{
			SenderID: message.SenderID.String(),
			Text:     message.Text,
			SentAt:   message.SentAt,
		}
	}

	for i, deliverable := range result.Deliverables {
		response.Deliverables[i] = DeliverableDTO{
			FileName:   deliverable.FileName,
			FileURL:    deliverable.FileURL,
			UploadedAt: deliverable.UploadedAt,
		}
	}

	if result.Rating != nil {
		response.Rating = &RatingDTO{
			Score:  result.Rating.Score,
			Review: result.Rating.Review,
		}
	}

	return response
}

// statusFromError maps domain errors onto HTTP status codes. Every endpoint
// funnels its failures through this single mapping.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyRated),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Invalid credentials",
	})
}

func pagination(ctx echo.Context) (int, int, error) {
	page, err := queryInt(ctx, "page")
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
