package http

import (
	"errors"
	"net/http"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server exposes the ordering API over HTTP.
// It binds and validates requests, dispatches to application use cases and
// maps their outcomes onto status codes: field errors become 422, unknown
// resources 404 and rejected state changes 409.
type Server struct {
	validate *validator.Validate

	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	submitReviewHandler      commands.SubmitReviewCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		validate:                 newRequestValidator(),
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		assignDriverHandler:      assignDriverHandler,
		submitReviewHandler:      submitReviewHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/driver", s.AssignDriver)
	v1.POST("/orders/:id/reviews", s.SubmitReview)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, tagFieldErrors(err))
	}

	lines, deliveryFee, fieldErrs := req.CartLines()
	if fieldErrs.HasErrors() {
		return unprocessable(ctx, fieldErrs)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.Payload(), lines, deliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	fieldErrs, err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create order")
	}
	if fieldErrs.HasErrors() {
		return unprocessable(ctx, fieldErrs)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{
		Success: true,
		ID:      orderID.String(),
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return unprocessable(ctx, tagFieldErrors(err))
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		fieldErrs := services.FieldErrors{}
		fieldErrs.Add("status", "is not a known status")
		return unprocessable(ctx, fieldErrs)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, commands.ErrStatusTransitionNotAllowed):
		return conflict(ctx, "Status transition not allowed")
	case err != nil:
		return internalError(ctx, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Success: true})
}

// AssignDriver handles POST /api/v1/orders/:id/driver - records the driver
// picked by the assignment service.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return unprocessable(ctx, tagFieldErrors(err))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, order.ErrDriverAlreadyAssigned):
		return conflict(ctx, "Order already has a driver assigned")
	case err != nil:
		return internalError(ctx, "Failed to assign driver")
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Success: true})
}

// SubmitReview handles POST /api/v1/orders/:id/reviews - submits a review for
// a delivered order or one of its dishes.
func (s *Server) SubmitReview(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SubmitReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return unprocessable(ctx, tagFieldErrors(err))
	}

	var dishID *kernel.UUID
	if req.DishID != "" {
		parsed, dishErr := kernel.UUIDFromString(req.DishID)
		if dishErr != nil {
			return badRequest(ctx, "Invalid dish id")
		}
		dishID = &parsed
	}

	imageIDs := make([]kernel.UUID, 0, len(req.ImageIDs))
	for _, raw := range req.ImageIDs {
		imageID, imgErr := kernel.UUIDFromString(raw)
		if imgErr != nil {
			return badRequest(ctx, "Invalid image id")
		}
		imageIDs = append(imageIDs, imageID)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(
		reviewID, orderID, dishID, req.Rating, req.Comment, imageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	err = s.submitReviewHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case err != nil:
		return internalError(ctx, "Failed to submit review")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{
		Success: true,
		ID:      reviewID.String(),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// not yet delivered or cancelled.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = activeOrderResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderResponse(row))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}

func unprocessable(ctx echo.Context, fieldErrs services.FieldErrors) error {
	return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrs,
	})
}
