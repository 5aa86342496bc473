package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dispatch use cases over HTTP.
// It coordinates between echo handlers and application command/query handlers.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	registerPartnerHandler    commands.RegisterPartnerCommandHandler
	updatePartnerHandler      commands.UpdatePartnerCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	assignPartnerHandler      commands.AssignPartnerCommandHandler
	runSmartAssignmentHandler commands.RunSmartAssignmentCommandHandler

	// Query handlers
	getOrdersHandler            queries.GetOrdersQueryHandler
	getPartnersHandler          queries.GetPartnersQueryHandler
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler
	getDashboardMetricsHandler  queries.GetDashboardMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	registerPartnerHandler commands.RegisterPartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	runSmartAssignmentHandler commands.RunSmartAssignmentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getPartnersHandler queries.GetPartnersQueryHandler,
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler,
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler,
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		registerPartnerHandler:      registerPartnerHandler,
		updatePartnerHandler:        updatePartnerHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignPartnerHandler:        assignPartnerHandler,
		runSmartAssignmentHandler:   runSmartAssignmentHandler,
		getOrdersHandler:            getOrdersHandler,
		getPartnersHandler:          getPartnersHandler,
		getAssignmentMetricsHandler: getAssignmentMetricsHandler,
		getAssignmentHistoryHandler: getAssignmentHistoryHandler,
		getDashboardMetricsHandler:  getDashboardMetricsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/assign", s.AssignPartner)

	v1.POST("/partners", s.RegisterPartner)
	v1.GET("/partners", s.GetPartners)
	v1.PUT("/partners/:id", s.UpdatePartner)

	v1.POST("/assignments/run", s.RunSmartAssignment)
	v1.GET("/assignments/metrics", s.GetAssignmentMetrics)
	v1.GET("/assignments/history", s.GetAssignmentHistory)

	v1.GET("/dashboard", s.GetDashboard)
}

// CreateOrder handles POST /api/v1/orders - places a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	// Orders without an explicit delivery time default to half an hour out.
	if req.ScheduledFor == "" {
		req.ScheduledFor = kernel.TimeOfDayFromClock(time.Now().UTC().Add(30 * time.Minute)).String()
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerAddress,
		req.Area,
		items,
		req.ScheduledFor,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		ID:          cmd.OrderID().String(),
		OrderNumber: cmd.OrderNumber(),
	})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// status and area.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("area"),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:           o.ID.String(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Area:         o.Area,
			Status:       o.Status.String(),
			PartnerID:    uuidPtrToString(o.PartnerID),
			TotalAmount:  o.TotalAmount,
			ScheduledFor: o.ScheduledFor,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// through its fulfillment lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req OrderStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPartner handles POST /api/v1/orders/assign - manually assigns a
// specific partner to a specific order. An ineligible partner yields 422 with
// the recorded failed attempt.
func (s *Server) AssignPartner(ctx echo.Context) error {
	var req AssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(
		orderID,
		partnerID,
		kernel.TimeOfDayFromClock(time.Now().UTC()),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	attempt, handleErr := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if errors.Is(handleErr, commands.ErrPartnerNotEligible) && attempt != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, attemptToResponse(attempt))
		}
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, attemptToResponse(attempt))
}

// RegisterPartner handles POST /api/v1/partners - registers a delivery partner.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var req NewPartner
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterPartnerCommand(
		req.Name,
		req.Email,
		req.Phone,
		req.Areas,
		req.ShiftStart,
		req.ShiftEnd,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.registerPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PartnerCreated{ID: cmd.PartnerID().String()})
}

// GetPartners handles GET /api/v1/partners - lists the partner roster.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetPartnersQuery()

	partners, err := s.getPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Partner, len(partners))
	for i, p := range partners {
		response[i] = Partner{
			ID:              p.ID.String(),
			Name:            p.Name,
			Email:           p.Email,
			Phone:           p.Phone,
			Status:          p.Status.String(),
			CurrentLoad:     p.CurrentLoad,
			Areas:           p.Areas,
			ShiftStart:      p.ShiftStart,
			ShiftEnd:        p.ShiftEnd,
			Rating:          p.Rating,
			CompletedOrders: p.CompletedOrders,
			CancelledOrders: p.CancelledOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdatePartner handles PUT /api/v1/partners/:id - replaces a partner's
// contact, coverage, shift and activity status.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	var req PartnerUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePartnerCommand(
		partnerID,
		req.Phone,
		req.Areas,
		req.ShiftStart,
		req.ShiftEnd,
		req.Status,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RunSmartAssignment handles POST /api/v1/assignments/run - runs one batch
// dispatch sweep on demand. Ad-hoc runs record skipped orders in the ledger.
func (s *Server) RunSmartAssignment(ctx echo.Context) error {
	cmd, err := commands.NewRunSmartAssignmentCommand(
		kernel.TimeOfDayFromClock(time.Now().UTC()),
		true,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, handleErr := s.runSmartAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, AssignmentRunResult{
		Assigned: result.Assigned,
		Skipped:  result.Skipped,
	})
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics - aggregates
// the assignment attempt ledger.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	metrics, err := s.getAssignmentMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	reasons := make([]FailureReason, len(metrics.FailureReasons))
	for i, r := range metrics.FailureReasons {
		reasons[i] = FailureReason{Reason: r.Reason, Count: r.Count}
	}

	return ctx.JSON(http.StatusOK, AssignmentMetrics{
		TotalAttempts:  metrics.TotalAttempts,
		Successful:     metrics.Successful,
		Failed:         metrics.Failed,
		SuccessRate:    metrics.SuccessRate,
		FailureReasons: reasons,
	})
}

// GetAssignmentHistory handles GET /api/v1/assignments/history - lists recent
// ledger entries with joined order and partner summaries.
func (s *Server) GetAssignmentHistory(ctx echo.Context) error {
	query, err := queries.NewGetAssignmentHistoryQuery(time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getAssignmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AssignmentHistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = AssignmentHistoryEntry{
			ID:          e.AttemptID.String(),
			OrderID:     e.OrderID.String(),
			OrderNumber: e.OrderNumber,
			PartnerID:   uuidPtrToString(e.PartnerID),
			PartnerName: e.PartnerName,
			Status:      e.Status.String(),
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /api/v1/dashboard - returns the operational
// counters for the dispatch dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardMetricsQuery()

	metrics, err := s.getDashboardMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardMetrics{
		TotalOrders:       metrics.TotalOrders,
		ActiveOrders:      metrics.ActiveOrders,
		PendingOrders:     metrics.PendingOrders,
		AssignedOrders:    metrics.AssignedOrders,
		PickedOrders:      metrics.PickedOrders,
		DeliveredOrders:   metrics.DeliveredOrders,
		CancelledOrders:   metrics.CancelledOrders,
		TotalPartners:     metrics.TotalPartners,
		ActivePartners:    metrics.ActivePartners,
		AvailablePartners: metrics.AvailablePartners,
		SuccessRate:       metrics.SuccessRate,
	})
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes: missing objects
// become 404, state and version conflicts 409, validation failures 400,
// business rejections 422. Anything else is an infrastructure fault.
func writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrOrderNotAssignable),
		errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrPartnerNotEligible):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
