// Package http exposes the shipment lifecycle over a JSON HTTP API.
// Handlers translate requests into commands and queries and map domain errors
// onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the JSON error envelope of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterOrderRequest is the body of POST /api/v1/orders.
// OrderId is optional; the service generates one when absent.
type RegisterOrderRequest struct {
	OrderID string `json:"orderId,omitempty"`
}

// RegisterOrderResponse confirms a registered order.
type RegisterOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// UpdateStatusRequest is the body of POST /api/v1/shipment/status.
type UpdateStatusRequest struct {
	OrderID       string     `json:"orderId"`
	NewStatus     string     `json:"newStatus"`
	UpdatedBy     string     `json:"updatedBy"`
	WaybillNumber string     `json:"waybillNumber,omitempty"`
	TrackingURL   string     `json:"trackingUrl,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	DeliveryNotes string     `json:"deliveryNotes,omitempty"`
}

// UpdateStatusResponse confirms an applied transition.
type UpdateStatusResponse struct {
	Success   bool   `json:"success"`
	NewStatus string `json:"newStatus"`
}

// ShipmentRequest is the body of POST /api/v1/shipment and
// POST /api/v1/shipment/edit.
type ShipmentRequest struct {
	OrderID        string `json:"orderId"`
	Mode           string `json:"mode"`
	WeightGrams    int    `json:"weightGrams"`
	LengthCm       int    `json:"lengthCm"`
	WidthCm        int    `json:"widthCm"`
	HeightCm       int    `json:"heightCm"`
	PickupLocation string `json:"pickupLocation"`
}

// ShipmentDetailsResponse is the shipment record part of the shipment view.
type ShipmentDetailsResponse struct {
	Mode           string    `json:"mode"`
	WeightGrams    int       `json:"weightGrams"`
	LengthCm       int       `json:"lengthCm"`
	WidthCm        int       `json:"widthCm"`
	HeightCm       int       `json:"heightCm"`
	PickupLocation string    `json:"pickupLocation"`
	WaybillNumbers []string  `json:"waybillNumbers"`
	TrackingURL    string    `json:"trackingUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ShipmentViewResponse is the response of GET /api/v1/shipment.
type ShipmentViewResponse struct {
	OrderID           string                   `json:"orderId"`
	Status            string                   `json:"status"`
	ShipmentCreated   bool                     `json:"shipmentCreated"`
	CanCreateShipment bool                     `json:"canCreateShipment"`
	Shipment          *ShipmentDetailsResponse `json:"shipment,omitempty"`
}

// NextStatusesResponse is the response of GET /api/v1/shipment/status.
type NextStatusesResponse struct {
	OrderID         string   `json:"orderId"`
	CurrentStatus   string   `json:"currentStatus"`
	NextStatuses    []string `json:"nextStatuses"`
	CanUpdateStatus bool     `json:"canUpdateStatus"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler  commands.RegisterOrderCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler
	editShipmentHandler   commands.EditShipmentCommandHandler

	// Query handlers
	getShipmentHandler     queries.GetShipmentQueryHandler
	getNextStatusesHandler queries.GetNextStatusesQueryHandler

	openapi []byte
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	editShipmentHandler commands.EditShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getNextStatusesHandler queries.GetNextStatusesQueryHandler,
) (*Server, error) {
	openapi, err := OpenAPIJSON()
	if err != nil {
		return nil, err
	}

	return &Server{
		registerOrderHandler:   registerOrderHandler,
		updateStatusHandler:    updateStatusHandler,
		createShipmentHandler:  createShipmentHandler,
		editShipmentHandler:    editShipmentHandler,
		getShipmentHandler:     getShipmentHandler,
		getNextStatusesHandler: getNextStatusesHandler,
		openapi:                openapi,
	}, nil
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPI)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.RegisterOrder)
	v1.GET("/shipment", s.GetShipment)
	v1.POST("/shipment", s.CreateShipment)
	v1.POST("/shipment/edit", s.EditShipment)
	v1.GET("/shipment/status", s.GetNextStatuses)
	v1.POST("/shipment/status", s.UpdateStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OpenAPI handles GET /openapi.json - serves the validated API contract.
func (s *Server) OpenAPI(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, s.openapi)
}

// RegisterOrder handles POST /api/v1/orders - registers a new order in
// Pending status.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var req RegisterOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.OrderID != "" {
		parsed, err := kernel.UUIDFromString(req.OrderID)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderID = parsed
	}

	cmd, err := commands.NewRegisterOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterOrderResponse{
		OrderID: orderID.String(),
		Status:  order.Pending.String(),
	})
}

// GetShipment handles GET /api/v1/shipment?orderId= - returns the combined
// shipment view of an order.
func (s *Server) GetShipment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetShipmentQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	response := ShipmentViewResponse{
		OrderID:           view.OrderID.String(),
		Status:            view.Status,
		ShipmentCreated:   view.ShipmentCreated,
		CanCreateShipment: view.CanCreateShipment,
	}
	if view.Shipment != nil {
		response.Shipment = &ShipmentDetailsResponse{
			Mode:           view.Shipment.Mode,
			WeightGrams:    view.Shipment.WeightGrams,
			LengthCm:       view.Shipment.LengthCm,
			WidthCm:        view.Shipment.WidthCm,
			HeightCm:       view.Shipment.HeightCm,
			PickupLocation: view.Shipment.PickupLocation,
			WaybillNumbers: view.Shipment.WaybillNumbers,
			TrackingURL:    view.Shipment.TrackingURL,
			CreatedAt:      view.Shipment.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNextStatuses handles GET /api/v1/shipment/status?orderId= - returns the
// legal next statuses of an order.
func (s *Server) GetNextStatuses(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetNextStatusesQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getNextStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NextStatusesResponse{
		OrderID:         result.OrderID.String(),
		CurrentStatus:   result.CurrentStatus,
		NextStatuses:    result.NextStatuses,
		CanUpdateStatus: result.CanUpdateStatus,
	})
}

// UpdateStatus handles POST /api/v1/shipment/status - applies a status
// transition to an order.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	newStatus, err := order.StatusFromString(req.NewStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	opts := make([]order.TransitionDetailsOption, 0, 4)
	if req.WaybillNumber != "" {
		opts = append(opts, order.WithWaybillNumber(req.WaybillNumber))
	}
	if req.TrackingURL != "" {
		opts = append(opts, order.WithTrackingURL(req.TrackingURL))
	}
	if req.Reason != "" {
		opts = append(opts, order.WithReason(req.Reason))
	}
	if req.DeliveryDate != nil {
		opts = append(opts, order.WithDeliveryInfo(*req.DeliveryDate, req.DeliveryNotes))
	}

	details, err := order.NewTransitionDetails(req.UpdatedBy, opts...)
	if err != nil {
		return badRequest(ctx, "Invalid transition details: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(orderID, newStatus, details)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		Success:   true,
		NewStatus: newStatus.String(),
	})
}

// CreateShipment handles POST /api/v1/shipment - creates the shipment record
// for a confirmed order.
func (s *Server) CreateShipment(ctx echo.Context) error {
	orderID, mode, weight, dims, req, err := bindShipmentRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateShipmentCommand(orderID, mode, weight, dims, req.PickupLocation)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// EditShipment handles POST /api/v1/shipment/edit - replaces the editable
// details of an existing shipment record.
func (s *Server) EditShipment(ctx echo.Context) error {
	orderID, mode, weight, dims, req, err := bindShipmentRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewEditShipmentCommand(orderID, mode, weight, dims, req.PickupLocation)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.editShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindOrderID extracts the required orderId query parameter.
func bindOrderID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindQueryParameter("form", true, true, "orderId", ctx.QueryParams(), &raw)
	if err != nil {
		return kernel.UUID{}, errors.New("orderId query parameter is required")
	}

	orderID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("orderId is not a valid UUID")
	}

	return orderID, nil
}

func bindShipmentRequest(
	ctx echo.Context,
) (kernel.UUID, shipment.Mode, kernel.Weight, kernel.Dimensions, ShipmentRequest, error) {
	var req ShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, shipment.ModeUnknown, kernel.Weight{}, kernel.Dimensions{}, req,
			errors.New("invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return kernel.UUID{}, shipment.ModeUnknown, kernel.Weight{}, kernel.Dimensions{}, req, err
	}

	mode, err := shipment.ModeFromString(req.Mode)
	if err != nil {
		return kernel.UUID{}, shipment.ModeUnknown, kernel.Weight{}, kernel.Dimensions{}, req, err
	}

	weight, err := kernel.NewWeight(kernel.Grams(req.WeightGrams))
	if err != nil {
		return kernel.UUID{}, shipment.ModeUnknown, kernel.Weight{}, kernel.Dimensions{}, req, err
	}

	dims, err := kernel.NewDimensions(
		kernel.Centimeters(req.LengthCm),
		kernel.Centimeters(req.WidthCm),
		kernel.Centimeters(req.HeightCm),
	)
	if err != nil {
		return kernel.UUID{}, shipment.ModeUnknown, kernel.Weight{}, kernel.Dimensions{}, req, err
	}

	return orderID, mode, weight, dims, req, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapCommandError translates application and domain errors onto HTTP status
// codes: 404 for unknown objects, 409 for state conflicts, 400 for invalid
// values, 500 otherwise.
func mapCommandError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, ports.ErrConcurrentStatusChange),
		errors.Is(err, commands.ErrOrderNotReady),
		errors.Is(err, commands.ErrShipmentAlreadyExists),
		errors.Is(err, commands.ErrShipmentNotEditable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrUnknownStatus):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
