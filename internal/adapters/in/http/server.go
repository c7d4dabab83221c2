// Package http exposes the freight commands and queries over a thin echo
// server. Handlers bind the request, build a guarded command, and translate
// errors to status codes; all business rules stay in the core.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/application/usecases/queries"
	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/domain/services"
	"freightline/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	planShipmentHandler        commands.PlanShipmentCommandHandler
	startLegHandler            commands.StartLegCommandHandler
	completeLegHandler         commands.CompleteLegCommandHandler
	failLegHandler             commands.FailLegCommandHandler
	reassignLegHandler         commands.ReassignLegCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	postInboundReceiptHandler  commands.PostInboundReceiptCommandHandler
	postOutboundReceiptHandler commands.PostOutboundReceiptCommandHandler
	createFacilityHandler      commands.CreateFacilityCommandHandler
	createStorageSlotHandler   commands.CreateStorageSlotCommandHandler
	createRouteEdgeHandler     commands.CreateRouteEdgeCommandHandler
	createCarrierHandler       commands.CreateCarrierCommandHandler

	// Query handlers
	getCurrentLegHandler  queries.GetCurrentLegQueryHandler
	getStockRecordHandler queries.GetStockRecordQueryHandler
	getStockReportHandler queries.GetStockReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	planShipmentHandler commands.PlanShipmentCommandHandler,
	startLegHandler commands.StartLegCommandHandler,
	completeLegHandler commands.CompleteLegCommandHandler,
	failLegHandler commands.FailLegCommandHandler,
	reassignLegHandler commands.ReassignLegCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	postInboundReceiptHandler commands.PostInboundReceiptCommandHandler,
	postOutboundReceiptHandler commands.PostOutboundReceiptCommandHandler,
	createFacilityHandler commands.CreateFacilityCommandHandler,
	createStorageSlotHandler commands.CreateStorageSlotCommandHandler,
	createRouteEdgeHandler commands.CreateRouteEdgeCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	getCurrentLegHandler queries.GetCurrentLegQueryHandler,
	getStockRecordHandler queries.GetStockRecordQueryHandler,
	getStockReportHandler queries.GetStockReportQueryHandler,
) *Server {
	return &Server{
		planShipmentHandler:        planShipmentHandler,
		startLegHandler:            startLegHandler,
		completeLegHandler:         completeLegHandler,
		failLegHandler:             failLegHandler,
		reassignLegHandler:         reassignLegHandler,
		cancelOrderHandler:         cancelOrderHandler,
		postInboundReceiptHandler:  postInboundReceiptHandler,
		postOutboundReceiptHandler: postOutboundReceiptHandler,
		createFacilityHandler:      createFacilityHandler,
		createStorageSlotHandler:   createStorageSlotHandler,
		createRouteEdgeHandler:     createRouteEdgeHandler,
		createCarrierHandler:       createCarrierHandler,
		getCurrentLegHandler:       getCurrentLegHandler,
		getStockRecordHandler:      getStockRecordHandler,
		getStockReportHandler:      getStockReportHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/shipments", s.PlanShipment)
	api.POST("/shipments/:shipmentId/legs/:legId/start", s.StartLeg)
	api.POST("/shipments/:shipmentId/legs/:legId/complete", s.CompleteLeg)
	api.POST("/shipments/:shipmentId/legs/:legId/fail", s.FailLeg)
	api.POST("/shipments/:shipmentId/legs/:legId/reassign", s.ReassignLeg)
	api.GET("/shipments/:shipmentId/current-leg", s.GetCurrentLeg)

	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.POST("/facilities", s.CreateFacility)
	api.POST("/facilities/:facilityId/slots", s.CreateStorageSlot)
	api.POST("/facilities/:facilityId/receipts/inbound", s.PostInboundReceipt)
	api.POST("/facilities/:facilityId/receipts/outbound", s.PostOutboundReceipt)
	api.GET("/facilities/:facilityId/stock/:packageId", s.GetStockRecord)
	api.GET("/facilities/:facilityId/stock-report", s.GetStockReport)

	api.POST("/routes", s.CreateRouteEdge)
	api.POST("/carriers", s.CreateCarrier)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type planShipmentRequest struct {
	OrderCode             string  `json:"orderCode"`
	OriginFacilityID      string  `json:"originFacilityId"`
	DestinationFacilityID string  `json:"destinationFacilityId"`
	WeightKg              float64 `json:"weightKg"`
	ServiceTier           string  `json:"serviceTier"`
	ShipmentCode          string  `json:"shipmentCode"`
}

type planShipmentResponse struct {
	OrderID    string `json:"orderId"`
	ShipmentID string `json:"shipmentId"`
}

// PlanShipment handles POST /api/v1/shipments - registers an order and plans
// its shipment across the facility graph.
func (s *Server) PlanShipment(ctx echo.Context) error {
	var req planShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	originID, err := kernel.UUIDFromString(req.OriginFacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid origin facility id")
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationFacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid destination facility id")
	}
	tier, err := order.TierFromString(req.ServiceTier)
	if err != nil {
		return badRequest(ctx, "Invalid service tier: "+req.ServiceTier)
	}

	orderID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()

	cmd, err := commands.NewPlanShipmentCommand(
		orderID, req.OrderCode, originID, destinationID,
		req.WeightKg, tier, shipmentID, req.ShipmentCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.planShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, planShipmentResponse{
		OrderID:    orderID.String(),
		ShipmentID: shipmentID.String(),
	})
}

type startLegRequest struct {
	OccurredAt time.Time `json:"occurredAt"`
}

// StartLeg handles POST /api/v1/shipments/:shipmentId/legs/:legId/start -
// confirms pickup of the leg.
func (s *Server) StartLeg(ctx echo.Context) error {
	shipmentID, legID, err := legParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment or leg id")
	}

	var req startLegRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.OccurredAt.IsZero() {
		req.OccurredAt = time.Now()
	}

	cmd, err := commands.NewStartLegCommand(shipmentID, legID, req.OccurredAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type completeLegRequest struct {
	OccurredAt time.Time `json:"occurredAt"`
	Proof      string    `json:"proof"`
}

// CompleteLeg handles POST /api/v1/shipments/:shipmentId/legs/:legId/complete
// - confirms delivery of the leg. Proof content is mandatory on the final
// leg.
func (s *Server) CompleteLeg(ctx echo.Context) error {
	shipmentID, legID, err := legParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment or leg id")
	}

	var req completeLegRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.OccurredAt.IsZero() {
		req.OccurredAt = time.Now()
	}

	cmd, err := commands.NewCompleteLegCommand(shipmentID, legID, req.OccurredAt, []byte(req.Proof))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type failLegRequest struct {
	Reason string `json:"reason"`
}

// FailLeg handles POST /api/v1/shipments/:shipmentId/legs/:legId/fail -
// records a delivery failure on the leg.
func (s *Server) FailLeg(ctx echo.Context) error {
	shipmentID, legID, err := legParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment or leg id")
	}

	var req failLegRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailLegCommand(shipmentID, legID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.failLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reassignLegRequest struct {
	CarrierID string `json:"carrierId"`
}

// ReassignLeg handles POST /api/v1/shipments/:shipmentId/legs/:legId/reassign
// - hands a failed leg to another carrier.
func (s *Server) ReassignLeg(ctx echo.Context) error {
	shipmentID, legID, err := legParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment or leg id")
	}

	var req reassignLegRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	cmd, err := commands.NewReassignLegCommand(shipmentID, legID, carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reassignLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - withdraws an
// order that has not started moving.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createFacilityRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	IsHub       bool   `json:"isHub"`
	HubPriority int    `json:"hubPriority"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateFacility handles POST /api/v1/facilities - registers a warehouse or
// depot.
func (s *Server) CreateFacility(ctx echo.Context) error {
	var req createFacilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	facilityID := kernel.NewUUID()

	cmd, err := commands.NewCreateFacilityCommand(
		facilityID, req.Code, req.Name, req.Address, req.IsHub, req.HubPriority,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createFacilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: facilityID.String()})
}

type createStorageSlotRequest struct {
	Code string `json:"code"`
}

// CreateStorageSlot handles POST /api/v1/facilities/:facilityId/slots -
// declares a storage slot at the facility.
func (s *Server) CreateStorageSlot(ctx echo.Context) error {
	facilityID, err := kernel.UUIDFromString(ctx.Param("facilityId"))
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}

	var req createStorageSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	slotID := kernel.NewUUID()

	cmd, err := commands.NewCreateStorageSlotCommand(slotID, facilityID, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createStorageSlotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: slotID.String()})
}

type createRouteEdgeRequest struct {
	FromFacilityID     string  `json:"fromFacilityId"`
	ToFacilityID       string  `json:"toFacilityId"`
	PreferredCarrierID *string `json:"preferredCarrierId"`
	DistanceKm         float64 `json:"distanceKm"`
	EstimatedHours     float64 `json:"estimatedHours"`
}

// CreateRouteEdge handles POST /api/v1/routes - declares a directed
// connection between two facilities.
func (s *Server) CreateRouteEdge(ctx echo.Context) error {
	var req createRouteEdgeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromID, err := kernel.UUIDFromString(req.FromFacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid origin facility id")
	}
	toID, err := kernel.UUIDFromString(req.ToFacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid destination facility id")
	}
	carrierID, err := optionalID(req.PreferredCarrierID)
	if err != nil {
		return badRequest(ctx, "Invalid preferred carrier id")
	}

	edgeID := kernel.NewUUID()

	cmd, err := commands.NewCreateRouteEdgeCommand(
		edgeID, fromID, toID, carrierID, req.DistanceKm, req.EstimatedHours,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createRouteEdgeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: edgeID.String()})
}

type createCarrierRequest struct {
	Name string `json:"name"`
}

// CreateCarrier handles POST /api/v1/carriers - registers a carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req createCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID := kernel.NewUUID()

	cmd, err := commands.NewCreateCarrierCommand(carrierID, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: carrierID.String()})
}

type receiptLineRequest struct {
	PackageID string  `json:"packageId"`
	Quantity  int     `json:"quantity"`
	SlotID    *string `json:"slotId"`
	Notes     string  `json:"notes"`
}

type postReceiptRequest struct {
	Code     string               `json:"code"`
	OrderID  *string              `json:"orderId"`
	ActorID  string               `json:"actorId"`
	PostedAt time.Time            `json:"postedAt"`
	Notes    string               `json:"notes"`
	Lines    []receiptLineRequest `json:"lines"`
}

// PostInboundReceipt handles POST
// /api/v1/facilities/:facilityId/receipts/inbound - posts an arrival batch
// against the facility's stock.
func (s *Server) PostInboundReceipt(ctx echo.Context) error {
	facilityID, req, lines, err := bindReceipt(ctx)
	if err != nil {
		return err
	}

	orderID, err := optionalID(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	receiptID := kernel.NewUUID()

	cmd, err := commands.NewPostInboundReceiptCommand(
		receiptID, req.Code, facilityID, orderID, actorID, req.PostedAt, req.Notes, lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.postInboundReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: receiptID.String()})
}

// PostOutboundReceipt handles POST
// /api/v1/facilities/:facilityId/receipts/outbound - posts an issue batch
// against the facility's stock.
func (s *Server) PostOutboundReceipt(ctx echo.Context) error {
	facilityID, req, lines, err := bindReceipt(ctx)
	if err != nil {
		return err
	}

	orderID, err := optionalID(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	receiptID := kernel.NewUUID()

	cmd, err := commands.NewPostOutboundReceiptCommand(
		receiptID, req.Code, facilityID, orderID, actorID, req.PostedAt, req.Notes, lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.postOutboundReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: receiptID.String()})
}

type currentLegResponse struct {
	LegID          string  `json:"legId"`
	ShipmentID     string  `json:"shipmentId"`
	Sequence       int     `json:"sequence"`
	IsFinal        bool    `json:"isFinal"`
	Status         string  `json:"status"`
	FromFacilityID string  `json:"fromFacilityId"`
	ToFacilityID   *string `json:"toFacilityId"`
	CarrierID      *string `json:"carrierId"`
	DistanceKm     float64 `json:"distanceKm"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// GetCurrentLeg handles GET /api/v1/shipments/:shipmentId/current-leg -
// reports where the shipment currently is.
func (s *Server) GetCurrentLeg(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetCurrentLegQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	leg, err := s.getCurrentLegHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := currentLegResponse{
		LegID:          leg.LegID.String(),
		ShipmentID:     leg.ShipmentID.String(),
		Sequence:       leg.Sequence,
		IsFinal:        leg.IsFinal,
		Status:         leg.Status.String(),
		FromFacilityID: leg.FromFacilityID.String(),
		DistanceKm:     leg.DistanceKm,
		EstimatedHours: leg.EstimatedHours,
	}
	if leg.ToFacilityID != nil {
		to := leg.ToFacilityID.String()
		resp.ToFacilityID = &to
	}
	if leg.CarrierID != nil {
		carrierID := leg.CarrierID.String()
		resp.CarrierID = &carrierID
	}

	return ctx.JSON(http.StatusOK, resp)
}

type stockRecordResponse struct {
	FacilityID string `json:"facilityId"`
	PackageID  string `json:"packageId"`
	Quantity   int    `json:"quantity"`
	Delivered  int    `json:"delivered"`
	Remaining  int    `json:"remaining"`
}

// GetStockRecord handles GET /api/v1/facilities/:facilityId/stock/:packageId
// - reports the counters of one stock record.
func (s *Server) GetStockRecord(ctx echo.Context) error {
	facilityID, err := kernel.UUIDFromString(ctx.Param("facilityId"))
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}
	packageID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	query, err := queries.NewGetStockRecordQuery(facilityID, packageID)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.getStockRecordHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockRecordResponse{
		FacilityID: record.FacilityID.String(),
		PackageID:  record.PackageID.String(),
		Quantity:   record.Quantity,
		Delivered:  record.Delivered,
		Remaining:  record.Remaining,
	})
}

type stockReportResponse struct {
	FacilityID      string  `json:"facilityId"`
	TotalQuantity   int     `json:"totalQuantity"`
	TotalDelivered  int     `json:"totalDelivered"`
	TotalRemaining  int     `json:"totalRemaining"`
	TotalSlots      int     `json:"totalSlots"`
	OccupiedSlots   int     `json:"occupiedSlots"`
	SlotUtilization float64 `json:"slotUtilization"`
}

// GetStockReport handles GET /api/v1/facilities/:facilityId/stock-report -
// aggregates the facility's stock position.
func (s *Server) GetStockReport(ctx echo.Context) error {
	facilityID, err := kernel.UUIDFromString(ctx.Param("facilityId"))
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}

	query, err := queries.NewGetStockReportQuery(facilityID)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.getStockReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockReportResponse{
		FacilityID:      report.FacilityID.String(),
		TotalQuantity:   report.TotalQuantity,
		TotalDelivered:  report.TotalDelivered,
		TotalRemaining:  report.TotalRemaining,
		TotalSlots:      report.TotalSlots,
		OccupiedSlots:   report.OccupiedSlots,
		SlotUtilization: report.SlotUtilization,
	})
}

func legParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	legID, err := kernel.UUIDFromString(ctx.Param("legId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return shipmentID, legID, nil
}

// bindReceipt parses the shared parts of inbound and outbound postings.
// A non-nil error has already been written to the response.
func bindReceipt(ctx echo.Context) (kernel.UUID, postReceiptRequest, []receipt.Line, error) {
	var req postReceiptRequest

	facilityID, err := kernel.UUIDFromString(ctx.Param("facilityId"))
	if err != nil {
		return kernel.UUID{}, req, nil, badRequest(ctx, "Invalid facility id")
	}

	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, req, nil, badRequest(ctx, "Invalid request body")
	}
	if req.PostedAt.IsZero() {
		req.PostedAt = time.Now()
	}

	lines := make([]receipt.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		packageID, lineErr := kernel.UUIDFromString(line.PackageID)
		if lineErr != nil {
			return kernel.UUID{}, req, nil, badRequest(ctx, "Invalid package id: "+line.PackageID)
		}

		slotID, lineErr := optionalID(line.SlotID)
		if lineErr != nil {
			return kernel.UUID{}, req, nil, badRequest(ctx, "Invalid slot id")
		}

		lines = append(lines, receipt.Line{
			PackageID: packageID,
			Quantity:  line.Quantity,
			SlotID:    slotID,
			Notes:     line.Notes,
		})
	}

	return facilityID, req, lines, nil
}

func optionalID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps core errors to HTTP status codes. Validation rejects with
// 400, missing aggregates with 404, state conflicts with 409, and an
// unroutable order pair with 422.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrRouteUnavailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, facility.ErrInsufficientStock),
		errors.Is(err, facility.ErrSlotOccupied),
		errors.Is(err, carrier.ErrCarrierInactive),
		errors.Is(err, commands.ErrOrderCancelled):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, routing.ErrSelfLoop),
		errors.Is(err, order.ErrSameFacility):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
