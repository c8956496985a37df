package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler builds the shipment view of an order from the
// database. Reads the order status and the shipment record in one pass with
// raw SQL, without loading the aggregates.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment view queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the shipment view query.
// Returns errs.ErrObjectNotFound if the order does not exist. An order without
// a shipment record is a valid view with ShipmentCreated false.
// CanCreateShipment is true only while the order is Confirmed and no shipment
// record exists yet.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var statusValue int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&statusValue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetShipmentQueryResponse{}, err
	}

	status := order.Status(statusValue)
	response := GetShipmentQueryResponse{
		OrderID: query.OrderID(),
		Status:  status.String(),
	}

	details, err := h.loadShipmentDetails(ctx, query)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response.Shipment = details
	response.ShipmentCreated = details != nil
	response.CanCreateShipment = status.CanCreateShipment() && details == nil

	return response, nil
}

func (h GetShipmentQueryHandler) loadShipmentDetails(
	ctx context.Context,
	query GetShipmentQuery,
) (*ShipmentDetails, error) {
	var details ShipmentDetails
	var waybills pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			mode,
			weight_grams,
			length_cm,
			width_cm,
			height_cm,
			pickup_location,
			waybill_numbers,
			tracking_url,
			created_at
		FROM shipments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	var modeValue int
	err := row.Scan(
		&modeValue,
		&details.WeightGrams,
		&details.LengthCm,
		&details.WidthCm,
		&details.HeightCm,
		&details.PickupLocation,
		&waybills,
		&details.TrackingURL,
		&details.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	details.Mode = shipment.Mode(modeValue).String()
	details.WaybillNumbers = waybills

	return &details, nil
}
