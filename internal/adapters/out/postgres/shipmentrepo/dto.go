// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipments table keys on order_id, which makes
// the one-shipment-per-order rule a schema constraint rather than a check.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShipmentDTO represents the database row of a shipment record.
// Waybill numbers are stored as a text array in append order.
type ShipmentDTO struct {
	OrderID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Mode           int            `gorm:"type:smallint"`
	WeightGrams    int            `gorm:"column:weight_grams"`
	LengthCm       int            `gorm:"column:length_cm"`
	WidthCm        int            `gorm:"column:width_cm"`
	HeightCm       int            `gorm:"column:height_cm"`
	PickupLocation string
	WaybillNumbers pq.StringArray `gorm:"type:text[]"`
	TrackingURL    string
	CreatedAt      time.Time
}

// TableName specifies the database table name for shipment records.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment record to its database representation.
func fromDomain(record *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		OrderID:        record.OrderID().Bytes(),
		Mode:           int(record.Mode()),
		WeightGrams:    int(record.Weight().Grams()),
		LengthCm:       int(record.Dimensions().Length()),
		WidthCm:        int(record.Dimensions().Width()),
		HeightCm:       int(record.Dimensions().Height()),
		PickupLocation: record.PickupLocation(),
		WaybillNumbers: record.WaybillNumbers(),
		TrackingURL:    record.TrackingURL(),
		CreatedAt:      record.CreatedAt(),
	}
}

// toDomain converts a database row to a shipment record using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(kernel.Grams(dto.WeightGrams))
	if err != nil {
		return nil, err
	}

	dimensions, err := kernel.NewDimensions(
		kernel.Centimeters(dto.LengthCm),
		kernel.Centimeters(dto.WidthCm),
		kernel.Centimeters(dto.HeightCm),
	)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		orderID,
		dto.WaybillNumbers,
		dto.TrackingURL,
		shipment.Mode(dto.Mode),
		weight,
		dimensions,
		dto.PickupLocation,
		dto.CreatedAt,
	)
}
