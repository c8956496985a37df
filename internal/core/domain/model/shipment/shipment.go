package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment represents the persisted shipment record of one order: the carrier
// waybill numbers, the parcel's physical properties, and the pickup origin.
//
// Shipment follows these invariants:
//   - Belongs to exactly one order (1:1, unique per order)
//   - Waybill numbers are non-empty strings; appending is idempotent
//   - Weight and dimensions are positive, mode is Surface or Express
//   - Created once, never deleted; only appended-to or edited
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	// orderID is the owning order's identifier
	orderID kernel.UUID

	// waybillNumbers are the carrier-assigned tracking identifiers, in
	// assignment order
	waybillNumbers []string

	// trackingURL is the latest carrier tracking link, empty until assigned
	trackingURL string

	// pickupLocation is the warehouse/origin identifier for carrier pickup
	pickupLocation string

	// mode is the carrier service tier
	mode Mode

	// weight is the parcel weight
	weight kernel.Weight

	// dimensions are the parcel dimensions
	dimensions kernel.Dimensions

	// createdAt is when the shipment record was established
	createdAt time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new shipment record for an order.
//
// Parameters:
//   - orderID: The owning order's identifier (must be a valid UUID)
//   - mode: The carrier service tier (Surface or Express)
//   - weight: The parcel weight (constructed kernel.Weight)
//   - dimensions: The parcel dimensions (constructed kernel.Dimensions)
//   - pickupLocation: The warehouse/origin identifier (must not be empty)
//
// Returns the created shipment with no waybill numbers yet; the carrier
// assigns those later, via AppendWaybill, when the parcel is dispatched.
func NewShipment(
	orderID kernel.UUID,
	mode Mode,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	pickupLocation string,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setOrderID(orderID),
		s.setMode(mode),
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment record from persistence.
func RestoreShipment(
	orderID kernel.UUID,
	waybillNumbers []string,
	trackingURL string,
	mode Mode,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	pickupLocation string,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(orderID, mode, weight, dimensions, pickupLocation)
	if err != nil {
		return nil, err
	}

	s.waybillNumbers = make([]string, len(waybillNumbers))
	copy(s.waybillNumbers, waybillNumbers)
	s.trackingURL = trackingURL
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// OrderID returns the owning order's identifier.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// WaybillNumbers returns a copy of the carrier-assigned waybill numbers in
// assignment order.
func (s *Shipment) WaybillNumbers() []string {
	numbers := make([]string, len(s.waybillNumbers))
	copy(numbers, s.waybillNumbers)
	return numbers
}

// TrackingURL returns the latest carrier tracking link, empty if none assigned.
func (s *Shipment) TrackingURL() string {
	return s.trackingURL
}

// PickupLocation returns the warehouse/origin identifier.
func (s *Shipment) PickupLocation() string {
	return s.pickupLocation
}

// Mode returns the carrier service tier.
func (s *Shipment) Mode() Mode {
	return s.mode
}

// Weight returns the parcel weight.
func (s *Shipment) Weight() kernel.Weight {
	return s.weight
}

// Dimensions returns the parcel dimensions.
func (s *Shipment) Dimensions() kernel.Dimensions {
	return s.dimensions
}

// CreatedAt returns when the shipment record was established.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// AppendWaybill records a carrier-assigned waybill number.
// Appending a number that is already present is a no-op, so re-submitting the
// same transition payload cannot duplicate waybills.
func (s *Shipment) AppendWaybill(waybillNumber string) error {
	if waybillNumber == "" {
		return errs.NewValueIsRequiredError("waybillNumber")
	}

	for _, existing := range s.waybillNumbers {
		if existing == waybillNumber {
			return nil
		}
	}

	s.waybillNumbers = append(s.waybillNumbers, waybillNumber)
	return nil
}

// SetTrackingURL updates the carrier tracking link. An empty value is ignored
// so transitions without a tracking URL never erase an earlier one.
func (s *Shipment) SetTrackingURL(trackingURL string) {
	if trackingURL != "" {
		s.trackingURL = trackingURL
	}
}

// ChangeDetails edits the shipment's physical properties and pickup origin
// without a status transition. Whether editing is still allowed for the
// order's current status is decided by the caller (Status.AllowsShipmentEdit).
func (s *Shipment) ChangeDetails(
	mode Mode,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	pickupLocation string,
) error {
	return errors.Join(
		s.setMode(mode),
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setPickupLocation(pickupLocation),
	)
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	s.mode = mode
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	s.pickupLocation = pickupLocation
	return nil
}
