package order

import (
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// TransitionDetails carries the payload of a status transition request.
// The waybill number, tracking URL, reason, delivery date, and delivery notes
// are optional at construction time; whether a field is actually required
// depends on the target status and is enforced by Order.TransitionTo.
// UpdatedBy identifies the operator applying the transition and is always
// required.
//
// Example:
//
//	details, err := order.NewTransitionDetails("ops@warehouse", order.WithWaybillNumber("WB123"))
//	if err != nil {
//	    return err
//	}
//	if err := o.TransitionTo(order.Dispatched, details); err != nil {
//	    return err
//	}
type TransitionDetails struct { //nolint:recvcheck //using for validation
	waybillNumber string
	trackingURL   string
	reason        string
	deliveryNotes string
	deliveryDate  *time.Time
	updatedBy     string

	guard guard.ConstructorGuard
}

// TransitionDetailsOption sets an optional field on TransitionDetails.
type TransitionDetailsOption func(*TransitionDetails)

// WithWaybillNumber attaches a carrier waybill number to the transition.
func WithWaybillNumber(waybillNumber string) TransitionDetailsOption {
	return func(d *TransitionDetails) {
		d.waybillNumber = waybillNumber
	}
}

// WithTrackingURL attaches a carrier tracking URL to the transition.
func WithTrackingURL(trackingURL string) TransitionDetailsOption {
	return func(d *TransitionDetails) {
		d.trackingURL = trackingURL
	}
}

// WithReason attaches a reason to the transition, typically for Cancelled or
// Returned.
func WithReason(reason string) TransitionDetailsOption {
	return func(d *TransitionDetails) {
		d.reason = reason
	}
}

// WithDeliveryInfo attaches the delivery date and notes to the transition.
func WithDeliveryInfo(deliveryDate time.Time, deliveryNotes string) TransitionDetailsOption {
	return func(d *TransitionDetails) {
		d.deliveryDate = &deliveryDate
		d.deliveryNotes = deliveryNotes
	}
}

// NewTransitionDetails creates the transition payload.
// updatedBy must not be empty; everything else is optional and supplied via
// options.
func NewTransitionDetails(updatedBy string, opts ...TransitionDetailsOption) (TransitionDetails, error) {
	if updatedBy == "" {
		return TransitionDetails{}, errs.NewValueIsRequiredError("updatedBy")
	}

	details := TransitionDetails{
		updatedBy: updatedBy,
		guard:     guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(&details)
	}

	return details, nil
}

// Validate ensures the details were created through the constructor.
func (d TransitionDetails) Validate() error {
	return d.guard.Validate(errs.NewValueIsRequiredError(
		"transition details must be created via NewTransitionDetails constructor"))
}

// WaybillNumber returns the carrier waybill number, empty if not supplied.
func (d TransitionDetails) WaybillNumber() string { return d.waybillNumber }

// TrackingURL returns the carrier tracking URL, empty if not supplied.
func (d TransitionDetails) TrackingURL() string { return d.trackingURL }

// Reason returns the transition reason, empty if not supplied.
func (d TransitionDetails) Reason() string { return d.reason }

// DeliveryNotes returns the delivery notes, empty if not supplied.
func (d TransitionDetails) DeliveryNotes() string { return d.deliveryNotes }

// DeliveryDate returns the delivery date, nil if not supplied.
func (d TransitionDetails) DeliveryDate() *time.Time { return d.deliveryDate }

// UpdatedBy returns the operator that requested the transition.
func (d TransitionDetails) UpdatedBy() string { return d.updatedBy }

// Transition is one accepted entry of the order's append-only transition log.
// It records the edge that was taken, the payload that accompanied it, and
// when it was applied.
type Transition struct {
	from       Status
	to         Status
	details    TransitionDetails
	occurredAt time.Time
}

// RestoreTransition reconstructs a log entry from persistence.
// No business validation is applied; the entry was validated when accepted.
func RestoreTransition(from, to Status, details TransitionDetails, occurredAt time.Time) Transition {
	return Transition{
		from:       from,
		to:         to,
		details:    details,
		occurredAt: occurredAt,
	}
}

// From returns the status the order left.
func (t Transition) From() Status { return t.from }

// To returns the status the order entered.
func (t Transition) To() Status { return t.to }

// Details returns the payload that accompanied the transition.
func (t Transition) Details() TransitionDetails { return t.details }

// OccurredAt returns when the transition was accepted.
func (t Transition) OccurredAt() time.Time { return t.occurredAt }
