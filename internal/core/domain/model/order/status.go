package order

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
)

// ErrUnknownStatus indicates that a status value outside the defined catalog
// reached the transition validator. This is a data-integrity problem, not a
// user mistake: persisted or configured status values must always be members
// of the catalog. Callers should log it and surface a generic failure.
var ErrUnknownStatus = errors.New("unknown shipment status")

// ErrInvalidTransition is the sentinel error for transitions that are not in
// the legal next-set of the current status.
// Use errors.Is(err, ErrInvalidTransition) to classify transition failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected status transition, naming both the
// current and the requested status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// Error formats the error message with both statuses.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is support.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order's shipment.
// It implements a state machine with a fixed adjacency to ensure shipments
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Dispatched ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │             │              │              │                │
//	   └────────────┴─────────────┴──────────────┘              └────────────────┴──> Returned
//	              (Cancelled)
//
// Delivered, Cancelled, and Returned are terminal: they have no outgoing
// transitions. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order enters the shipment lifecycle.
	Pending

	// Confirmed indicates the order has been accepted and is ready to ship.
	// A shipment record may only be created while the order is Confirmed.
	Confirmed

	// Processing indicates the parcel is being picked and packed.
	Processing

	// Dispatched indicates the parcel has been handed to the carrier.
	// Requires a waybill number.
	Dispatched

	// InTransit indicates the parcel is moving through the carrier network.
	// Requires a waybill number.
	InTransit

	// OutForDelivery indicates the parcel is on the last-mile vehicle.
	// Requires a waybill number.
	OutForDelivery

	// Delivered indicates the parcel reached the customer.
	// Requires a delivery date. This is a final state.
	Delivered

	// Cancelled indicates the order was cancelled before carrier hand-off
	// completed. This is a final state.
	Cancelled

	// Returned indicates the parcel is coming back to the warehouse.
	// This is a final state.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Processing:     "Processing",
		Dispatched:     "Dispatched",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
		Returned:       "Returned",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error wrapping ErrUnknownStatus for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// getNextStatuses returns the fixed adjacency of the state machine.
// Terminal statuses map to an empty candidate list; Unknown is intentionally
// absent so it can never be a transition source.
func getNextStatuses() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Processing, Cancelled},
		Processing:     {Dispatched, Cancelled},
		Dispatched:     {InTransit, Cancelled},
		InTransit:      {OutForDelivery, Returned},
		OutForDelivery: {Delivered, Returned},
		Delivered:      {},
		Cancelled:      {},
		Returned:       {},
	}
}

// Validate checks if the Status value is a member of the catalog.
//
// Returns:
//   - nil if the status is valid
//   - a ValueIsInvalidError wrapping ErrUnknownStatus otherwise
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getNextStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: %d is not a valid status", ErrUnknownStatus, s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// NextStatuses returns the set of statuses reachable in one transition.
//
// Returns:
//   - a non-empty candidate list for non-terminal statuses
//   - an empty list for terminal statuses (Delivered, Cancelled, Returned)
//   - an error wrapping ErrUnknownStatus for values outside the catalog;
//     an unrecognized status never silently yields an empty set
//
// The adjacency is fixed and total; the result is a pure function of the enum.
func (s Status) NextStatuses() ([]Status, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	next := getNextStatuses()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out, nil
}

// CanTransitionTo reports whether target is in the legal next-set of s.
// Returns false for unknown source or target statuses; use Validate or
// NextStatuses to distinguish configuration errors.
func (s Status) CanTransitionTo(target Status) bool {
	next, err := s.NextStatuses()
	if err != nil {
		return false
	}

	for _, candidate := range next {
		if candidate == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned
}

// NeedsWaybill reports whether a transition into this status requires a
// waybill number: true for the carrier-side statuses Dispatched, InTransit,
// and OutForDelivery.
func (s Status) NeedsWaybill() bool {
	return s == Dispatched || s == InTransit || s == OutForDelivery
}

// NeedsDeliveryInfo reports whether a transition into this status requires a
// delivery date: true only for Delivered.
func (s Status) NeedsDeliveryInfo() bool {
	return s == Delivered
}

// CanCreateShipment reports whether a shipment record may be created while the
// order is in this status. Only Confirmed orders are ready to ship.
func (s Status) CanCreateShipment() bool {
	return s == Confirmed
}

// AllowsShipmentEdit reports whether shipment details (weight, dimensions,
// mode, pickup location) may still be edited in this status. Editing stops
// once the shipment reaches a terminal status and is not possible before the
// order is confirmed.
func (s Status) AllowsShipmentEdit() bool {
	switch s {
	case Confirmed, Processing, Dispatched, InTransit, OutForDelivery:
		return true
	default:
		return false
	}
}
