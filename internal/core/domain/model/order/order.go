package order

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents an order inside the shipment lifecycle. It is the aggregate
// root that owns the shipment status and the append-only transition log.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Has exactly one current status at any time
//   - Status changes only through TransitionTo, which enforces the state
//     machine adjacency and the status-specific required fields
//   - Every accepted transition is appended to the transition log
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the shipment lifecycle
	status Status

	// restoredStatus is the status this aggregate was loaded with; repositories
	// use it as the expected value of the conditional status write that guards
	// against concurrent transitions (Unknown for fresh orders)
	restoredStatus Status

	// transitions is the append-only log of accepted transitions
	transitions []Transition

	// restoredTransitionCount is how many log entries were already persisted
	// when the aggregate was loaded; entries past it are new in this unit of work
	restoredTransitionCount int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order entering the shipment lifecycle in Pending status.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//
// Returns:
//   - *Order: The created order if validation passes
//   - error: Validation error if the identifier is invalid
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with its current status
// and transition log. The restored status is remembered so the repository can
// perform a conditional write against it when the order is updated.
//
// Returns an error if the identifier or the status is invalid.
func RestoreOrder(id kernel.UUID, status Status, transitions []Transition) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	log := make([]Transition, len(transitions))
	copy(log, transitions)

	return &Order{
		id:                      id,
		status:                  status,
		restoredStatus:          status,
		transitions:             log,
		restoredTransitionCount: len(log),
		isConstructed:           true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current shipment status of the order.
func (o *Order) Status() Status {
	return o.status
}

// RestoredStatus returns the status the aggregate was loaded with, or Unknown
// for orders created in this unit of work. Repositories use it as the expected
// previous value in the conditional status write.
func (o *Order) RestoredStatus() Status {
	return o.restoredStatus
}

// Transitions returns a copy of the append-only transition log in acceptance order.
func (o *Order) Transitions() []Transition {
	log := make([]Transition, len(o.transitions))
	copy(log, o.transitions)
	return log
}

// AppendedTransitions returns the log entries accepted after the aggregate was
// loaded. Repositories persist exactly these on update; entries before them
// are already stored.
func (o *Order) AppendedTransitions() []Transition {
	appended := make([]Transition, len(o.transitions)-o.restoredTransitionCount)
	copy(appended, o.transitions[o.restoredTransitionCount:])
	return appended
}

// NextStatuses returns the statuses reachable from the current status in one
// transition. Empty for terminal statuses.
func (o *Order) NextStatuses() ([]Status, error) {
	return o.status.NextStatuses()
}

// TransitionTo applies a status transition to the order. This is the single
// mutation point for status.
//
// Business rules enforced, in order:
//   - the transition payload must be constructed via NewTransitionDetails
//   - the current and target statuses must be members of the catalog
//     (ErrUnknownStatus otherwise)
//   - the target must be in the legal next-set of the current status
//     (InvalidTransitionError naming both statuses otherwise)
//   - Dispatched, InTransit, and OutForDelivery require a waybill number
//   - Delivered requires a delivery date
//
// On success the transition is appended to the log and the status updated.
// On any failure the order is left unchanged.
//
// Example:
//
//	details, _ := order.NewTransitionDetails("ops", order.WithWaybillNumber("WB123"))
//	if err := o.TransitionTo(order.Dispatched, details); err != nil {
//	    switch {
//	    case errors.Is(err, order.ErrInvalidTransition):
//	        // illegal edge, report current and requested status
//	    case errors.Is(err, errs.ErrValueIsRequired):
//	        // missing waybill number or delivery date
//	    }
//	}
func (o *Order) TransitionTo(newStatus Status, details TransitionDetails) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := details.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	next, err := o.status.NextStatuses()
	if err != nil {
		return err
	}

	allowed := false
	for _, candidate := range next {
		if candidate == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return NewInvalidTransitionError(o.status, newStatus)
	}

	if err = validateRequiredFields(newStatus, details); err != nil {
		return err
	}

	o.transitions = append(o.transitions, Transition{
		from:       o.status,
		to:         newStatus,
		details:    details,
		occurredAt: time.Now().UTC(),
	})
	o.status = newStatus
	return nil
}

// CanCreateShipment reports whether a shipment record may be created for the
// order in its current status.
func (o *Order) CanCreateShipment() bool {
	return o.status.CanCreateShipment()
}

// validateRequiredFields checks the status-specific required fields of a
// transition payload. Fields not required by the target status stay optional.
func validateRequiredFields(newStatus Status, details TransitionDetails) error {
	if newStatus.NeedsWaybill() && details.WaybillNumber() == "" {
		return errs.NewValueIsRequiredError("waybillNumber")
	}
	if newStatus.NeedsDeliveryInfo() && details.DeliveryDate() == nil {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	return nil
}
