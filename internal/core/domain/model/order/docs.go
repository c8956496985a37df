// Package order provides domain entities and business logic for the order
// shipment lifecycle. It implements the Order aggregate root with the status
// state machine and the transition contract.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, status, and the transition log
//   - Status: A state machine that enforces valid shipment status transitions
//   - TransitionDetails / Transition: The transition request payload and the recorded log entry
//
// Key business rules:
//   - Status follows a fixed adjacency: Pending -> Confirmed -> Processing ->
//     Dispatched -> InTransit -> OutForDelivery -> Delivered, branching to
//     Cancelled or Returned from most non-terminal states
//   - Delivered, Cancelled, and Returned are terminal
//   - Transitions into Dispatched, InTransit, or OutForDelivery require a waybill number
//   - Transitions into Delivered require a delivery date
//   - Order.TransitionTo is the single mutation point for status; every accepted
//     transition is appended to the order's transition log
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
