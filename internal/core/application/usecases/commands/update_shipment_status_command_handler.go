package commands

import (
	"context"
	"errors"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// UpdateShipmentStatusCommandHandler executes status transitions. It loads the
// order, lets the aggregate validate and apply the transition, keeps the
// shipment record's waybill list in sync, and commits everything atomically.
// The conditional status write inside OrderRepository.Update guarantees that
// of two racing transitions exactly one commits; the loser gets
// ports.ErrConcurrentStatusChange and the order is left consistent.
//
// After a successful commit the handler publishes a status-changed event.
// Publishing is best effort: the transition is already durable, so a broker
// failure is not surfaced to the caller.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusEventPublisher
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning order and shipment repositories, and a
// publisher for post-commit notifications.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusEventPublisher,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
//
// Within a single transaction it:
//   - loads the order (errs.ErrObjectNotFound if unknown)
//   - applies the transition on the aggregate, which enforces the state
//     machine and the status-specific required fields
//   - appends the waybill number to the order's shipment record when one was
//     supplied and a shipment exists
//   - writes the order conditionally on its loaded status
//
// The whole unit rolls back if any step fails, so the transition log, the
// status, and the shipment waybills never diverge.
func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.Details()); err != nil {
		return err
	}

	if cmd.Details().WaybillNumber() != "" {
		if err = h.syncShipmentWaybill(ctx, shipmentRepo, cmd); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	transitions := aggregate.Transitions()
	applied := transitions[len(transitions)-1]
	_ = h.publisher.Publish(ctx, ports.StatusChangedEvent{
		OrderID:        cmd.OrderID().String(),
		PreviousStatus: previousStatus.String(),
		NewStatus:      cmd.NewStatus().String(),
		WaybillNumber:  cmd.Details().WaybillNumber(),
		Reason:         cmd.Details().Reason(),
		DeliveryDate:   cmd.Details().DeliveryDate(),
		UpdatedBy:      cmd.Details().UpdatedBy(),
		OccurredAt:     applied.OccurredAt(),
	})

	return nil
}

// syncShipmentWaybill appends the transition's waybill number to the order's
// shipment record. An order without a shipment record is fine, the waybill
// then lives only in the transition log.
func (h UpdateShipmentStatusCommandHandler) syncShipmentWaybill(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	cmd UpdateShipmentStatusCommand,
) error {
	record, err := shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = record.AppendWaybill(cmd.Details().WaybillNumber()); err != nil {
		return err
	}
	record.SetTrackingURL(cmd.Details().TrackingURL())

	return shipmentRepo.Update(ctx, record)
}
