package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/clock"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type transitionRecorderOrderRepository interface {
	GetServiceOrderById(ctx context.Context, exec repositories.Executor,
		orderId string) (models.ServiceOrder, error)
}

type RecordTransitionInput struct {
	OrderId            string
	NewStatus          models.OrderStatus
	NewTechnicalStatus models.TechnicalStatus
	Reason             *string
	Notes              *string
	Origin             models.EventOrigin
}

// TransitionRecorder validates and appends status transition events. It is
// observational with respect to the status mutation it describes: callers
// must not roll back the mutation when recording fails.
type TransitionRecorder struct {
	enforceSecurity  security.EnforceSecurityOrderAudit
	executorFactory  executor_factory.ExecutorFactory
	orderRepository  transitionRecorderOrderRepository
	durationResolver DurationResolver
	writer           TransitionAppender
	clock            clock.Clock
	credentials      models.Credentials
}

func (usecase *TransitionRecorder) RecordTransition(
	ctx context.Context,
	input RecordTransitionInput,
) (models.TransitionEvent, error) {
	exec := usecase.executorFactory.NewExecutor()

	// tenant mismatch and missing order are rejected before any write
	order, err := usecase.orderRepository.GetServiceOrderById(ctx, exec, input.OrderId)
	if err != nil {
		return models.TransitionEvent{}, err
	}
	if err := usecase.enforceSecurity.RecordOrderEvents(order); err != nil {
		return models.TransitionEvent{}, err
	}

	previous, err := usecase.durationResolver.ResolvePrevious(ctx, exec,
		order.OrganizationId, order.Id)
	if err != nil {
		return models.TransitionEvent{}, err
	}

	attrs := usecase.buildAttributes(order, previous, input)
	newEventId := uuid.NewString()

	if err := usecase.writer.AppendTransition(ctx, exec, attrs, newEventId); err != nil {
		return models.TransitionEvent{}, err
	}

	return models.TransitionEvent{
		Id:                      newEventId,
		OrderId:                 attrs.OrderId,
		OrganizationId:          attrs.OrganizationId,
		PreviousStatus:          attrs.PreviousStatus,
		NewStatus:               attrs.NewStatus,
		PreviousTechnicalStatus: attrs.PreviousTechnicalStatus,
		NewTechnicalStatus:      attrs.NewTechnicalStatus,
		ActorId:                 attrs.ActorId,
		ActorName:               attrs.ActorName,
		Reason:                  attrs.Reason,
		Notes:                   attrs.Notes,
		DwellDuration:           attrs.DwellDuration,
		CreatedAt:               usecase.clock.Now(),
		Origin:                  attrs.Origin,
	}, nil
}

// buildAttributes assembles a complete before/after snapshot of both status
// dimensions. The before values come from the previous event so that an
// unchanged dimension carries before == after; the first event of an order
// has no before values and no dwell duration.
func (usecase *TransitionRecorder) buildAttributes(
	order models.ServiceOrder,
	previous *models.TransitionEvent,
	input RecordTransitionInput,
) models.CreateTransitionEventAttributes {
	var previousStatus *models.OrderStatus
	var previousTechnicalStatus *models.TechnicalStatus
	if previous != nil {
		status := previous.NewStatus
		previousStatus = &status
		technicalStatus := previous.NewTechnicalStatus
		previousTechnicalStatus = &technicalStatus
	}

	newStatus := input.NewStatus
	if newStatus == "" && previous != nil {
		newStatus = previous.NewStatus
	}
	newTechnicalStatus := input.NewTechnicalStatus
	if newTechnicalStatus == "" && previous != nil {
		newTechnicalStatus = previous.NewTechnicalStatus
	}

	origin := input.Origin
	if origin == "" {
		origin = models.OriginSystem
	}

	return models.CreateTransitionEventAttributes{
		OrderId:                 order.Id,
		OrganizationId:          order.OrganizationId,
		PreviousStatus:          previousStatus,
		NewStatus:               newStatus,
		PreviousTechnicalStatus: previousTechnicalStatus,
		NewTechnicalStatus:      newTechnicalStatus,
		ActorId:                 usecase.credentials.ActorIdOrNil(),
		ActorName:               usecase.credentials.ActorNameOrSystem(),
		Reason:                  input.Reason,
		Notes:                   input.Notes,
		DwellDuration:           usecase.durationResolver.DwellSince(previous),
		Origin:                  origin,
	}
}
