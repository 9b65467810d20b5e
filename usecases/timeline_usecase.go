package usecases

import (
	"context"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type timelineRepository interface {
	ListTransitionEvents(ctx context.Context, exec repositories.Executor,
		organizationId, orderId string, ascending bool) ([]models.TransitionEvent, error)
}

// TimelineUsecase reconstructs an order's transition history from the event
// log. Pure read path, decoupled from the recorder.
type TimelineUsecase struct {
	enforceSecurity security.EnforceSecurityOrderAudit
	executorFactory executor_factory.ExecutorFactory
	orderRepository transitionRecorderOrderRepository
	repository      timelineRepository
}

// Timeline returns an order's events most-recent first, for display. On
// error the returned slice is empty and the error explicit, never a partial
// result disguised as a complete one.
func (usecase *TimelineUsecase) Timeline(
	ctx context.Context,
	orderId string,
) ([]models.TransitionEvent, error) {
	return usecase.listEvents(ctx, orderId, false)
}

// History returns an order's events oldest first, the order metric
// derivations iterate in.
func (usecase *TimelineUsecase) History(
	ctx context.Context,
	orderId string,
) ([]models.TransitionEvent, error) {
	return usecase.listEvents(ctx, orderId, true)
}

func (usecase *TimelineUsecase) listEvents(
	ctx context.Context,
	orderId string,
	ascending bool,
) ([]models.TransitionEvent, error) {
	exec := usecase.executorFactory.NewExecutor()

	order, err := usecase.orderRepository.GetServiceOrderById(ctx, exec, orderId)
	if err != nil {
		return []models.TransitionEvent{}, err
	}
	if err := usecase.enforceSecurity.ReadOrderEvents(order); err != nil {
		return []models.TransitionEvent{}, err
	}

	events, err := usecase.repository.ListTransitionEvents(ctx, exec,
		order.OrganizationId, order.Id, ascending)
	if err != nil {
		return []models.TransitionEvent{}, err
	}
	return events, nil
}
