package usecases

import (
	"context"
	"time"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/clock"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type activityMetricsRepository interface {
	ListOrderActionEvents(ctx context.Context, exec repositories.Executor,
		organizationId, orderId string) ([]models.ActionEvent, error)
	ListOrganizationActionEvents(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.ActionEvent, error)
}

// ActivityMetricsUsecase derives aggregate audit metrics from a full scan of
// the relevant event set at query time.
type ActivityMetricsUsecase struct {
	enforceSecurity security.EnforceSecurityOrderAudit
	executorFactory executor_factory.ExecutorFactory
	orderRepository transitionRecorderOrderRepository
	repository      activityMetricsRepository
	clock           clock.Clock
	// location is the tenant's operating timezone, used to decide what
	// "today" means for EventsToday.
	location    *time.Location
	credentials models.Credentials
}

func (usecase *ActivityMetricsUsecase) OrderActivity(
	ctx context.Context,
	orderId string,
) (models.ActivityMetrics, error) {
	exec := usecase.executorFactory.NewExecutor()

	order, err := usecase.orderRepository.GetServiceOrderById(ctx, exec, orderId)
	if err != nil {
		return models.ActivityMetrics{}, err
	}
	if err := usecase.enforceSecurity.ReadOrderEvents(order); err != nil {
		return models.ActivityMetrics{}, err
	}

	events, err := usecase.repository.ListOrderActionEvents(ctx, exec,
		order.OrganizationId, order.Id)
	if err != nil {
		return models.ActivityMetrics{}, err
	}
	return usecase.computeActivity(events), nil
}

func (usecase *ActivityMetricsUsecase) OrganizationActivity(
	ctx context.Context,
) (models.ActivityMetrics, error) {
	organizationId := usecase.credentials.OrganizationId
	if err := usecase.enforceSecurity.ReadOrganization(organizationId); err != nil {
		return models.ActivityMetrics{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	events, err := usecase.repository.ListOrganizationActionEvents(ctx, exec, organizationId)
	if err != nil {
		return models.ActivityMetrics{}, err
	}
	return usecase.computeActivity(events), nil
}

// computeActivity expects events in chronological order; the mode tie-break
// depends on it.
func (usecase *ActivityMetricsUsecase) computeActivity(events []models.ActionEvent) models.ActivityMetrics {
	metrics := models.ActivityMetrics{
		TotalEvents: len(events),
	}
	if len(events) == 0 {
		return metrics
	}

	loc := usecase.location
	if loc == nil {
		loc = time.Local
	}
	today := usecase.clock.Now().In(loc)

	actors := make([]string, 0, len(events))
	categories := make([]models.ActionCategory, 0, len(events))
	for _, event := range events {
		actors = append(actors, event.ActorName)
		categories = append(categories, event.Category)
		if sameDay(event.CreatedAt.In(loc), today) {
			metrics.EventsToday++
		}
	}

	metrics.MostActiveActor = modeOf(actors)
	metrics.MostCommonCategory = modeOf(categories)
	metrics.LastActionDescription = events[len(events)-1].Description

	return metrics
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// modeOf returns the most frequent value. Ties are broken by first-seen order
// in the input sequence; deterministic, but not a semantically meaningful
// choice among equally frequent values.
func modeOf[T comparable](values []T) T {
	var best T
	if len(values) == 0 {
		return best
	}

	counts := make(map[T]int, len(values))
	firstSeen := make([]T, 0, len(values))
	for _, value := range values {
		if _, seen := counts[value]; !seen {
			firstSeen = append(firstSeen, value)
		}
		counts[value]++
	}

	bestCount := 0
	for _, value := range firstSeen {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}
