package usecases

import (
	"context"
	"time"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/clock"
)

type durationResolverRepository interface {
	LatestTransitionEvent(ctx context.Context, exec repositories.Executor,
		organizationId, orderId string) (*models.TransitionEvent, error)
}

// DurationResolver finds the previous event of an order and measures how long
// the order dwelled in its previous status. The read is a snapshot at call
// time: under concurrent writers two transitions can resolve the same
// previous event, which is accepted rather than serialized with a lock.
type DurationResolver struct {
	repository durationResolverRepository
	clock      clock.Clock
}

func NewDurationResolver(repository durationResolverRepository, clock clock.Clock) DurationResolver {
	return DurationResolver{
		repository: repository,
		clock:      clock,
	}
}

// ResolvePrevious returns the latest event recorded for the order, or nil for
// the order's first transition.
func (r DurationResolver) ResolvePrevious(
	ctx context.Context,
	exec repositories.Executor,
	organizationId, orderId string,
) (*models.TransitionEvent, error) {
	return r.repository.LatestTransitionEvent(ctx, exec, organizationId, orderId)
}

// DwellSince computes the elapsed time since the previous event. Nil when
// there is no previous event: a first transition has no measured dwell, and
// zero would wrongly claim a measured sub-instant one.
func (r DurationResolver) DwellSince(previous *models.TransitionEvent) *time.Duration {
	if previous == nil {
		return nil
	}
	dwell := r.clock.Now().Sub(previous.CreatedAt)
	return &dwell
}
