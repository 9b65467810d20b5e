package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

type TransitionEventRepository struct {
	mock.Mock
}

func (m *TransitionEventRepository) CreateTransitionEvent(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	args := m.Called(ctx, exec, attrs, newEventId)
	return args.Error(0)
}

func (m *TransitionEventRepository) RecordTransitionValidated(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	args := m.Called(ctx, exec, attrs, newEventId)
	return args.Error(0)
}

func (m *TransitionEventRepository) LatestTransitionEvent(
	ctx context.Context,
	exec repositories.Executor,
	organizationId, orderId string,
) (*models.TransitionEvent, error) {
	args := m.Called(ctx, exec, organizationId, orderId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransitionEvent), args.Error(1)
}

func (m *TransitionEventRepository) ListTransitionEvents(
	ctx context.Context,
	exec repositories.Executor,
	organizationId, orderId string,
	ascending bool,
) ([]models.TransitionEvent, error) {
	args := m.Called(ctx, exec, organizationId, orderId, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransitionEvent), args.Error(1)
}
