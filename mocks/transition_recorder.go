package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

type StatusActionRecorder struct {
	mock.Mock
}

func (m *StatusActionRecorder) RecordStatusChange(
	ctx context.Context,
	orderId string,
	previousStatus, newStatus models.OrderStatus,
	origin models.EventOrigin,
) (string, error) {
	args := m.Called(ctx, orderId, previousStatus, newStatus, origin)
	return args.String(0), args.Error(1)
}

type TransitionAppender struct {
	mock.Mock
}

func (m *TransitionAppender) AppendTransition(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	args := m.Called(ctx, exec, attrs, newEventId)
	return args.Error(0)
}
