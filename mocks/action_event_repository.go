package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

type ActionEventRepository struct {
	mock.Mock
}

func (m *ActionEventRepository) CreateActionEvent(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateActionEventAttributes,
	newEventId string,
) error {
	args := m.Called(ctx, exec, attrs, newEventId)
	return args.Error(0)
}

func (m *ActionEventRepository) GetActionEvent(
	ctx context.Context,
	exec repositories.Executor,
	organizationId, id string,
) (models.ActionEvent, error) {
	args := m.Called(ctx, exec, organizationId, id)
	return args.Get(0).(models.ActionEvent), args.Error(1)
}

func (m *ActionEventRepository) ListActionEvents(
	ctx context.Context,
	exec repositories.Executor,
	pagination models.PaginationAndSorting,
	filters models.ActionEventFilters,
) ([]models.ActionEvent, error) {
	args := m.Called(ctx, exec, pagination, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionEvent), args.Error(1)
}

func (m *ActionEventRepository) ListOrderActionEvents(
	ctx context.Context,
	exec repositories.Executor,
	organizationId, orderId string,
) ([]models.ActionEvent, error) {
	args := m.Called(ctx, exec, organizationId, orderId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionEvent), args.Error(1)
}

func (m *ActionEventRepository) ListOrganizationActionEvents(
	ctx context.Context,
	exec repositories.Executor,
	organizationId string,
) ([]models.ActionEvent, error) {
	args := m.Called(ctx, exec, organizationId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionEvent), args.Error(1)
}
