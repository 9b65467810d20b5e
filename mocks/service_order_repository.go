package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

type ServiceOrderRepository struct {
	mock.Mock
}

func (m *ServiceOrderRepository) GetServiceOrderById(
	ctx context.Context,
	exec repositories.Executor,
	orderId string,
) (models.ServiceOrder, error) {
	args := m.Called(ctx, exec, orderId)
	return args.Get(0).(models.ServiceOrder), args.Error(1)
}

func (m *ServiceOrderRepository) CreateServiceOrder(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateServiceOrderAttributes,
	newOrderId string,
) error {
	args := m.Called(ctx, exec, attrs, newOrderId)
	return args.Error(0)
}

func (m *ServiceOrderRepository) UpdateServiceOrderStatus(
	ctx context.Context,
	exec repositories.Executor,
	orderId string,
	status models.OrderStatus,
	technicalStatus models.TechnicalStatus,
) error {
	args := m.Called(ctx, exec, orderId, status, technicalStatus)
	return args.Error(0)
}
