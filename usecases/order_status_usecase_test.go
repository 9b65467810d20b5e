package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agenciabaepi/AgilizaOS-sub004/mocks"
	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type transitionRecorderMock struct {
	mock.Mock
}

func (m *transitionRecorderMock) RecordTransition(
	ctx context.Context,
	input RecordTransitionInput,
) (models.TransitionEvent, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.TransitionEvent), args.Error(1)
}

type OrderStatusUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity *mocks.EnforceSecurity
	repository      *mocks.ServiceOrderRepository
	recorder        *transitionRecorderMock
	actionRecorder  *mocks.StatusActionRecorder
	transaction     *mocks.Transaction

	orderId string
	order   models.ServiceOrder
}

func (suite *OrderStatusUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.repository = new(mocks.ServiceOrderRepository)
	suite.recorder = new(transitionRecorderMock)
	suite.actionRecorder = new(mocks.StatusActionRecorder)
	suite.transaction = new(mocks.Transaction)

	suite.orderId = "22222222-2222-2222-2222-222222222222"
	suite.order = models.ServiceOrder{
		Id:              suite.orderId,
		OrganizationId:  "11111111-1111-1111-1111-111111111111",
		Status:          models.OrderEmAnalise,
		TechnicalStatus: models.TechDiagnostico,
	}
}

func (suite *OrderStatusUsecaseTestSuite) makeUsecase() *OrderStatusUsecase {
	return &OrderStatusUsecase{
		enforceSecurity:    suite.enforceSecurity,
		transactionFactory: mocks.TransactionFactory{Tx: suite.transaction},
		repository:         suite.repository,
		recorder:           suite.recorder,
		actionRecorder:     suite.actionRecorder,
		credentials:        models.Credentials{OrganizationId: suite.order.OrganizationId},
	}
}

func (suite *OrderStatusUsecaseTestSuite) Test_UpdateOrderStatus_Nominal() {
	ctx := context.Background()

	suite.repository.On("GetServiceOrderById", ctx, suite.transaction, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)
	suite.repository.On("UpdateServiceOrderStatus", ctx, suite.transaction,
		suite.orderId, models.OrderEmReparo, models.TechBancada).Return(nil)
	suite.recorder.On("RecordTransition", ctx, mock.MatchedBy(func(input RecordTransitionInput) bool {
		return input.OrderId == suite.orderId &&
			input.NewStatus == models.OrderEmReparo &&
			input.NewTechnicalStatus == models.TechBancada
	})).Return(models.TransitionEvent{}, nil)
	suite.actionRecorder.On("RecordStatusChange", ctx, suite.orderId,
		models.OrderEmAnalise, models.OrderEmReparo, models.OriginTechnicianApp).
		Return("action-1", nil)

	order, err := suite.makeUsecase().UpdateOrderStatus(ctx, models.UpdateOrderStatusAttributes{
		OrderId:         suite.orderId,
		Status:          models.OrderEmReparo,
		TechnicalStatus: models.TechBancada,
		Origin:          models.OriginTechnicianApp,
	})

	suite.NoError(err)
	suite.Equal(models.OrderEmReparo, order.Status)
	suite.Equal(models.TechBancada, order.TechnicalStatus)
	suite.recorder.AssertExpectations(suite.T())
	suite.actionRecorder.AssertExpectations(suite.T())
}

func (suite *OrderStatusUsecaseTestSuite) Test_UpdateOrderStatus_AuditOutageDoesNotBlockMutation() {
	ctx := context.Background()

	suite.repository.On("GetServiceOrderById", ctx, suite.transaction, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)
	suite.repository.On("UpdateServiceOrderStatus", ctx, suite.transaction,
		suite.orderId, models.OrderPronta, models.TechFinalizada).Return(nil)
	suite.recorder.On("RecordTransition", ctx, mock.Anything).
		Return(models.TransitionEvent{}, errors.Wrap(models.ErrAuditNotRecorded, "both paths down"))
	suite.actionRecorder.On("RecordStatusChange", ctx, suite.orderId,
		models.OrderEmAnalise, models.OrderPronta, models.OriginSystem).
		Return("", errors.New("audit store down"))

	order, err := suite.makeUsecase().UpdateOrderStatus(ctx, models.UpdateOrderStatusAttributes{
		OrderId:         suite.orderId,
		Status:          models.OrderPronta,
		TechnicalStatus: models.TechFinalizada,
		Origin:          models.OriginSystem,
	})

	suite.NoError(err, "the committed mutation must survive an audit outage")
	suite.Equal(models.OrderPronta, order.Status)
}

func (suite *OrderStatusUsecaseTestSuite) Test_UpdateOrderStatus_SameStatus() {
	ctx := context.Background()

	suite.repository.On("GetServiceOrderById", ctx, suite.transaction, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)

	_, err := suite.makeUsecase().UpdateOrderStatus(ctx, models.UpdateOrderStatusAttributes{
		OrderId:         suite.orderId,
		Status:          suite.order.Status,
		TechnicalStatus: suite.order.TechnicalStatus,
	})

	suite.ErrorIs(err, models.ErrSameOrderStatus)
	suite.repository.AssertNotCalled(suite.T(), "UpdateServiceOrderStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.recorder.AssertNotCalled(suite.T(), "RecordTransition", mock.Anything, mock.Anything)
}

func (suite *OrderStatusUsecaseTestSuite) Test_UpdateOrderStatus_UnknownStatus() {
	ctx := context.Background()

	_, err := suite.makeUsecase().UpdateOrderStatus(ctx, models.UpdateOrderStatusAttributes{
		OrderId: suite.orderId,
		Status:  models.OrderStatusFrom("EM_CONSERTO"),
	})

	suite.ErrorIs(err, models.ErrUnknownOrderStatus)
	suite.repository.AssertNotCalled(suite.T(), "GetServiceOrderById",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderStatusUsecaseTestSuite) Test_UpdateOrderStatus_EmptyFieldsKeepCurrentValues() {
	ctx := context.Background()

	suite.repository.On("GetServiceOrderById", ctx, suite.transaction, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)
	suite.repository.On("UpdateServiceOrderStatus", ctx, suite.transaction,
		suite.orderId, suite.order.Status, models.TechBancada).Return(nil)
	suite.recorder.On("RecordTransition", ctx, mock.Anything).
		Return(models.TransitionEvent{}, nil)

	// only the technical dimension moves, the public status stays
	order, err := suite.makeUsecase().UpdateOrderStatus(ctx, models.UpdateOrderStatusAttributes{
		OrderId:         suite.orderId,
		TechnicalStatus: models.TechBancada,
	})

	suite.NoError(err)
	suite.Equal(suite.order.Status, order.Status)
	suite.Equal(models.TechBancada, order.TechnicalStatus)
	suite.actionRecorder.AssertNotCalled(suite.T(), "RecordStatusChange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderStatusUsecaseTestSuite) Test_CreateOrder_RecordsFirstTransition() {
	ctx := context.Background()
	created := suite.order
	created.Status = models.OrderAberta
	created.TechnicalStatus = models.TechNaoIniciada

	suite.enforceSecurity.On("ReadOrganization", suite.order.OrganizationId).Return(nil)
	suite.repository.On("CreateServiceOrder", ctx, suite.transaction,
		mock.AnythingOfType("models.CreateServiceOrderAttributes"), mock.AnythingOfType("string")).
		Return(nil)
	suite.repository.On("GetServiceOrderById", ctx, suite.transaction,
		mock.AnythingOfType("string")).Return(created, nil)
	suite.recorder.On("RecordTransition", ctx, mock.MatchedBy(func(input RecordTransitionInput) bool {
		return input.NewStatus == models.OrderAberta && input.Origin == models.OriginSystem
	})).Return(models.TransitionEvent{}, nil)

	order, err := suite.makeUsecase().CreateOrder(ctx, models.CreateServiceOrderAttributes{
		CustomerName: "Dona Maria",
		Equipment:    "Notebook Dell",
	})

	suite.NoError(err)
	suite.Equal(models.OrderAberta, order.Status)
	suite.recorder.AssertExpectations(suite.T())
}

func TestOrderStatusUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(OrderStatusUsecaseTestSuite))
}
