package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agenciabaepi/AgilizaOS-sub004/mocks"
	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/clock"
)

type TransitionRecorderTestSuite struct {
	suite.Suite
	enforceSecurity *mocks.EnforceSecurity
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	orderRepository *mocks.ServiceOrderRepository
	eventRepository *mocks.TransitionEventRepository
	appender        *mocks.TransitionAppender
	clock           *clock.Mock

	organizationId string
	orderId        string
	order          models.ServiceOrder
}

func (suite *TransitionRecorderTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.orderRepository = new(mocks.ServiceOrderRepository)
	suite.eventRepository = new(mocks.TransitionEventRepository)
	suite.appender = new(mocks.TransitionAppender)
	suite.clock = clock.NewMock(time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC))

	suite.organizationId = "11111111-1111-1111-1111-111111111111"
	suite.orderId = "22222222-2222-2222-2222-222222222222"
	suite.order = models.ServiceOrder{
		Id:              suite.orderId,
		OrganizationId:  suite.organizationId,
		Status:          models.OrderAberta,
		TechnicalStatus: models.TechNaoIniciada,
	}
}

func (suite *TransitionRecorderTestSuite) makeUsecase(creds models.Credentials) *TransitionRecorder {
	return &TransitionRecorder{
		enforceSecurity:  suite.enforceSecurity,
		executorFactory:  suite.executorFactory,
		orderRepository:  suite.orderRepository,
		durationResolver: NewDurationResolver(suite.eventRepository, suite.clock),
		writer:           suite.appender,
		clock:            suite.clock,
		credentials:      creds,
	}
}

func (suite *TransitionRecorderTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.orderRepository.AssertExpectations(t)
	suite.eventRepository.AssertExpectations(t)
	suite.appender.AssertExpectations(t)
}

func (suite *TransitionRecorderTestSuite) Test_RecordTransition_FirstEvent() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.orderRepository.On("GetServiceOrderById", ctx, suite.executor, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)
	suite.eventRepository.On("LatestTransitionEvent", ctx, suite.executor,
		suite.organizationId, suite.orderId).Return(nil, nil)

	var written models.CreateTransitionEventAttributes
	suite.appender.On("AppendTransition", ctx, suite.executor,
		mock.AnythingOfType("models.CreateTransitionEventAttributes"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			written = args.Get(2).(models.CreateTransitionEventAttributes)
		}).
		Return(nil)

	event, err := suite.makeUsecase(models.Credentials{}).RecordTransition(ctx, RecordTransitionInput{
		OrderId:            suite.orderId,
		NewStatus:          models.OrderAberta,
		NewTechnicalStatus: models.TechNaoIniciada,
	})

	suite.NoError(err)
	suite.Nil(written.PreviousStatus)
	suite.Nil(written.PreviousTechnicalStatus)
	suite.Nil(written.DwellDuration, "first event has no dwell, not a zero dwell")
	suite.Equal(models.SystemActorName, written.ActorName)
	suite.Nil(written.ActorId)
	suite.Equal(models.OrderAberta, event.NewStatus)
	suite.NotEmpty(event.Id)
	suite.AssertExpectations()
}

func (suite *TransitionRecorderTestSuite) Test_RecordTransition_DwellFromPreviousEvent() {
	ctx := context.Background()

	previous := &models.TransitionEvent{
		Id:                 "33333333-3333-3333-3333-333333333333",
		OrderId:            suite.orderId,
		OrganizationId:     suite.organizationId,
		NewStatus:          models.OrderAberta,
		NewTechnicalStatus: models.TechNaoIniciada,
		CreatedAt:          suite.clock.Now().Add(-2 * time.Hour),
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.orderRepository.On("GetServiceOrderById", ctx, suite.executor, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(nil)
	suite.eventRepository.On("LatestTransitionEvent", ctx, suite.executor,
		suite.organizationId, suite.orderId).Return(previous, nil)

	var written models.CreateTransitionEventAttributes
	suite.appender.On("AppendTransition", ctx, suite.executor,
		mock.AnythingOfType("models.CreateTransitionEventAttributes"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			written = args.Get(2).(models.CreateTransitionEventAttributes)
		}).
		Return(nil)

	creds := models.Credentials{
		OrganizationId: suite.organizationId,
		ActorIdentity:  models.ActorIdentity{UserId: "u-1", Name: "Carlos"},
	}
	_, err := suite.makeUsecase(creds).RecordTransition(ctx, RecordTransitionInput{
		OrderId:   suite.orderId,
		NewStatus: models.OrderEmAnalise,
		// technical status unchanged: carried from the previous event
	})

	suite.NoError(err)
	suite.Require().NotNil(written.DwellDuration)
	suite.Equal(2*time.Hour, *written.DwellDuration)

	// complete before/after snapshot on both dimensions
	suite.Require().NotNil(written.PreviousStatus)
	suite.Equal(models.OrderAberta, *written.PreviousStatus)
	suite.Equal(models.OrderEmAnalise, written.NewStatus)
	suite.Require().NotNil(written.PreviousTechnicalStatus)
	suite.Equal(models.TechNaoIniciada, *written.PreviousTechnicalStatus)
	suite.Equal(models.TechNaoIniciada, written.NewTechnicalStatus,
		"unchanged dimension keeps before == after")

	suite.Equal("Carlos", written.ActorName)
	suite.Require().NotNil(written.ActorId)
	suite.Equal("u-1", *written.ActorId)
	suite.AssertExpectations()
}

func (suite *TransitionRecorderTestSuite) Test_RecordTransition_ForbiddenBeforeAnyWrite() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.orderRepository.On("GetServiceOrderById", ctx, suite.executor, suite.orderId).
		Return(suite.order, nil)
	suite.enforceSecurity.On("RecordOrderEvents", suite.order).Return(models.ForbiddenError)

	_, err := suite.makeUsecase(models.Credentials{}).RecordTransition(ctx, RecordTransitionInput{
		OrderId:   suite.orderId,
		NewStatus: models.OrderEmAnalise,
	})

	suite.ErrorIs(err, models.ForbiddenError)
	suite.appender.AssertNotCalled(suite.T(), "AppendTransition",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *TransitionRecorderTestSuite) Test_RecordTransition_MissingOrder() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.orderRepository.On("GetServiceOrderById", ctx, suite.executor, suite.orderId).
		Return(models.ServiceOrder{}, models.ErrOrderNotFound)

	_, err := suite.makeUsecase(models.Credentials{}).RecordTransition(ctx, RecordTransitionInput{
		OrderId:   suite.orderId,
		NewStatus: models.OrderEmAnalise,
	})

	suite.ErrorIs(err, models.NotFoundError)
	suite.appender.AssertNotCalled(suite.T(), "AppendTransition",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func TestTransitionRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionRecorderTestSuite))
}
