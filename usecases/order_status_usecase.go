package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

var auditRecordingFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "agiliza_audit_recording_failures_total",
	Help: "Status mutations that committed while their audit record could not be written.",
})

type orderStatusRepository interface {
	GetServiceOrderById(ctx context.Context, exec repositories.Executor,
		orderId string) (models.ServiceOrder, error)
	CreateServiceOrder(ctx context.Context, exec repositories.Executor,
		attrs models.CreateServiceOrderAttributes, newOrderId string) error
	UpdateServiceOrderStatus(ctx context.Context, exec repositories.Executor,
		orderId string, status models.OrderStatus, technicalStatus models.TechnicalStatus) error
}

type transitionRecorder interface {
	RecordTransition(ctx context.Context, input RecordTransitionInput) (models.TransitionEvent, error)
}

type statusActionRecorder interface {
	RecordStatusChange(ctx context.Context, orderId string,
		previousStatus, newStatus models.OrderStatus, origin models.EventOrigin) (string, error)
}

// OrderStatusUsecase is the order mutation flow. It persists status changes
// and records the matching audit transition. Audit recording is deliberately
// fire-and-forget with respect to the mutation: a lost audit entry is
// recoverable, a technician blocked from changing an order's status because
// logging failed is not.
type OrderStatusUsecase struct {
	enforceSecurity    security.EnforceSecurityOrderAudit
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         orderStatusRepository
	recorder           transitionRecorder
	actionRecorder     statusActionRecorder
	credentials        models.Credentials
}

func (usecase *OrderStatusUsecase) CreateOrder(
	ctx context.Context,
	attrs models.CreateServiceOrderAttributes,
) (models.ServiceOrder, error) {
	if attrs.OrganizationId == "" {
		attrs.OrganizationId = usecase.credentials.OrganizationId
	}
	if err := usecase.enforceSecurity.ReadOrganization(attrs.OrganizationId); err != nil {
		return models.ServiceOrder{}, err
	}

	newOrderId := uuid.NewString()
	order, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ServiceOrder, error) {
			if err := usecase.repository.CreateServiceOrder(ctx, tx, attrs, newOrderId); err != nil {
				return models.ServiceOrder{}, err
			}
			return usecase.repository.GetServiceOrderById(ctx, tx, newOrderId)
		})
	if err != nil {
		return models.ServiceOrder{}, err
	}

	// first transition of the order: no previous statuses, no dwell
	usecase.recordTransition(ctx, RecordTransitionInput{
		OrderId:            order.Id,
		NewStatus:          order.Status,
		NewTechnicalStatus: order.TechnicalStatus,
		Origin:             models.OriginSystem,
	})

	return order, nil
}

func (usecase *OrderStatusUsecase) UpdateOrderStatus(
	ctx context.Context,
	attrs models.UpdateOrderStatusAttributes,
) (models.ServiceOrder, error) {
	if attrs.Status == models.OrderUnknownStatus ||
		attrs.TechnicalStatus == models.TechUnknown {
		return models.ServiceOrder{}, models.ErrUnknownOrderStatus
	}

	var previousStatus models.OrderStatus
	order, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ServiceOrder, error) {
			order, err := usecase.repository.GetServiceOrderById(ctx, tx, attrs.OrderId)
			if err != nil {
				return models.ServiceOrder{}, err
			}
			if err := usecase.enforceSecurity.RecordOrderEvents(order); err != nil {
				return models.ServiceOrder{}, err
			}

			status := attrs.Status
			if status == "" {
				status = order.Status
			}
			technicalStatus := attrs.TechnicalStatus
			if technicalStatus == "" {
				technicalStatus = order.TechnicalStatus
			}
			previousStatus = order.Status
			if status == order.Status && technicalStatus == order.TechnicalStatus {
				return models.ServiceOrder{}, errors.Wrapf(models.ErrSameOrderStatus,
					"order %s", order.Id)
			}

			if err := usecase.repository.UpdateServiceOrderStatus(ctx, tx,
				order.Id, status, technicalStatus); err != nil {
				return models.ServiceOrder{}, err
			}

			order.Status = status
			order.TechnicalStatus = technicalStatus
			return order, nil
		})
	if err != nil {
		return models.ServiceOrder{}, err
	}

	// The mutation is already committed; a recording failure is logged and
	// counted, never propagated.
	usecase.recordTransition(ctx, RecordTransitionInput{
		OrderId:            order.Id,
		NewStatus:          order.Status,
		NewTechnicalStatus: order.TechnicalStatus,
		Reason:             attrs.Reason,
		Notes:              attrs.Notes,
		Origin:             attrs.Origin,
	})
	if previousStatus != order.Status {
		if _, err := usecase.actionRecorder.RecordStatusChange(ctx, order.Id,
			previousStatus, order.Status, attrs.Origin); err != nil {
			utils.LoggerFromContext(ctx).WarnContext(ctx, "status change action not recorded",
				"order_id", order.Id, "error", err.Error())
		}
	}

	return order, nil
}

func (usecase *OrderStatusUsecase) recordTransition(ctx context.Context, input RecordTransitionInput) {
	if _, err := usecase.recorder.RecordTransition(ctx, input); err != nil {
		auditRecordingFailures.Inc()
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "audit transition not recorded",
			"order_id", input.OrderId, "error", err.Error())
	}
}
