package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type actionEventWriterRepository interface {
	CreateActionEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateActionEventAttributes, newEventId string) error
}

type RecordActionInput struct {
	OrderId       string
	ActionKind    models.ActionKind
	Category      models.ActionCategory
	Description   string
	Detail        map[string]any
	FieldChanged  *string
	PreviousValue *string
	NewValue      *string
	Reason        *string
	Notes         *string
	Origin        models.EventOrigin
	// RequestIp and ClientInfo are best-effort request context: recording
	// proceeds without them when the caller could not collect them.
	RequestIp  *string
	ClientInfo *string
}

// ActionRecorder appends generic audit entries for any tracked change on an
// order, plus convenience wrappers for the common kinds.
type ActionRecorder struct {
	enforceSecurity security.EnforceSecurityOrderAudit
	executorFactory executor_factory.ExecutorFactory
	orderRepository transitionRecorderOrderRepository
	repository      actionEventWriterRepository
	credentials     models.Credentials
}

func (usecase *ActionRecorder) RecordAction(
	ctx context.Context,
	input RecordActionInput,
) (string, error) {
	exec := usecase.executorFactory.NewExecutor()

	order, err := usecase.orderRepository.GetServiceOrderById(ctx, exec, input.OrderId)
	if err != nil {
		return "", err
	}
	if err := usecase.enforceSecurity.RecordOrderEvents(order); err != nil {
		return "", err
	}

	newEventId := uuid.NewString()
	err = usecase.repository.CreateActionEvent(ctx, exec, models.CreateActionEventAttributes{
		OrderId:        order.Id,
		OrganizationId: order.OrganizationId,
		ActionKind:     input.ActionKind,
		Category:       input.Category,
		Description:    input.Description,
		Detail:         input.Detail,
		FieldChanged:   input.FieldChanged,
		PreviousValue:  input.PreviousValue,
		NewValue:       input.NewValue,
		ActorId:        usecase.credentials.ActorIdOrNil(),
		ActorName:      usecase.credentials.ActorNameOrSystem(),
		ActorRole:      string(usecase.credentials.Role),
		Reason:         input.Reason,
		Notes:          input.Notes,
		Origin:         input.Origin,
		RequestIp:      input.RequestIp,
		ClientInfo:     input.ClientInfo,
	}, newEventId)
	if err != nil {
		return "", err
	}
	return newEventId, nil
}

// RecordStatusChange records the action-log counterpart of a status
// transition.
func (usecase *ActionRecorder) RecordStatusChange(
	ctx context.Context,
	orderId string,
	previousStatus, newStatus models.OrderStatus,
	origin models.EventOrigin,
) (string, error) {
	previous := string(previousStatus)
	next := string(newStatus)
	field := "status"
	return usecase.RecordAction(ctx, RecordActionInput{
		OrderId:       orderId,
		ActionKind:    models.ActionStatusChange,
		Category:      models.CategoryStatus,
		Description:   fmt.Sprintf("Status alterado de %s para %s", previous, next),
		FieldChanged:  &field,
		PreviousValue: &previous,
		NewValue:      &next,
		Origin:        origin,
	})
}

func (usecase *ActionRecorder) RecordAttachmentAdded(
	ctx context.Context,
	orderId string,
	fileName string,
	origin models.EventOrigin,
) (string, error) {
	return usecase.RecordAction(ctx, RecordActionInput{
		OrderId:     orderId,
		ActionKind:  models.ActionImageUpload,
		Category:    models.CategoryAnexos,
		Description: fmt.Sprintf("Anexo adicionado: %s", fileName),
		Detail:      map[string]any{"file_name": fileName},
		Origin:      origin,
	})
}

func (usecase *ActionRecorder) RecordValueChange(
	ctx context.Context,
	orderId string,
	field string,
	previousValue, newValue string,
	origin models.EventOrigin,
) (string, error) {
	return usecase.RecordAction(ctx, RecordActionInput{
		OrderId:       orderId,
		ActionKind:    models.ActionValueChange,
		Category:      models.CategoryFinanceiro,
		Description:   fmt.Sprintf("Valor de %s alterado", field),
		FieldChanged:  &field,
		PreviousValue: &previousValue,
		NewValue:      &newValue,
		Origin:        origin,
	})
}

func (usecase *ActionRecorder) RecordDelivery(
	ctx context.Context,
	orderId string,
	receivedBy string,
	origin models.EventOrigin,
) (string, error) {
	return usecase.RecordAction(ctx, RecordActionInput{
		OrderId:     orderId,
		ActionKind:  models.ActionDelivery,
		Category:    models.CategoryEntrega,
		Description: fmt.Sprintf("Equipamento entregue para %s", receivedBy),
		Detail:      map[string]any{"received_by": receivedBy},
		Origin:      origin,
	})
}
