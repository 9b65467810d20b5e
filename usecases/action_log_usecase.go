package usecases

import (
	"context"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type actionLogRepository interface {
	ListActionEvents(ctx context.Context, exec repositories.Executor,
		pagination models.PaginationAndSorting, filters models.ActionEventFilters) ([]models.ActionEvent, error)
}

// ActionLogUsecase exposes the organization-wide action log, keyset-paginated.
type ActionLogUsecase struct {
	enforceSecurity security.EnforceSecurityOrderAudit
	executorFactory executor_factory.ExecutorFactory
	repository      actionLogRepository
	credentials     models.Credentials
}

func (usecase *ActionLogUsecase) ListActionEvents(
	ctx context.Context,
	pagination models.PaginationAndSorting,
	filters models.ActionEventFilters,
) ([]models.ActionEvent, error) {
	filters.OrganizationId = usecase.credentials.OrganizationId
	if err := usecase.enforceSecurity.ReadOrganization(filters.OrganizationId); err != nil {
		return []models.ActionEvent{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	events, err := usecase.repository.ListActionEvents(ctx, exec, pagination, filters)
	if err != nil {
		return []models.ActionEvent{}, err
	}
	return events, nil
}
