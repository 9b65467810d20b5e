package usecases

import (
	"time"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/clock"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/executor_factory"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases/security"
)

type Usecases struct {
	Repository         *repositories.AgilizaDbRepository
	ExecutorFactory    executor_factory.ExecutorFactory
	TransactionFactory executor_factory.TransactionFactory
	Clock              clock.Clock
	// Location is the deployment's operating timezone, used for calendar-day
	// metrics. Tenant-level overrides would hang off the organization record.
	Location *time.Location
}

func NewUsecases(
	repository *repositories.AgilizaDbRepository,
	executorGetter repositories.ExecutorGetter,
	location *time.Location,
) Usecases {
	factory := executor_factory.NewDbExecutorFactory(executorGetter)
	return Usecases{
		Repository:         repository,
		ExecutorFactory:    factory,
		TransactionFactory: factory,
		Clock:              clock.New(),
		Location:           location,
	}
}

// UsecasesWithCreds builds per-request usecases bound to the caller's
// credentials.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (uc UsecasesWithCreds) enforceOrderAudit() security.EnforceSecurityOrderAudit {
	return &security.EnforceSecurityOrderAuditImpl{
		EnforceSecurity: &security.EnforceSecurityImpl{Credentials: uc.Credentials},
		Credentials:     uc.Credentials,
	}
}

func (uc UsecasesWithCreds) NewTransitionRecorder() *TransitionRecorder {
	return &TransitionRecorder{
		enforceSecurity:  uc.enforceOrderAudit(),
		executorFactory:  uc.ExecutorFactory,
		orderRepository:  uc.Repository,
		durationResolver: NewDurationResolver(uc.Repository, uc.Clock),
		writer: FailoverTransitionWriter{
			Primary:  ValidatedTransitionWriter{Repository: uc.Repository},
			Fallback: DirectTransitionWriter{Repository: uc.Repository},
		},
		clock:       uc.Clock,
		credentials: uc.Credentials,
	}
}

func (uc UsecasesWithCreds) NewActionRecorder() *ActionRecorder {
	return &ActionRecorder{
		enforceSecurity: uc.enforceOrderAudit(),
		executorFactory: uc.ExecutorFactory,
		orderRepository: uc.Repository,
		repository:      uc.Repository,
		credentials:     uc.Credentials,
	}
}

func (uc UsecasesWithCreds) NewOrderStatusUsecase() *OrderStatusUsecase {
	return &OrderStatusUsecase{
		enforceSecurity:    uc.enforceOrderAudit(),
		executorFactory:    uc.ExecutorFactory,
		transactionFactory: uc.TransactionFactory,
		repository:         uc.Repository,
		recorder:           uc.NewTransitionRecorder(),
		actionRecorder:     uc.NewActionRecorder(),
		credentials:        uc.Credentials,
	}
}

func (uc UsecasesWithCreds) NewTimelineUsecase() *TimelineUsecase {
	return &TimelineUsecase{
		enforceSecurity: uc.enforceOrderAudit(),
		executorFactory: uc.ExecutorFactory,
		orderRepository: uc.Repository,
		repository:      uc.Repository,
	}
}

func (uc UsecasesWithCreds) NewActivityMetricsUsecase() *ActivityMetricsUsecase {
	return &ActivityMetricsUsecase{
		enforceSecurity: uc.enforceOrderAudit(),
		executorFactory: uc.ExecutorFactory,
		orderRepository: uc.Repository,
		repository:      uc.Repository,
		clock:           uc.Clock,
		location:        uc.Location,
		credentials:     uc.Credentials,
	}
}

func (uc UsecasesWithCreds) NewActionLogUsecase() *ActionLogUsecase {
	return &ActionLogUsecase{
		enforceSecurity: uc.enforceOrderAudit(),
		executorFactory: uc.ExecutorFactory,
		repository:      uc.Repository,
		credentials:     uc.Credentials,
	}
}
