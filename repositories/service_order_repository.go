package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/dbmodels"
)

func (repo *AgilizaDbRepository) GetServiceOrderById(
	ctx context.Context,
	exec Executor,
	orderId string,
) (models.ServiceOrder, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectServiceOrderColumns...).
		From(dbmodels.TABLE_SERVICE_ORDERS).
		Where(squirrel.Eq{"id": orderId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptServiceOrder)
}

func (repo *AgilizaDbRepository) CreateServiceOrder(
	ctx context.Context,
	exec Executor,
	attrs models.CreateServiceOrderAttributes,
	newOrderId string,
) error {
	query := NewQueryBuilder().Insert(dbmodels.TABLE_SERVICE_ORDERS).
		Columns(
			"id",
			"org_id",
			"customer_name",
			"equipment",
			"reported_issue",
			"status",
			"technical_status",
		).
		Values(
			newOrderId,
			attrs.OrganizationId,
			attrs.CustomerName,
			attrs.Equipment,
			attrs.ReportedIssue,
			models.OrderAberta,
			models.TechNaoIniciada,
		)

	_, err := ExecBuilder(ctx, exec, query)

	return err
}

func (repo *AgilizaDbRepository) UpdateServiceOrderStatus(
	ctx context.Context,
	exec Executor,
	orderId string,
	status models.OrderStatus,
	technicalStatus models.TechnicalStatus,
) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_SERVICE_ORDERS).
		Set("status", status).
		Set("technical_status", technicalStatus).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": orderId})

	_, err := ExecBuilder(ctx, exec, query)

	return err
}
