package repositories

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/dbmodels"
)

func (repo *AgilizaDbRepository) CreateActionEvent(
	ctx context.Context,
	exec Executor,
	attrs models.CreateActionEventAttributes,
	newEventId string,
) error {
	var detail []byte
	if attrs.Detail != nil {
		var err error
		detail, err = json.Marshal(attrs.Detail)
		if err != nil {
			return errors.Wrap(err, "can't marshal action event detail")
		}
	}

	query := NewQueryBuilder().Insert(dbmodels.TABLE_ACTION_EVENTS).
		Columns(
			"id",
			"order_id",
			"org_id",
			"action_kind",
			"category",
			"description",
			"detail",
			"field_changed",
			"previous_value",
			"new_value",
			"actor_id",
			"actor_name",
			"actor_role",
			"reason",
			"notes",
			"origin",
			"request_ip",
			"client_info",
		).
		Values(
			newEventId,
			attrs.OrderId,
			attrs.OrganizationId,
			attrs.ActionKind,
			attrs.Category,
			attrs.Description,
			detail,
			attrs.FieldChanged,
			attrs.PreviousValue,
			attrs.NewValue,
			attrs.ActorId,
			attrs.ActorName,
			attrs.ActorRole,
			attrs.Reason,
			attrs.Notes,
			attrs.Origin,
			attrs.RequestIp,
			attrs.ClientInfo,
		)

	_, err := ExecBuilder(ctx, exec, query)

	return err
}

func (repo *AgilizaDbRepository) GetActionEvent(
	ctx context.Context,
	exec Executor,
	organizationId string,
	id string,
) (models.ActionEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectActionEventColumns...).
		From(dbmodels.TABLE_ACTION_EVENTS).
		Where("org_id = ?", organizationId).
		Where("id = ?", id)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptActionEvent)
}

// ListActionEvents returns an organization's action log, most recent first,
// keyset-paginated on (created_at, seq).
func (repo *AgilizaDbRepository) ListActionEvents(
	ctx context.Context,
	exec Executor,
	pagination models.PaginationAndSorting,
	filters models.ActionEventFilters,
) ([]models.ActionEvent, error) {
	limit := pagination.Limit
	if limit <= 0 {
		limit = models.DefaultAuditPageSize
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectActionEventColumns...).
		From(dbmodels.TABLE_ACTION_EVENTS).
		Where("org_id = ?", filters.OrganizationId).
		OrderBy("created_at DESC, seq DESC").
		Limit(uint64(limit))

	if pagination.OffsetId != "" {
		cursor, err := repo.GetActionEvent(ctx, exec, filters.OrganizationId, pagination.OffsetId)
		if err != nil {
			return nil, errors.Wrap(err, "could not retrieve cursor event")
		}
		query = query.Where("(created_at, seq) < (?, ?)", cursor.CreatedAt, cursor.Seq)
	}
	if filters.OrderId != "" {
		query = query.Where("order_id = ?", filters.OrderId)
	}
	if filters.ActorId != "" {
		query = query.Where("actor_id = ?", filters.ActorId)
	}
	if filters.ActionKind != "" {
		query = query.Where("action_kind = ?", filters.ActionKind)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if !filters.From.IsZero() {
		query = query.Where("created_at >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("created_at < ?", filters.To)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptActionEvent)
}

// ListOrderActionEvents returns every action event of one order in
// chronological order, for metric derivation.
func (repo *AgilizaDbRepository) ListOrderActionEvents(
	ctx context.Context,
	exec Executor,
	organizationId string,
	orderId string,
) ([]models.ActionEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectActionEventColumns...).
		From(dbmodels.TABLE_ACTION_EVENTS).
		Where("org_id = ?", organizationId).
		Where("order_id = ?", orderId).
		OrderBy("created_at ASC, seq ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptActionEvent)
}

// ListOrganizationActionEvents returns every action event of an organization
// in chronological order. Activity metrics are computed at query time from a
// full scan, there is no incremental maintenance.
func (repo *AgilizaDbRepository) ListOrganizationActionEvents(
	ctx context.Context,
	exec Executor,
	organizationId string,
) ([]models.ActionEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectActionEventColumns...).
		From(dbmodels.TABLE_ACTION_EVENTS).
		Where("org_id = ?", organizationId).
		OrderBy("created_at ASC, seq ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptActionEvent)
}
