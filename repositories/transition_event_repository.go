package repositories

import (
	"context"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories/dbmodels"
)

// The transition event log is append-only: this repository exposes no update
// or delete. Corrections are recorded as new events.

// CreateTransitionEvent inserts a transition event directly. This is the
// degraded fallback write path; RecordTransitionValidated is the primary one.
func (repo *AgilizaDbRepository) CreateTransitionEvent(
	ctx context.Context,
	exec Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	query := NewQueryBuilder().Insert(dbmodels.TABLE_TRANSITION_EVENTS).
		Columns(
			"id",
			"order_id",
			"org_id",
			"previous_status",
			"new_status",
			"previous_technical_status",
			"new_technical_status",
			"actor_id",
			"actor_name",
			"reason",
			"notes",
			"dwell_duration",
			"origin",
		).
		Values(
			newEventId,
			attrs.OrderId,
			attrs.OrganizationId,
			(*string)(attrs.PreviousStatus),
			attrs.NewStatus,
			(*string)(attrs.PreviousTechnicalStatus),
			attrs.NewTechnicalStatus,
			attrs.ActorId,
			attrs.ActorName,
			attrs.Reason,
			attrs.Notes,
			dbmodels.IntervalFromDuration(attrs.DwellDuration),
			attrs.Origin,
		)

	_, err := ExecBuilder(ctx, exec, query)

	return err
}

// RecordTransitionValidated appends a transition event through the
// record_order_transition sql function, which re-validates in the database
// that the order belongs to the given organization before inserting.
func (repo *AgilizaDbRepository) RecordTransitionValidated(
	ctx context.Context,
	exec Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	_, err := exec.Exec(ctx,
		`SELECT record_order_transition(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		newEventId,
		attrs.OrderId,
		attrs.OrganizationId,
		(*string)(attrs.PreviousStatus),
		attrs.NewStatus,
		(*string)(attrs.PreviousTechnicalStatus),
		attrs.NewTechnicalStatus,
		attrs.ActorId,
		attrs.ActorName,
		attrs.Reason,
		attrs.Notes,
		dbmodels.IntervalFromDuration(attrs.DwellDuration),
		attrs.Origin,
	)

	return err
}

// ListTransitionEvents returns the transition events of an order, most recent
// first by default. Ties on created_at are broken by the insertion counter so
// the order stays stable under concurrent writers.
func (repo *AgilizaDbRepository) ListTransitionEvents(
	ctx context.Context,
	exec Executor,
	organizationId string,
	orderId string,
	ascending bool,
) ([]models.TransitionEvent, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectTransitionEventColumns...).
		From(dbmodels.TABLE_TRANSITION_EVENTS).
		Where("org_id = ?", organizationId).
		Where("order_id = ?", orderId).
		OrderBy("created_at " + direction + ", seq " + direction)

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptTransitionEvent)
}

// LatestTransitionEvent returns the most recent event of an order, or nil if
// the order has none yet.
func (repo *AgilizaDbRepository) LatestTransitionEvent(
	ctx context.Context,
	exec Executor,
	organizationId string,
	orderId string,
) (*models.TransitionEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectTransitionEventColumns...).
		From(dbmodels.TABLE_TRANSITION_EVENTS).
		Where("org_id = ?", organizationId).
		Where("order_id = ?", orderId).
		OrderBy("created_at DESC, seq DESC").
		Limit(1)

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptTransitionEvent)
}
