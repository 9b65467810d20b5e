package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

type DBTransitionEvent struct {
	Id                      string           `db:"id"`
	OrderId                 string           `db:"order_id"`
	OrgId                   string           `db:"org_id"`
	PreviousStatus          *string          `db:"previous_status"`
	NewStatus               string           `db:"new_status"`
	PreviousTechnicalStatus *string          `db:"previous_technical_status"`
	NewTechnicalStatus      string           `db:"new_technical_status"`
	ActorId                 *string          `db:"actor_id"`
	ActorName               string           `db:"actor_name"`
	Reason                  *string          `db:"reason"`
	Notes                   *string          `db:"notes"`
	DwellDuration           *pgtype.Interval `db:"dwell_duration"`
	CreatedAt               time.Time        `db:"created_at"`
	Seq                     int64            `db:"seq"`
	Origin                  string           `db:"origin"`
}

const TABLE_TRANSITION_EVENTS = "order_transition_events"

var SelectTransitionEventColumns = utils.ColumnList[DBTransitionEvent]()

func AdaptTransitionEvent(db DBTransitionEvent) (models.TransitionEvent, error) {
	var previousStatus *models.OrderStatus
	if db.PreviousStatus != nil {
		status := models.OrderStatusFrom(*db.PreviousStatus)
		previousStatus = &status
	}
	var previousTechnicalStatus *models.TechnicalStatus
	if db.PreviousTechnicalStatus != nil {
		status := models.TechnicalStatusFrom(*db.PreviousTechnicalStatus)
		previousTechnicalStatus = &status
	}

	return models.TransitionEvent{
		Id:                      db.Id,
		OrderId:                 db.OrderId,
		OrganizationId:          db.OrgId,
		PreviousStatus:          previousStatus,
		NewStatus:               models.OrderStatusFrom(db.NewStatus),
		PreviousTechnicalStatus: previousTechnicalStatus,
		NewTechnicalStatus:      models.TechnicalStatusFrom(db.NewTechnicalStatus),
		ActorId:                 db.ActorId,
		ActorName:               db.ActorName,
		Reason:                  db.Reason,
		Notes:                   db.Notes,
		DwellDuration:           DurationFromInterval(db.DwellDuration),
		CreatedAt:               db.CreatedAt,
		Seq:                     db.Seq,
		Origin:                  models.EventOriginFrom(db.Origin),
	}, nil
}

// IntervalFromDuration converts a nullable duration to the pg interval type
// used by the dwell_duration column.
func IntervalFromDuration(d *time.Duration) *pgtype.Interval {
	if d == nil {
		return nil
	}
	return &pgtype.Interval{
		Microseconds: d.Microseconds(),
		Valid:        true,
	}
}

// DurationFromInterval converts a pg interval back to a duration. Months are
// normalized to 30 days; dwell times are written in microseconds only, so
// this matters just for rows touched by hand.
func DurationFromInterval(iv *pgtype.Interval) *time.Duration {
	if iv == nil || !iv.Valid {
		return nil
	}
	d := time.Duration(iv.Microseconds)*time.Microsecond +
		time.Duration(iv.Days)*24*time.Hour +
		time.Duration(iv.Months)*30*24*time.Hour
	return &d
}
