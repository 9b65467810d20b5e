package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

type DBActionEvent struct {
	Id            string          `db:"id"`
	OrderId       string          `db:"order_id"`
	OrgId         string          `db:"org_id"`
	ActionKind    string          `db:"action_kind"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Detail        json.RawMessage `db:"detail"`
	FieldChanged  *string         `db:"field_changed"`
	PreviousValue *string         `db:"previous_value"`
	NewValue      *string         `db:"new_value"`
	ActorId       *string         `db:"actor_id"`
	ActorName     string          `db:"actor_name"`
	ActorRole     string          `db:"actor_role"`
	Reason        *string         `db:"reason"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	Seq           int64           `db:"seq"`
	Origin        string          `db:"origin"`
	RequestIp     *string         `db:"request_ip"`
	ClientInfo    *string         `db:"client_info"`
}

const TABLE_ACTION_EVENTS = "order_action_events"

var SelectActionEventColumns = utils.ColumnList[DBActionEvent]()

func AdaptActionEvent(db DBActionEvent) (models.ActionEvent, error) {
	var detail map[string]any
	if len(db.Detail) > 0 {
		if err := json.Unmarshal(db.Detail, &detail); err != nil {
			return models.ActionEvent{}, errors.Wrap(err, "can't unmarshal action event detail")
		}
	}

	return models.ActionEvent{
		Id:             db.Id,
		OrderId:        db.OrderId,
		OrganizationId: db.OrgId,
		ActionKind:     models.ActionKindFrom(db.ActionKind),
		Category:       models.ActionCategoryFrom(db.Category),
		Description:    db.Description,
		Detail:         detail,
		FieldChanged:   db.FieldChanged,
		PreviousValue:  db.PreviousValue,
		NewValue:       db.NewValue,
		ActorId:        db.ActorId,
		ActorName:      db.ActorName,
		ActorRole:      db.ActorRole,
		Reason:         db.Reason,
		Notes:          db.Notes,
		CreatedAt:      db.CreatedAt,
		Seq:            db.Seq,
		Origin:         models.EventOriginFrom(db.Origin),
		RequestIp:      db.RequestIp,
		ClientInfo:     db.ClientInfo,
	}, nil
}
