package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type ActionEventFilters struct {
	OrderId    string     `form:"order_id"`
	ActorId    string     `form:"actor_id"`
	ActionKind string     `form:"action_kind"`
	Category   string     `form:"category"`
	From       *time.Time `form:"from"`
	To         *time.Time `form:"to"`
	Limit      int        `form:"limit" binding:"omitempty,gte=1,lte=100"`
	After      string     `form:"after"`
}

func (f ActionEventFilters) ToModel() models.ActionEventFilters {
	filters := models.ActionEventFilters{
		OrderId:    f.OrderId,
		ActorId:    f.ActorId,
		ActionKind: models.ActionKind(f.ActionKind),
		Category:   models.ActionCategory(f.Category),
	}
	if f.From != nil {
		filters.From = *f.From
	}
	if f.To != nil {
		filters.To = *f.To
	}
	return filters
}

type ActionEvent struct {
	Id            string         `json:"id"`
	OrderId       string         `json:"order_id"`
	ActionKind    string         `json:"action_kind"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	Detail        map[string]any `json:"detail,omitempty"`
	FieldChanged  null.String    `json:"field_changed"`
	PreviousValue null.String    `json:"previous_value"`
	NewValue      null.String    `json:"new_value"`
	ActorId       null.String    `json:"actor_id"`
	ActorName     string         `json:"actor_name"`
	ActorRole     string         `json:"actor_role"`
	Reason        null.String    `json:"reason"`
	Notes         null.String    `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	Origin        string         `json:"origin"`
}

func AdaptActionEvent(m models.ActionEvent) ActionEvent {
	return ActionEvent{
		Id:            m.Id,
		OrderId:       m.OrderId,
		ActionKind:    string(m.ActionKind),
		Category:      string(m.Category),
		Description:   m.Description,
		Detail:        m.Detail,
		FieldChanged:  null.StringFromPtr(m.FieldChanged),
		PreviousValue: null.StringFromPtr(m.PreviousValue),
		NewValue:      null.StringFromPtr(m.NewValue),
		ActorId:       null.StringFromPtr(m.ActorId),
		ActorName:     m.ActorName,
		ActorRole:     m.ActorRole,
		Reason:        null.StringFromPtr(m.Reason),
		Notes:         null.StringFromPtr(m.Notes),
		CreatedAt:     m.CreatedAt,
		Origin:        string(m.Origin),
	}
}
