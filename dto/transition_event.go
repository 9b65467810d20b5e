package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/pure_utils"
)

type TransitionEvent struct {
	Id                      string      `json:"id"`
	OrderId                 string      `json:"order_id"`
	PreviousStatus          null.String `json:"previous_status"`
	NewStatus               string      `json:"new_status"`
	PreviousTechnicalStatus null.String `json:"previous_technical_status"`
	NewTechnicalStatus      string      `json:"new_technical_status"`
	ActorId                 null.String `json:"actor_id"`
	ActorName               string      `json:"actor_name"`
	Reason                  null.String `json:"reason"`
	Notes                   null.String `json:"notes"`
	// DwellDuration keeps the machine-readable duration; DwellLabel is the
	// "2d 3h 10m" form the timeline renders.
	DwellDuration null.String `json:"dwell_duration"`
	DwellLabel    null.String `json:"dwell_label"`
	CreatedAt     time.Time   `json:"created_at"`
	Origin        string      `json:"origin"`
}

func AdaptTransitionEvent(m models.TransitionEvent) TransitionEvent {
	out := TransitionEvent{
		Id:                 m.Id,
		OrderId:            m.OrderId,
		NewStatus:          string(m.NewStatus),
		NewTechnicalStatus: string(m.NewTechnicalStatus),
		ActorId:            null.StringFromPtr(m.ActorId),
		ActorName:          m.ActorName,
		Reason:             null.StringFromPtr(m.Reason),
		Notes:              null.StringFromPtr(m.Notes),
		CreatedAt:          m.CreatedAt,
		Origin:             string(m.Origin),
	}
	if m.PreviousStatus != nil {
		out.PreviousStatus = null.StringFrom(string(*m.PreviousStatus))
	}
	if m.PreviousTechnicalStatus != nil {
		out.PreviousTechnicalStatus = null.StringFrom(string(*m.PreviousTechnicalStatus))
	}
	if m.DwellDuration != nil {
		out.DwellDuration = null.StringFrom(m.DwellDuration.String())
		out.DwellLabel = null.StringFrom(pure_utils.FormatDuration(*m.DwellDuration))
	}
	return out
}

// RecordTransitionBody carries a status transition. Either dimension may be
// omitted to leave it unchanged, but at least one must be supplied.
type RecordTransitionBody struct {
	NewStatus          string  `json:"new_status"`
	NewTechnicalStatus string  `json:"new_technical_status"`
	Reason             *string `json:"reason"`
	Notes              *string `json:"notes"`
	Origin             string  `json:"origin"`
}
