package dto

import (
	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type ActivityMetrics struct {
	TotalEvents           int    `json:"total_events"`
	EventsToday           int    `json:"events_today"`
	MostActiveActor       string `json:"most_active_actor"`
	MostCommonCategory    string `json:"most_common_category"`
	LastActionDescription string `json:"last_action_description"`
}

func AdaptActivityMetrics(m models.ActivityMetrics) ActivityMetrics {
	return ActivityMetrics{
		TotalEvents:           m.TotalEvents,
		EventsToday:           m.EventsToday,
		MostActiveActor:       m.MostActiveActor,
		MostCommonCategory:    string(m.MostCommonCategory),
		LastActionDescription: m.LastActionDescription,
	}
}
