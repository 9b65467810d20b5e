package dto

import (
	"time"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type ServiceOrder struct {
	Id              string    `json:"id"`
	Number          int       `json:"number"`
	CustomerName    string    `json:"customer_name"`
	Equipment       string    `json:"equipment"`
	ReportedIssue   string    `json:"reported_issue"`
	Status          string    `json:"status"`
	TechnicalStatus string    `json:"technical_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func AdaptServiceOrder(m models.ServiceOrder) ServiceOrder {
	return ServiceOrder{
		Id:              m.Id,
		Number:          m.Number,
		CustomerName:    m.CustomerName,
		Equipment:       m.Equipment,
		ReportedIssue:   m.ReportedIssue,
		Status:          string(m.Status),
		TechnicalStatus: string(m.TechnicalStatus),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type CreateServiceOrderBody struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	Equipment     string `json:"equipment"`
	ReportedIssue string `json:"reported_issue"`
}
