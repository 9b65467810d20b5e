package dbmodels

import (
	"time"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

type DBServiceOrder struct {
	Id              string    `db:"id"`
	OrgId           string    `db:"org_id"`
	Number          int       `db:"number"`
	CustomerName    string    `db:"customer_name"`
	Equipment       string    `db:"equipment"`
	ReportedIssue   string    `db:"reported_issue"`
	Status          string    `db:"status"`
	TechnicalStatus string    `db:"technical_status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const TABLE_SERVICE_ORDERS = "service_orders"

var SelectServiceOrderColumns = utils.ColumnList[DBServiceOrder]()

func AdaptServiceOrder(db DBServiceOrder) (models.ServiceOrder, error) {
	return models.ServiceOrder{
		Id:              db.Id,
		OrganizationId:  db.OrgId,
		Number:          db.Number,
		CustomerName:    db.CustomerName,
		Equipment:       db.Equipment,
		ReportedIssue:   db.ReportedIssue,
		Status:          models.OrderStatusFrom(db.Status),
		TechnicalStatus: models.TechnicalStatusFrom(db.TechnicalStatus),
		CreatedAt:       db.CreatedAt,
		UpdatedAt:       db.UpdatedAt,
	}, nil
}
