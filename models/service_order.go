package models

import (
	"time"
)

// OrderStatus is the customer-facing status of a service order.
type OrderStatus string

const (
	OrderAberta              OrderStatus = "ABERTA"
	OrderEmAnalise           OrderStatus = "EM_ANALISE"
	OrderAguardandoAprovacao OrderStatus = "AGUARDANDO_APROVACAO"
	OrderAguardandoPeca      OrderStatus = "AGUARDANDO_PECA"
	OrderEmReparo            OrderStatus = "EM_REPARO"
	OrderPronta              OrderStatus = "PRONTA"
	OrderEntregue            OrderStatus = "ENTREGUE"
	OrderCancelada           OrderStatus = "CANCELADA"
	OrderUnknownStatus       OrderStatus = "UNKNOWN"
)

var ValidOrderStatuses = []OrderStatus{
	OrderAberta,
	OrderEmAnalise,
	OrderAguardandoAprovacao,
	OrderAguardandoPeca,
	OrderEmReparo,
	OrderPronta,
	OrderEntregue,
	OrderCancelada,
}

func OrderStatusFrom(s string) OrderStatus {
	for _, status := range ValidOrderStatuses {
		if s == string(status) {
			return status
		}
	}
	return OrderUnknownStatus
}

// TechnicalStatus is the bench-side status dimension used by technicians,
// independent of the status shown to the customer.
type TechnicalStatus string

const (
	TechNaoIniciada TechnicalStatus = "NAO_INICIADA"
	TechDiagnostico TechnicalStatus = "DIAGNOSTICO"
	TechBancada     TechnicalStatus = "BANCADA"
	TechTeste       TechnicalStatus = "TESTE"
	TechFinalizada  TechnicalStatus = "FINALIZADA"
	TechUnknown     TechnicalStatus = "UNKNOWN"
)

var ValidTechnicalStatuses = []TechnicalStatus{
	TechNaoIniciada,
	TechDiagnostico,
	TechBancada,
	TechTeste,
	TechFinalizada,
}

func TechnicalStatusFrom(s string) TechnicalStatus {
	for _, status := range ValidTechnicalStatuses {
		if s == string(status) {
			return status
		}
	}
	return TechUnknown
}

type ServiceOrder struct {
	Id              string
	OrganizationId  string
	Number          int
	CustomerName    string
	Equipment       string
	ReportedIssue   string
	Status          OrderStatus
	TechnicalStatus TechnicalStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateServiceOrderAttributes struct {
	OrganizationId string
	CustomerName   string
	Equipment      string
	ReportedIssue  string
}

type UpdateOrderStatusAttributes struct {
	OrderId         string
	Status          OrderStatus
	TechnicalStatus TechnicalStatus
	Reason          *string
	Notes           *string
	Origin          EventOrigin
}
