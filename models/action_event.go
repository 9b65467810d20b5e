package models

import (
	"time"
)

type ActionKind string

const (
	ActionStatusChange ActionKind = "STATUS_CHANGE"
	ActionImageUpload  ActionKind = "IMAGE_UPLOAD"
	ActionValueChange  ActionKind = "VALUE_CHANGE"
	ActionDelivery     ActionKind = "DELIVERY"
	ActionUnknown      ActionKind = "UNKNOWN"
)

func ActionKindFrom(s string) ActionKind {
	switch s {
	case "STATUS_CHANGE":
		return ActionStatusChange
	case "IMAGE_UPLOAD":
		return ActionImageUpload
	case "VALUE_CHANGE":
		return ActionValueChange
	case "DELIVERY":
		return ActionDelivery
	default:
		return ActionUnknown
	}
}

type ActionCategory string

const (
	CategoryStatus     ActionCategory = "STATUS"
	CategoryFinanceiro ActionCategory = "FINANCEIRO"
	CategoryAnexos     ActionCategory = "ANEXOS"
	CategoryEntrega    ActionCategory = "ENTREGA"
	CategoryGeral      ActionCategory = "GERAL"
)

func ActionCategoryFrom(s string) ActionCategory {
	switch s {
	case "STATUS":
		return CategoryStatus
	case "FINANCEIRO":
		return CategoryFinanceiro
	case "ANEXOS":
		return CategoryAnexos
	case "ENTREGA":
		return CategoryEntrega
	default:
		return CategoryGeral
	}
}

// ActionEvent is the generic audit entry for any tracked change on a service
// order, not only status transitions. Append-only, like TransitionEvent.
type ActionEvent struct {
	Id             string
	OrderId        string
	OrganizationId string
	ActionKind     ActionKind
	Category       ActionCategory
	Description    string
	// Detail is a schema-less payload whose shape depends on ActionKind.
	// Call sites that interpret a given kind validate what they need.
	Detail        map[string]any
	FieldChanged  *string
	PreviousValue *string
	NewValue      *string
	ActorId       *string
	ActorName     string
	ActorRole     string
	Reason        *string
	Notes         *string
	CreatedAt     time.Time
	Seq           int64
	Origin        EventOrigin
	RequestIp     *string
	ClientInfo    *string
}

type CreateActionEventAttributes struct {
	OrderId        string
	OrganizationId string
	ActionKind     ActionKind
	Category       ActionCategory
	Description    string
	Detail         map[string]any
	FieldChanged   *string
	PreviousValue  *string
	NewValue       *string
	ActorId        *string
	ActorName      string
	ActorRole      string
	Reason         *string
	Notes          *string
	Origin         EventOrigin
	RequestIp      *string
	ClientInfo     *string
}

type ActionEventFilters struct {
	OrganizationId string
	OrderId        string
	ActorId        string
	ActionKind     ActionKind
	Category       ActionCategory
	From           time.Time
	To             time.Time
}
