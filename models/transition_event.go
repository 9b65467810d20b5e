package models

import (
	"time"
)

// EventOrigin identifies which flow produced an audit event.
type EventOrigin string

const (
	OriginTechnicianApp  EventOrigin = "technician_app"
	OriginCustomerPortal EventOrigin = "customer_portal"
	OriginSystem         EventOrigin = "system"
	OriginUnknown        EventOrigin = "unknown"
)

func EventOriginFrom(s string) EventOrigin {
	switch s {
	case "technician_app":
		return OriginTechnicianApp
	case "customer_portal":
		return OriginCustomerPortal
	case "system":
		return OriginSystem
	default:
		return OriginUnknown
	}
}

// TransitionEvent is one immutable entry of an order's status audit trail.
// It always carries both status dimensions' before/after values; an unchanged
// dimension has before == after. The first event of an order has nil previous
// statuses and nil dwell duration.
type TransitionEvent struct {
	Id                      string
	OrderId                 string
	OrganizationId          string
	PreviousStatus          *OrderStatus
	NewStatus               OrderStatus
	PreviousTechnicalStatus *TechnicalStatus
	NewTechnicalStatus      TechnicalStatus
	ActorId                 *string
	ActorName               string
	Reason                  *string
	Notes                   *string
	// DwellDuration is the wall-clock time the order spent in its previous
	// status, measured against the immediately preceding event of the same
	// order. Nil (not zero) for the first event.
	DwellDuration *time.Duration
	CreatedAt     time.Time
	// Seq is a monotonic insertion counter used to break created_at ties
	// between concurrent writers.
	Seq    int64
	Origin EventOrigin
}

type CreateTransitionEventAttributes struct {
	OrderId                 string
	OrganizationId          string
	PreviousStatus          *OrderStatus
	NewStatus               OrderStatus
	PreviousTechnicalStatus *TechnicalStatus
	NewTechnicalStatus      TechnicalStatus
	ActorId                 *string
	ActorName               string
	Reason                  *string
	Notes                   *string
	DwellDuration           *time.Duration
	Origin                  EventOrigin
}
