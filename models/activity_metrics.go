package models

// ActivityMetrics summarizes the audit activity of one order or one whole
// organization. Computed by a full scan of the relevant events at query time.
type ActivityMetrics struct {
	TotalEvents           int
	EventsToday           int
	MostActiveActor       string
	MostCommonCategory    ActionCategory
	LastActionDescription string
}

type PaginationAndSorting struct {
	Limit    int
	OffsetId string
}

const DefaultAuditPageSize = 50
