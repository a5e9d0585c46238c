package dto

// SprintReportResponse aggregates item progress for one sprint scope.
// A nil sprintId means the report covers the whole backlog.
type SprintReportResponse struct {
	SprintID       *string `json:"sprintId,omitempty"`
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	EstimateHours  float64 `json:"estimateHours"`
	ActualHours    float64 `json:"actualHours"`
}

// AssigneeReportEntry aggregates completed work for one assignee
type AssigneeReportEntry struct {
	Name        string  `json:"name"`
	Initials    string  `json:"initials"`
	Completed   int64   `json:"completed"`
	ActualHours float64 `json:"actualHours"`
}

// AssigneeReportResponse lists per-assignee completion totals,
// ordered by completed count descending
type AssigneeReportResponse struct {
	SprintID  *string                `json:"sprintId,omitempty"`
	Assignees []*AssigneeReportEntry `json:"assignees"`
}
