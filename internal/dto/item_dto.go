package dto

import (
	"time"

	"project-tracker-api/internal/domain"
)

// CreateItemRequest represents the request to create a new work item
// @Description Request body for creating a work item. Fields points,
// @Description severity and color are only valid for story, bug and epic
// @Description types respectively.
type CreateItemRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=255"`
	Type          string   `json:"type" binding:"required,oneof=task story bug epic"`
	Priority      string   `json:"priority,omitempty" binding:"omitempty,oneof=highest high medium low lowest"`
	Description   string   `json:"description,omitempty"`
	SprintID      *string  `json:"sprintId,omitempty"`
	AssigneeID    *string  `json:"assigneeId,omitempty"`
	Points        *int     `json:"points,omitempty" binding:"omitempty,min=0"`
	Severity      *string  `json:"severity,omitempty" binding:"omitempty,oneof=critical major minor"`
	Color         *string  `json:"color,omitempty"`
	EstimateHours *float64 `json:"estimateHours,omitempty" binding:"omitempty,min=0"`
}

// UpdateItemRequest represents the request to update a work item.
// Omitted fields are left unchanged.
type UpdateItemRequest struct {
	Title         *string  `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Priority      *string  `json:"priority,omitempty" binding:"omitempty,oneof=highest high medium low lowest"`
	Description   *string  `json:"description,omitempty"`
	SprintID      *string  `json:"sprintId,omitempty"`
	AssigneeID    *string  `json:"assigneeId,omitempty"`
	Points        *int     `json:"points,omitempty" binding:"omitempty,min=0"`
	Severity      *string  `json:"severity,omitempty" binding:"omitempty,oneof=critical major minor"`
	Color         *string  `json:"color,omitempty"`
	EstimateHours *float64 `json:"estimateHours,omitempty" binding:"omitempty,min=0"`
	ActualHours   *float64 `json:"actualHours,omitempty" binding:"omitempty,min=0"`
}

// CompleteItemRequest optionally records hours worked while completing
type CompleteItemRequest struct {
	ActualHours *float64 `json:"actualHours,omitempty" binding:"omitempty,min=0"`
}

// AssigneeResponse is the denormalized assignee snapshot on an item
type AssigneeResponse struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Avatar   string `json:"avatar,omitempty"`
}

// ItemResponse represents a work item in API responses
type ItemResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Type          string            `json:"type"`
	Priority      string            `json:"priority"`
	Status        string            `json:"status"`
	Description   string            `json:"description,omitempty"`
	SprintID      *string           `json:"sprintId,omitempty"`
	Assignee      *AssigneeResponse `json:"assignee,omitempty"`
	Points        *int              `json:"points,omitempty"`
	Severity      *string           `json:"severity,omitempty"`
	Color         *string           `json:"color,omitempty"`
	OrderIndex    int               `json:"orderIndex"`
	EstimateHours *float64          `json:"estimateHours,omitempty"`
	ActualHours   *float64          `json:"actualHours,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// FromItem converts a domain item to its response shape
func FromItem(item *domain.Item) *ItemResponse {
	resp := &ItemResponse{
		ID:            item.ID,
		Title:         item.Title,
		Type:          string(item.Type),
		Priority:      string(item.Priority),
		Status:        string(item.Status),
		Description:   item.Description,
		SprintID:      item.SprintID,
		Points:        item.TypeFields.Points,
		Color:         item.TypeFields.Color,
		OrderIndex:    item.OrderIndex,
		EstimateHours: item.EstimateHours,
		ActualHours:   item.ActualHours,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.TypeFields.Severity != nil {
		s := string(*item.TypeFields.Severity)
		resp.Severity = &s
	}
	if item.Assignee != nil {
		resp.Assignee = &AssigneeResponse{
			Name:     item.Assignee.Name,
			Initials: item.Assignee.Initials,
			Avatar:   item.Assignee.Avatar,
		}
	}
	return resp
}

// FromItems converts a slice of domain items
func FromItems(items []*domain.Item) []*ItemResponse {
	out := make([]*ItemResponse, len(items))
	for i, item := range items {
		out[i] = FromItem(item)
	}
	return out
}
