package dto

import (
	"time"

	"project-tracker-api/internal/domain"
)

// CreateSprintRequest represents the request to create a sprint
type CreateSprintRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=255"`
	Goal      string     `json:"goal,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// UpdateSprintRequest represents the request to update a sprint.
// Omitted fields are left unchanged.
type UpdateSprintRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Goal      *string    `json:"goal,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// SprintResponse represents a sprint in API responses
type SprintResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Goal      string     `json:"goal,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FromSprint converts a domain sprint to its response shape
func FromSprint(s *domain.Sprint) *SprintResponse {
	return &SprintResponse{
		ID:        s.ID,
		Name:      s.Name,
		Goal:      s.Goal,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
