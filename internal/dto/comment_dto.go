package dto

import (
	"time"

	"project-tracker-api/internal/domain"
)

// CreateCommentRequest represents the request to append a comment to an item
// @Description Request body for appending a comment. Content must be
// @Description non-empty after trimming whitespace.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentResponse represents one comment in an item's thread
type CommentResponse struct {
	ItemID    string           `json:"itemId"`
	Seq       int              `json:"seq"`
	Author    AssigneeResponse `json:"author"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FromComment converts a domain comment to its response shape
func FromComment(c domain.Comment) *CommentResponse {
	return &CommentResponse{
		ItemID: c.ItemID,
		Seq:    c.Seq,
		Author: AssigneeResponse{
			Name:     c.Author.Name,
			Initials: c.Author.Initials,
			Avatar:   c.Author.Avatar,
		},
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// FromComments converts an ordered comment thread
func FromComments(comments []domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = FromComment(c)
	}
	return out
}
