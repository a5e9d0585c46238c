package dto

// MoveItemRequest represents a drag-and-drop move gesture
// @Description Target column must be one of todo, inProgress, review,
// @Description done. Target index is clamped into the valid range for
// @Description the target column.
type MoveItemRequest struct {
	TargetColumn string `json:"targetColumn" binding:"required"`
	TargetIndex  int    `json:"targetIndex"`
}

// StatusChangeResponse describes a confirmed cross-column transition
type StatusChangeResponse struct {
	ItemID string `json:"itemId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// MoveItemResponse is returned after a confirmed move
type MoveItemResponse struct {
	Item         *ItemResponse         `json:"item"`
	StatusChange *StatusChangeResponse `json:"statusChange,omitempty"`
}

// ColumnResponse is one board column with its ordered items
type ColumnResponse struct {
	Status string          `json:"status"`
	Items  []*ItemResponse `json:"items"`
}

// BoardResponse is the full board grouped by column
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
}
