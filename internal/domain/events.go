package domain

// StatusChange is emitted when a board move carries an item across
// columns. Same-column reorders emit nothing.
type StatusChange struct {
	ItemID string `json:"item_id"`
	From   Status `json:"from"`
	To     Status `json:"to"`
}
