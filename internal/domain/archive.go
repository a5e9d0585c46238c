package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ArchivedItem is a done item moved out of the active board by the
// archival job. The full item record, comments included, is kept as a
// JSON payload so archived work stays inspectable without keeping the
// live table wide.
type ArchivedItem struct {
	ID         string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	SprintID   *string        `gorm:"type:varchar(64);index:idx_archived_items_sprint_id" json:"sprint_id,omitempty"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	ArchivedAt time.Time      `gorm:"not null;index:idx_archived_items_archived_at" json:"archived_at"`
}

// TableName specifies the table name for ArchivedItem
func (ArchivedItem) TableName() string {
	return "archived_items"
}
