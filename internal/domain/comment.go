package domain

import "time"

// Comment represents one entry in an item's append-only comment thread.
// Sequence numbers are monotonic per item; comments are owned by the
// item they belong to and removed together with it.
type Comment struct {
	ItemID    string    `gorm:"type:varchar(64);primaryKey" json:"item_id"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Author    Assignee  `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
