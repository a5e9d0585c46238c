package domain

import "time"

// Sprint represents a time-boxed iteration that items can be grouped
// into. Items keep an optional SprintID reference.
type Sprint struct {
	ID        string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Goal      string     `gorm:"type:text" json:"goal,omitempty"`
	StartDate *time.Time `gorm:"type:timestamp" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:timestamp" json:"end_date,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}
