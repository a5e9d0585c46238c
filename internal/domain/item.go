package domain

import (
	"fmt"
	"time"
)

// Status represents the workflow stage of an item. Status and board
// column membership are the same fact: an item's status always equals
// the column it currently sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// ColumnOrder is the fixed display order of board columns.
var ColumnOrder = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// Valid reports whether s is a member of the closed status set
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// Priority represents the urgency of an item, totally ordered from
// highest down to lowest
type Priority string

const (
	PriorityHighest Priority = "highest"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityLow     Priority = "low"
	PriorityLowest  Priority = "lowest"
)

var priorityRank = map[Priority]int{
	PriorityHighest: 4,
	PriorityHigh:    3,
	PriorityMedium:  2,
	PriorityLow:     1,
	PriorityLowest:  0,
}

// Valid reports whether p is a member of the closed priority set
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Rank returns the numeric ordering of p, higher is more urgent
func (p Priority) Rank() int {
	return priorityRank[p]
}

// ItemType is the closed tag discriminating the item variants
type ItemType string

const (
	TypeTask  ItemType = "task"
	TypeStory ItemType = "story"
	TypeBug   ItemType = "bug"
	TypeEpic  ItemType = "epic"
)

// Valid reports whether t is a member of the closed type set
func (t ItemType) Valid() bool {
	switch t {
	case TypeTask, TypeStory, TypeBug, TypeEpic:
		return true
	}
	return false
}

// BugSeverity grades a bug variant
type BugSeverity string

const (
	SeverityCritical BugSeverity = "critical"
	SeverityMajor    BugSeverity = "major"
	SeverityMinor    BugSeverity = "minor"
)

// Valid reports whether s is a known bug severity
func (s BugSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

// Assignee is a denormalized snapshot of a user, resolved once from the
// user directory at assignment time and never re-resolved afterwards
type Assignee struct {
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Initials string `gorm:"type:varchar(10)" json:"initials"`
	Avatar   string `gorm:"type:text" json:"avatar,omitempty"`
}

// TypeFields carries the per-variant fields of the item union. Which
// group is meaningful is determined by Item.Type; ValidateFor rejects
// fields that do not belong to the given variant.
type TypeFields struct {
	Points   *int         `json:"points,omitempty"`   // story
	Severity *BugSeverity `json:"severity,omitempty"` // bug
	Color    *string      `json:"color,omitempty"`    // epic
}

// ValidateFor checks the field group against the item type tag. The
// switch is exhaustive over the closed type set.
func (f TypeFields) ValidateFor(t ItemType) error {
	switch t {
	case TypeTask:
		if f.Points != nil || f.Severity != nil || f.Color != nil {
			return fmt.Errorf("task items carry no type-specific fields")
		}
	case TypeStory:
		if f.Severity != nil || f.Color != nil {
			return fmt.Errorf("story items only carry points")
		}
		if f.Points != nil && *f.Points < 0 {
			return fmt.Errorf("story points must be non-negative")
		}
	case TypeBug:
		if f.Points != nil || f.Color != nil {
			return fmt.Errorf("bug items only carry severity")
		}
		if f.Severity != nil && !f.Severity.Valid() {
			return fmt.Errorf("invalid bug severity: %s", *f.Severity)
		}
	case TypeEpic:
		if f.Points != nil || f.Severity != nil {
			return fmt.Errorf("epic items only carry a theme color")
		}
	default:
		return fmt.Errorf("invalid item type: %s", t)
	}
	return nil
}

// Item represents a unit of work on the board
type Item struct {
	ID            string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	SprintID      *string    `gorm:"type:varchar(64);index:idx_items_sprint_id" json:"sprint_id,omitempty"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Type          ItemType   `gorm:"type:varchar(20);not null;index:idx_items_type" json:"type"`
	Priority      Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Status        Status     `gorm:"type:varchar(20);not null;index:idx_items_status" json:"status"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Assignee      *Assignee  `gorm:"embedded;embeddedPrefix:assignee_" json:"assignee,omitempty"`
	TypeFields    TypeFields `gorm:"serializer:json;type:jsonb" json:"type_fields"`
	OrderIndex    int        `gorm:"not null;default:0;index:idx_items_order" json:"order_index"`
	EstimateHours *float64   `json:"estimate_hours,omitempty"`
	ActualHours   *float64   `json:"actual_hours,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	c := *i
	if i.SprintID != nil {
		v := *i.SprintID
		c.SprintID = &v
	}
	if i.Assignee != nil {
		a := *i.Assignee
		c.Assignee = &a
	}
	if i.TypeFields.Points != nil {
		v := *i.TypeFields.Points
		c.TypeFields.Points = &v
	}
	if i.TypeFields.Severity != nil {
		v := *i.TypeFields.Severity
		c.TypeFields.Severity = &v
	}
	if i.TypeFields.Color != nil {
		v := *i.TypeFields.Color
		c.TypeFields.Color = &v
	}
	if i.EstimateHours != nil {
		v := *i.EstimateHours
		c.EstimateHours = &v
	}
	if i.ActualHours != nil {
		v := *i.ActualHours
		c.ActualHours = &v
	}
	return &c
}
