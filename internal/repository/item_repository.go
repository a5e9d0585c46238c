package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// ItemFilters narrows item listing
type ItemFilters struct {
	SprintID *string
	Status   *domain.Status
	Type     *domain.ItemType
	Assignee *string // assignee name
}

// SprintTotals aggregates item counts and hours for one sprint scope
type SprintTotals struct {
	Total         int64   `json:"total"`
	Completed     int64   `json:"completed"`
	EstimateHours float64 `json:"estimate_hours"`
	ActualHours   float64 `json:"actual_hours"`
}

// AssigneeTotals aggregates completed work per assignee
type AssigneeTotals struct {
	Name        string  `json:"name"`
	Initials    string  `json:"initials"`
	Completed   int64   `json:"completed"`
	ActualHours float64 `json:"actual_hours"`
}

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	FindAll(ctx context.Context, filters *ItemFilters) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	UpdatePlacement(ctx context.Context, id string, status domain.Status, orderIndex int) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	FindDoneBefore(ctx context.Context, cutoff time.Time) ([]*domain.Item, error)
	SprintTotals(ctx context.Context, sprintID *string) (*SprintTotals, error)
	AssigneeTotals(ctx context.Context, sprintID *string) ([]*AssigneeTotals, error)
}

// itemRepositoryImpl is the GORM implementation of ItemRepository
type itemRepositoryImpl struct {
	db *gorm.DB
}

// NewItemRepository creates a new instance of ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepositoryImpl{db: db}
}

// Create creates a new item
func (r *itemRepositoryImpl) Create(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID finds an item by its ID
func (r *itemRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll lists items ordered for board display: by order index within
// status, creation time as tie break.
func (r *itemRepositoryImpl) FindAll(ctx context.Context, filters *ItemFilters) ([]*domain.Item, error) {
	query := r.db.WithContext(ctx).Model(&domain.Item{})
	if filters != nil {
		if filters.SprintID != nil {
			query = query.Where("sprint_id = ?", *filters.SprintID)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.Type != nil {
			query = query.Where("type = ?", *filters.Type)
		}
		if filters.Assignee != nil {
			query = query.Where("assignee_name = ?", *filters.Assignee)
		}
	}

	var items []*domain.Item
	if err := query.
		Order("order_index ASC").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves all fields of an item
func (r *itemRepositoryImpl) Update(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdatePlacement persists the status and order index of a moved item
// and returns the updated record
func (r *itemRepositoryImpl) UpdatePlacement(ctx context.Context, id string, status domain.Status, orderIndex int) (*domain.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"order_index": orderIndex,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes an item and the comments owned by it
func (r *itemRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Item{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountByStatus counts items in one workflow stage
func (r *itemRepositoryImpl) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindDoneBefore lists done items last touched before the cutoff,
// candidates for archival
func (r *itemRepositoryImpl) FindDoneBefore(ctx context.Context, cutoff time.Time) ([]*domain.Item, error) {
	var items []*domain.Item
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", domain.StatusDone, cutoff).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SprintTotals aggregates counts and hours, optionally scoped to one sprint
func (r *itemRepositoryImpl) SprintTotals(ctx context.Context, sprintID *string) (*SprintTotals, error) {
	query := r.db.WithContext(ctx).Model(&domain.Item{}).
		Select(`count(*) as total,
			coalesce(sum(case when status = ? then 1 else 0 end), 0) as completed,
			coalesce(sum(estimate_hours), 0) as estimate_hours,
			coalesce(sum(case when status = ? then actual_hours else 0 end), 0) as actual_hours`,
			domain.StatusDone, domain.StatusDone)
	if sprintID != nil {
		query = query.Where("sprint_id = ?", *sprintID)
	}

	var totals SprintTotals
	if err := query.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

// AssigneeTotals aggregates completed items and hours per assignee,
// optionally scoped to one sprint. Unassigned items are excluded.
func (r *itemRepositoryImpl) AssigneeTotals(ctx context.Context, sprintID *string) ([]*AssigneeTotals, error) {
	query := r.db.WithContext(ctx).Model(&domain.Item{}).
		Select(`assignee_name as name,
			assignee_initials as initials,
			coalesce(sum(case when status = ? then 1 else 0 end), 0) as completed,
			coalesce(sum(case when status = ? then actual_hours else 0 end), 0) as actual_hours`,
			domain.StatusDone, domain.StatusDone).
		Where("assignee_name IS NOT NULL AND assignee_name <> ''").
		Group("assignee_name, assignee_initials").
		Order("completed DESC")
	if sprintID != nil {
		query = query.Where("sprint_id = ?", *sprintID)
	}

	var totals []*AssigneeTotals
	if err := query.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
