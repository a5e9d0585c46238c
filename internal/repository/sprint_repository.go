package repository

import (
	"context"

	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(ctx context.Context, sprint *domain.Sprint) error
	FindByID(ctx context.Context, id string) (*domain.Sprint, error)
	FindAll(ctx context.Context) ([]*domain.Sprint, error)
	Update(ctx context.Context, sprint *domain.Sprint) error
	Delete(ctx context.Context, id string) error
}

// sprintRepositoryImpl is the GORM implementation of SprintRepository
type sprintRepositoryImpl struct {
	db *gorm.DB
}

// NewSprintRepository creates a new instance of SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &sprintRepositoryImpl{db: db}
}

// Create creates a new sprint
func (r *sprintRepositoryImpl) Create(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Create(sprint).Error
}

// FindByID finds a sprint by its ID
func (r *sprintRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Sprint, error) {
	var sprint domain.Sprint
	if err := r.db.WithContext(ctx).First(&sprint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// FindAll lists sprints newest first
func (r *sprintRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Sprint, error) {
	var sprints []*domain.Sprint
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

// Update saves all fields of a sprint
func (r *sprintRepositoryImpl) Update(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Save(sprint).Error
}

// Delete removes a sprint; items keep their sprint reference cleared
func (r *sprintRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Item{}).
			Where("sprint_id = ?", id).
			Update("sprint_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Sprint{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
