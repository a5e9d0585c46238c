package repository

import (
	"context"

	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// CommentRepository defines the interface for comment data access.
// Threads are append-only; there is no update or single delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByItemID(ctx context.Context, itemID string) ([]domain.Comment, error)
	DeleteByItemID(ctx context.Context, itemID string) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create persists a comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByItemID lists an item's thread in sequence order
func (r *commentRepositoryImpl) FindByItemID(ctx context.Context, itemID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("seq ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByItemID removes a whole thread, used when its item is destroyed
func (r *commentRepositoryImpl) DeleteByItemID(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&domain.Comment{}).Error
}
