package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// ArchiveRepository defines the interface for archived item data access
type ArchiveRepository interface {
	Archive(ctx context.Context, item *domain.Item, comments []domain.Comment) error
	FindAll(ctx context.Context) ([]*domain.ArchivedItem, error)
}

// archiveRepositoryImpl is the GORM implementation of ArchiveRepository
type archiveRepositoryImpl struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new instance of ArchiveRepository
func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepositoryImpl{db: db}
}

// archivePayload is the JSON shape stored for an archived item
type archivePayload struct {
	Item     *domain.Item     `json:"item"`
	Comments []domain.Comment `json:"comments,omitempty"`
}

// Archive moves an item and its comments into the archive table in one
// transaction: the payload row is written, then the live rows removed.
func (r *archiveRepositoryImpl) Archive(ctx context.Context, item *domain.Item, comments []domain.Comment) error {
	payload, err := json.Marshal(archivePayload{Item: item, Comments: comments})
	if err != nil {
		return err
	}

	archived := &domain.ArchivedItem{
		ID:         item.ID,
		SprintID:   item.SprintID,
		Title:      item.Title,
		Payload:    payload,
		ArchivedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(archived).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Item{}, "id = ?", item.ID).Error
	})
}

// FindAll lists archived items, newest first
func (r *archiveRepositoryImpl) FindAll(ctx context.Context) ([]*domain.ArchivedItem, error) {
	var items []*domain.ArchivedItem
	if err := r.db.WithContext(ctx).
		Order("archived_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
