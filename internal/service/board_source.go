package service

import (
	"context"

	"project-tracker-api/internal/boardsync"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/repository"
)

// repoItemSource adapts the item repository to the sync adapter's
// remote source interface. The database plays the role of the
// authoritative store that confirms or rejects optimistic board state.
type repoItemSource struct {
	itemRepo repository.ItemRepository
}

func NewRepoItemSource(itemRepo repository.ItemRepository) boardsync.ItemSource {
	return &repoItemSource{itemRepo: itemRepo}
}

func (s *repoItemSource) FetchItems(ctx context.Context) ([]*domain.Item, error) {
	return s.itemRepo.FindAll(ctx, nil)
}

func (s *repoItemSource) UpdateItem(ctx context.Context, id string, patch boardsync.ItemPatch) (*domain.Item, error) {
	return s.itemRepo.UpdatePlacement(ctx, id, patch.Status, patch.OrderIndex)
}

// repoCommentSink persists confirmed comment appends
type repoCommentSink struct {
	commentRepo repository.CommentRepository
}

func NewRepoCommentSink(commentRepo repository.CommentRepository) boardsync.CommentSink {
	return &repoCommentSink{commentRepo: commentRepo}
}

func (s *repoCommentSink) PostComment(ctx context.Context, itemID string, comment domain.Comment) error {
	c := comment
	c.ItemID = itemID
	return s.commentRepo.Create(ctx, &c)
}
