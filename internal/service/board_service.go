package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"project-tracker-api/internal/board"
	"project-tracker-api/internal/boardsync"
	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	GetBoard(ctx context.Context) (*dto.BoardResponse, error)
	MoveItem(ctx context.Context, itemID string, req *dto.MoveItemRequest) (*dto.MoveItemResponse, error)
	GetComments(ctx context.Context, itemID string) ([]*dto.CommentResponse, error)
	AddComment(ctx context.Context, itemID string, author domain.Assignee, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Reload(ctx context.Context) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	adapter     *boardsync.Adapter
	commentRepo repository.CommentRepository
	reportCache *cache.ReportCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	adapter *boardsync.Adapter,
	commentRepo repository.CommentRepository,
	reportCache *cache.ReportCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		adapter:     adapter,
		commentRepo: commentRepo,
		reportCache: reportCache,
		metrics:     m,
		logger:      logger,
	}
}

// Reload rebuilds the in-memory board from the repository
func (s *boardServiceImpl) Reload(ctx context.Context) error {
	if err := s.adapter.Load(ctx); err != nil {
		s.logger.Error("Failed to load board", zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	return nil
}

func (s *boardServiceImpl) ensureLoaded(ctx context.Context) error {
	if s.adapter.Loaded() {
		return nil
	}
	return s.Reload(ctx)
}

// GetBoard returns all columns with their ordered items
func (s *boardServiceImpl) GetBoard(ctx context.Context) (*dto.BoardResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	items := s.adapter.Items()
	byID := make(map[string]*domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	cols := s.adapter.Columns()
	resp := &dto.BoardResponse{Columns: make([]dto.ColumnResponse, 0, len(cols))}
	for _, col := range cols {
		colResp := dto.ColumnResponse{
			Status: string(col.Status),
			Items:  make([]*dto.ItemResponse, 0, len(col.ItemIDs)),
		}
		for _, id := range col.ItemIDs {
			if item, ok := byID[id]; ok {
				colResp.Items = append(colResp.Items, dto.FromItem(item))
			}
		}
		resp.Columns = append(resp.Columns, colResp)
	}
	return resp, nil
}

// MoveItem applies a drag gesture through the sync adapter
func (s *boardServiceImpl) MoveItem(ctx context.Context, itemID string, req *dto.MoveItemRequest) (*dto.MoveItemResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	target := domain.Status(req.TargetColumn)
	change, err := s.adapter.MoveItem(ctx, itemID, target, req.TargetIndex)
	if err != nil {
		var syncErr *boardsync.SyncError
		switch {
		case errors.As(err, &syncErr):
			if s.metrics != nil {
				s.metrics.RecordBoardMove("rolled_back")
				s.metrics.IncrementSyncRollback()
			}
			return nil, response.NewAppError(response.ErrCodeSyncFailure, "Move was rejected by the store and rolled back", err.Error())
		case errors.Is(err, board.ErrInvalidColumn):
			return nil, response.NewAppError(response.ErrCodeInvalidColumn, "Unknown target column", req.TargetColumn)
		case errors.Is(err, board.ErrNotFound):
			return nil, response.NewAppError(response.ErrCodeNotFound, "Item not found", itemID)
		default:
			s.logger.Error("Move failed", zap.String("item_id", itemID), zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to move item", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.RecordBoardMove("confirmed")
	}

	item, err := s.adapter.Item(itemID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read item after move", err.Error())
	}

	resp := &dto.MoveItemResponse{Item: dto.FromItem(item)}
	if change != nil {
		if s.metrics != nil {
			s.metrics.RecordStatusChange(string(change.From), string(change.To))
		}
		s.invalidateReports(ctx, item.SprintID)
		resp.StatusChange = &dto.StatusChangeResponse{
			ItemID: change.ItemID,
			From:   string(change.From),
			To:     string(change.To),
		}
	}
	return resp, nil
}

// GetComments returns the ordered comment thread for an item
func (s *boardServiceImpl) GetComments(ctx context.Context, itemID string) ([]*dto.CommentResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := s.syncThread(ctx, itemID); err != nil {
		return nil, err
	}
	comments, err := s.adapter.Comments(itemID)
	if err != nil {
		return nil, s.mapCommentError(err, itemID)
	}
	return dto.FromComments(comments), nil
}

// AddComment appends a comment through the sync adapter
func (s *boardServiceImpl) AddComment(ctx context.Context, itemID string, author domain.Assignee, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	// Seed the in-memory thread so sequence numbers continue from the
	// persisted tail.
	if err := s.syncThread(ctx, itemID); err != nil {
		return nil, err
	}

	comment, err := s.adapter.AddComment(ctx, itemID, author, req.Content)
	if err != nil {
		var syncErr *boardsync.SyncError
		if errors.As(err, &syncErr) {
			if s.metrics != nil {
				s.metrics.IncrementSyncRollback()
			}
			return nil, response.NewAppError(response.ErrCodeSyncFailure, "Comment was rejected by the store and rolled back", err.Error())
		}
		return nil, s.mapCommentError(err, itemID)
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentAdded()
	}
	return dto.FromComment(comment), nil
}

// syncThread seeds the in-memory thread from the repository when the
// persisted thread is longer, e.g. right after a board reload.
func (s *boardServiceImpl) syncThread(ctx context.Context, itemID string) error {
	inMemory, err := s.adapter.Comments(itemID)
	if err != nil {
		return s.mapCommentError(err, itemID)
	}
	persisted, err := s.commentRepo.FindByItemID(ctx, itemID)
	if err != nil {
		s.logger.Error("Failed to read comment thread", zap.String("item_id", itemID), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to read comments", err.Error())
	}
	if len(persisted) > len(inMemory) {
		if err := s.adapter.SeedComments(itemID, persisted); err != nil {
			return s.mapCommentError(err, itemID)
		}
	}
	return nil
}

func (s *boardServiceImpl) mapCommentError(err error, itemID string) error {
	switch {
	case errors.Is(err, board.ErrNotFound):
		return response.NewAppError(response.ErrCodeNotFound, "Item not found", itemID)
	case errors.Is(err, board.ErrValidation):
		return response.NewAppError(response.ErrCodeValidation, "Comment content must not be empty", "")
	default:
		return response.NewAppError(response.ErrCodeInternal, "Comment operation failed", err.Error())
	}
}

func (s *boardServiceImpl) invalidateReports(ctx context.Context, sprintID *string) {
	keys := []string{"sprint:all", "assignees:all"}
	if sprintID != nil {
		keys = append(keys, "sprint:"+*sprintID, "assignees:"+*sprintID)
	}
	s.reportCache.Invalidate(ctx, keys...)
}
