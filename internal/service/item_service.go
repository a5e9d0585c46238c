package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/client"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

// ItemService defines the interface for work item business logic
type ItemService interface {
	CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetItem(ctx context.Context, id string) (*dto.ItemResponse, error)
	ListItems(ctx context.Context, filters *repository.ItemFilters) ([]*dto.ItemResponse, error)
	UpdateItem(ctx context.Context, id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error)
	CompleteItem(ctx context.Context, id string, req *dto.CompleteItemRequest) (*dto.MoveItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
}

// itemServiceImpl is the implementation of ItemService
type itemServiceImpl struct {
	itemRepo    repository.ItemRepository
	sprintRepo  repository.SprintRepository
	userClient  client.UserClient
	boardSvc    BoardService
	reportCache *cache.ReportCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewItemService creates a new instance of ItemService
func NewItemService(
	itemRepo repository.ItemRepository,
	sprintRepo repository.SprintRepository,
	userClient client.UserClient,
	boardSvc BoardService,
	reportCache *cache.ReportCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ItemService {
	return &itemServiceImpl{
		itemRepo:    itemRepo,
		sprintRepo:  sprintRepo,
		userClient:  userClient,
		boardSvc:    boardSvc,
		reportCache: reportCache,
		metrics:     m,
		logger:      logger,
	}
}

// CreateItem validates and persists a new work item at the bottom of
// the todo column, then reloads the board view.
func (s *itemServiceImpl) CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	itemType := domain.ItemType(req.Type)
	if !itemType.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown item type", req.Type)
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.Valid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Unknown priority", req.Priority)
		}
	}

	fields := domain.TypeFields{Points: req.Points, Color: req.Color}
	if req.Severity != nil {
		sev := domain.BugSeverity(*req.Severity)
		fields.Severity = &sev
	}
	if err := fields.ValidateFor(itemType); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid fields for item type", err.Error())
	}

	if req.SprintID != nil {
		if _, err := s.sprintRepo.FindByID(ctx, *req.SprintID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", *req.SprintID)
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify sprint", err.Error())
		}
	}

	assignee, err := s.resolveAssignee(ctx, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	count, err := s.itemRepo.CountByStatus(ctx, domain.StatusTodo)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to place item", err.Error())
	}

	item := &domain.Item{
		ID:            uuid.New().String(),
		SprintID:      req.SprintID,
		Title:         req.Title,
		Type:          itemType,
		Priority:      priority,
		Status:        domain.StatusTodo,
		Description:   req.Description,
		Assignee:      assignee,
		TypeFields:    fields,
		OrderIndex:    int(count),
		EstimateHours: req.EstimateHours,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create item", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create item", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementItemCreated()
	}
	s.invalidateReports(ctx, item.SprintID)
	s.reloadBoard(ctx)

	return dto.FromItem(item), nil
}

// GetItem returns one item by ID
func (s *itemServiceImpl) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Item not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read item", err.Error())
	}
	return dto.FromItem(item), nil
}

// ListItems returns items matching the given filters in board order
func (s *itemServiceImpl) ListItems(ctx context.Context, filters *repository.ItemFilters) ([]*dto.ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list items", err.Error())
	}
	return dto.FromItems(items), nil
}

// UpdateItem applies a partial update to an item
func (s *itemServiceImpl) UpdateItem(ctx context.Context, id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Item not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read item", err.Error())
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		if !p.Valid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Unknown priority", *req.Priority)
		}
		item.Priority = p
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.SprintID != nil {
		if *req.SprintID == "" {
			item.SprintID = nil
		} else {
			if _, err := s.sprintRepo.FindByID(ctx, *req.SprintID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", *req.SprintID)
				}
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify sprint", err.Error())
			}
			item.SprintID = req.SprintID
		}
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID == "" {
			item.Assignee = nil
		} else {
			assignee, err := s.resolveAssignee(ctx, req.AssigneeID)
			if err != nil {
				return nil, err
			}
			item.Assignee = assignee
		}
	}
	if req.Points != nil {
		item.TypeFields.Points = req.Points
	}
	if req.Severity != nil {
		sev := domain.BugSeverity(*req.Severity)
		item.TypeFields.Severity = &sev
	}
	if req.Color != nil {
		item.TypeFields.Color = req.Color
	}
	if err := item.TypeFields.ValidateFor(item.Type); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid fields for item type", err.Error())
	}
	if req.EstimateHours != nil {
		item.EstimateHours = req.EstimateHours
	}
	if req.ActualHours != nil {
		item.ActualHours = req.ActualHours
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update item", zap.String("item_id", id), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update item", err.Error())
	}

	s.invalidateReports(ctx, item.SprintID)
	s.reloadBoard(ctx)

	return dto.FromItem(item), nil
}

// CompleteItem records hours worked on an item and moves it to the
// bottom of the done column through the sync adapter.
func (s *itemServiceImpl) CompleteItem(ctx context.Context, id string, req *dto.CompleteItemRequest) (*dto.MoveItemResponse, error) {
	if s.boardSvc == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Board service unavailable", "")
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Item not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read item", err.Error())
	}

	if req != nil && req.ActualHours != nil {
		item.ActualHours = req.ActualHours
		if err := s.itemRepo.Update(ctx, item); err != nil {
			s.logger.Error("Failed to record actual hours", zap.String("item_id", id), zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update item", err.Error())
		}
	}

	count, err := s.itemRepo.CountByStatus(ctx, domain.StatusDone)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to place item", err.Error())
	}

	resp, err := s.boardSvc.MoveItem(ctx, id, &dto.MoveItemRequest{
		TargetColumn: string(domain.StatusDone),
		TargetIndex:  int(count),
	})
	if err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, item.SprintID)
	return resp, nil
}

// DeleteItem removes an item and its comment thread
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Item not found", id)
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to read item", err.Error())
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete item", zap.String("item_id", id), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete item", err.Error())
	}

	s.invalidateReports(ctx, item.SprintID)
	s.reloadBoard(ctx)
	return nil
}

// resolveAssignee snapshots a user directory record onto the item. A
// nil ID means unassigned.
func (s *itemServiceImpl) resolveAssignee(ctx context.Context, assigneeID *string) (*domain.Assignee, error) {
	if assigneeID == nil || *assigneeID == "" {
		return nil, nil
	}
	info, err := s.userClient.GetUser(ctx, *assigneeID)
	if err != nil {
		s.logger.Warn("Failed to resolve assignee", zap.String("user_id", *assigneeID), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeValidation, "Assignee could not be resolved", *assigneeID)
	}
	return &domain.Assignee{
		Name:     info.Name,
		Initials: info.Initials,
		Avatar:   info.Avatar,
	}, nil
}

func (s *itemServiceImpl) reloadBoard(ctx context.Context) {
	if s.boardSvc == nil {
		return
	}
	if err := s.boardSvc.Reload(ctx); err != nil {
		s.logger.Warn("Board reload after item mutation failed", zap.Error(err))
	}
}

func (s *itemServiceImpl) invalidateReports(ctx context.Context, sprintID *string) {
	keys := []string{"sprint:all", "assignees:all"}
	if sprintID != nil {
		keys = append(keys, "sprint:"+*sprintID, "assignees:"+*sprintID)
	}
	s.reportCache.Invalidate(ctx, keys...)
}
