package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	GetBoardFunc    func(ctx context.Context) (*dto.BoardResponse, error)
	MoveItemFunc    func(ctx context.Context, itemID string, req *dto.MoveItemRequest) (*dto.MoveItemResponse, error)
	GetCommentsFunc func(ctx context.Context, itemID string) ([]*dto.CommentResponse, error)
	AddCommentFunc  func(ctx context.Context, itemID string, author domain.Assignee, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ReloadFunc      func(ctx context.Context) error
}

func (m *MockBoardService) GetBoard(ctx context.Context) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx)
	}
	return &dto.BoardResponse{}, nil
}

func (m *MockBoardService) MoveItem(ctx context.Context, itemID string, req *dto.MoveItemRequest) (*dto.MoveItemResponse, error) {
	if m.MoveItemFunc != nil {
		return m.MoveItemFunc(ctx, itemID, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetComments(ctx context.Context, itemID string) ([]*dto.CommentResponse, error) {
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *MockBoardService) AddComment(ctx context.Context, itemID string, author domain.Assignee, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, itemID, author, req)
	}
	return nil, nil
}

func (m *MockBoardService) Reload(ctx context.Context) error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return nil
}

// MockItemService is a mock implementation of ItemService
type MockItemService struct {
	CreateItemFunc   func(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetItemFunc      func(ctx context.Context, id string) (*dto.ItemResponse, error)
	ListItemsFunc    func(ctx context.Context, filters *repository.ItemFilters) ([]*dto.ItemResponse, error)
	UpdateItemFunc   func(ctx context.Context, id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error)
	CompleteItemFunc func(ctx context.Context, id string, req *dto.CompleteItemRequest) (*dto.MoveItemResponse, error)
	DeleteItemFunc   func(ctx context.Context, id string) error
}

func (m *MockItemService) CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockItemService) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockItemService) ListItems(ctx context.Context, filters *repository.ItemFilters) ([]*dto.ItemResponse, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockItemService) UpdateItem(ctx context.Context, id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockItemService) CompleteItem(ctx context.Context, id string, req *dto.CompleteItemRequest) (*dto.MoveItemResponse, error) {
	if m.CompleteItemFunc != nil {
		return m.CompleteItemFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockItemService) DeleteItem(ctx context.Context, id string) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, id)
	}
	return nil
}

// MockSprintService is a mock implementation of SprintService
type MockSprintService struct {
	CreateSprintFunc func(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error)
	GetSprintFunc    func(ctx context.Context, id string) (*dto.SprintResponse, error)
	ListSprintsFunc  func(ctx context.Context) ([]*dto.SprintResponse, error)
	UpdateSprintFunc func(ctx context.Context, id string, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error)
	DeleteSprintFunc func(ctx context.Context, id string) error
}

func (m *MockSprintService) CreateSprint(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	if m.CreateSprintFunc != nil {
		return m.CreateSprintFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockSprintService) GetSprint(ctx context.Context, id string) (*dto.SprintResponse, error) {
	if m.GetSprintFunc != nil {
		return m.GetSprintFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSprintService) ListSprints(ctx context.Context) ([]*dto.SprintResponse, error) {
	if m.ListSprintsFunc != nil {
		return m.ListSprintsFunc(ctx)
	}
	return nil, nil
}

func (m *MockSprintService) UpdateSprint(ctx context.Context, id string, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error) {
	if m.UpdateSprintFunc != nil {
		return m.UpdateSprintFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockSprintService) DeleteSprint(ctx context.Context, id string) error {
	if m.DeleteSprintFunc != nil {
		return m.DeleteSprintFunc(ctx, id)
	}
	return nil
}

// MockKPIService is a mock implementation of KPIService
type MockKPIService struct {
	SprintReportFunc   func(ctx context.Context, sprintID *string) (*dto.SprintReportResponse, error)
	AssigneeReportFunc func(ctx context.Context, sprintID *string) (*dto.AssigneeReportResponse, error)
}

func (m *MockKPIService) SprintReport(ctx context.Context, sprintID *string) (*dto.SprintReportResponse, error) {
	if m.SprintReportFunc != nil {
		return m.SprintReportFunc(ctx, sprintID)
	}
	return nil, nil
}

func (m *MockKPIService) AssigneeReport(ctx context.Context, sprintID *string) (*dto.AssigneeReportResponse, error) {
	if m.AssigneeReportFunc != nil {
		return m.AssigneeReportFunc(ctx, sprintID)
	}
	return nil, nil
}
