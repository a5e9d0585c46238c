package service

import (
	"context"
	"time"

	"project-tracker-api/internal/client"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
)

// MockItemRepository is a mock implementation of ItemRepository
type MockItemRepository struct {
	CreateFunc          func(ctx context.Context, item *domain.Item) error
	FindByIDFunc        func(ctx context.Context, id string) (*domain.Item, error)
	FindAllFunc         func(ctx context.Context, filters *repository.ItemFilters) ([]*domain.Item, error)
	UpdateFunc          func(ctx context.Context, item *domain.Item) error
	UpdatePlacementFunc func(ctx context.Context, id string, status domain.Status, orderIndex int) (*domain.Item, error)
	DeleteFunc          func(ctx context.Context, id string) error
	CountByStatusFunc   func(ctx context.Context, status domain.Status) (int64, error)
	FindDoneBeforeFunc  func(ctx context.Context, cutoff time.Time) ([]*domain.Item, error)
	SprintTotalsFunc    func(ctx context.Context, sprintID *string) (*repository.SprintTotals, error)
	AssigneeTotalsFunc  func(ctx context.Context, sprintID *string) ([]*repository.AssigneeTotals, error)
}

func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockItemRepository) FindAll(ctx context.Context, filters *repository.ItemFilters) ([]*domain.Item, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockItemRepository) Update(ctx context.Context, item *domain.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockItemRepository) UpdatePlacement(ctx context.Context, id string, status domain.Status, orderIndex int) (*domain.Item, error) {
	if m.UpdatePlacementFunc != nil {
		return m.UpdatePlacementFunc(ctx, id, status, orderIndex)
	}
	return nil, nil
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockItemRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *MockItemRepository) FindDoneBefore(ctx context.Context, cutoff time.Time) ([]*domain.Item, error) {
	if m.FindDoneBeforeFunc != nil {
		return m.FindDoneBeforeFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *MockItemRepository) SprintTotals(ctx context.Context, sprintID *string) (*repository.SprintTotals, error) {
	if m.SprintTotalsFunc != nil {
		return m.SprintTotalsFunc(ctx, sprintID)
	}
	return &repository.SprintTotals{}, nil
}

func (m *MockItemRepository) AssigneeTotals(ctx context.Context, sprintID *string) ([]*repository.AssigneeTotals, error) {
	if m.AssigneeTotalsFunc != nil {
		return m.AssigneeTotalsFunc(ctx, sprintID)
	}
	return nil, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.Comment) error
	FindByItemIDFunc   func(ctx context.Context, itemID string) ([]domain.Comment, error)
	DeleteByItemIDFunc func(ctx context.Context, itemID string) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByItemID(ctx context.Context, itemID string) ([]domain.Comment, error) {
	if m.FindByItemIDFunc != nil {
		return m.FindByItemIDFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteByItemID(ctx context.Context, itemID string) error {
	if m.DeleteByItemIDFunc != nil {
		return m.DeleteByItemIDFunc(ctx, itemID)
	}
	return nil
}

// MockSprintRepository is a mock implementation of SprintRepository
type MockSprintRepository struct {
	CreateFunc   func(ctx context.Context, sprint *domain.Sprint) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Sprint, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Sprint, error)
	UpdateFunc   func(ctx context.Context, sprint *domain.Sprint) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *MockSprintRepository) Create(ctx context.Context, sprint *domain.Sprint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) FindByID(ctx context.Context, id string) (*domain.Sprint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSprintRepository) FindAll(ctx context.Context) ([]*domain.Sprint, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockSprintRepository) Update(ctx context.Context, sprint *domain.Sprint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUserClient is a mock implementation of client.UserClient
type MockUserClient struct {
	GetUserFunc func(ctx context.Context, userID string) (*client.UserInfo, error)
}

func (m *MockUserClient) GetUser(ctx context.Context, userID string) (*client.UserInfo, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return &client.UserInfo{ID: userID, Name: "Test User", Initials: "TU"}, nil
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
	return &dto.MoveItemResponse{}, nil
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
