package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/client"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

func newItemService(itemRepo *MockItemRepository, sprintRepo *MockSprintRepository, userClient client.UserClient) ItemService {
	if userClient == nil {
		userClient = &MockUserClient{}
	}
	return NewItemService(itemRepo, sprintRepo, userClient, nil, cache.NewReportCache(nil, 0), nil, zap.NewNop())
}

func TestCreateItemDefaults(t *testing.T) {
	var created *domain.Item
	itemRepo := &MockItemRepository{
		CountByStatusFunc: func(ctx context.Context, status domain.Status) (int64, error) {
			assert.Equal(t, domain.StatusTodo, status)
			return 2, nil
		},
		CreateFunc: func(ctx context.Context, item *domain.Item) error {
			created = item
			return nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	resp, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title: "Fix login flow",
		Type:  "task",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusTodo, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority, "missing priority defaults to medium")
	assert.Equal(t, 2, created.OrderIndex, "new item lands at the bottom of todo")
	assert.Nil(t, created.Assignee)
	assert.Equal(t, "todo", resp.Status)
}

func TestCreateItemResolvesAssignee(t *testing.T) {
	var created *domain.Item
	itemRepo := &MockItemRepository{
		CreateFunc: func(ctx context.Context, item *domain.Item) error {
			created = item
			return nil
		},
	}
	userClient := &MockUserClient{
		GetUserFunc: func(ctx context.Context, userID string) (*client.UserInfo, error) {
			assert.Equal(t, "user-7", userID)
			return &client.UserInfo{ID: userID, Name: "Grace Hopper", Initials: "GH"}, nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, userClient)

	assigneeID := "user-7"
	_, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title:      "Write release notes",
		Type:       "task",
		AssigneeID: &assigneeID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Assignee)
	assert.Equal(t, "Grace Hopper", created.Assignee.Name)
	assert.Equal(t, "GH", created.Assignee.Initials)
}

func TestCreateItemUnresolvableAssignee(t *testing.T) {
	userClient := &MockUserClient{
		GetUserFunc: func(ctx context.Context, userID string) (*client.UserInfo, error) {
			return nil, errors.New("directory down")
		},
	}
	svc := newItemService(&MockItemRepository{}, &MockSprintRepository{}, userClient)

	assigneeID := "user-7"
	_, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title:      "Task",
		Type:       "task",
		AssigneeID: &assigneeID,
	})
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeValidation, appErrCode(t, err))
}

func TestCreateItemTypeFieldMismatch(t *testing.T) {
	svc := newItemService(&MockItemRepository{}, &MockSprintRepository{}, nil)

	points := 5
	_, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title:  "Broken build",
		Type:   "bug",
		Points: &points,
	})
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeValidation, appErrCode(t, err))
}

func TestCreateItemStoryWithPoints(t *testing.T) {
	var created *domain.Item
	itemRepo := &MockItemRepository{
		CreateFunc: func(ctx context.Context, item *domain.Item) error {
			created = item
			return nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	points := 8
	_, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title:  "Checkout redesign",
		Type:   "story",
		Points: &points,
	})
	require.NoError(t, err)
	require.NotNil(t, created.TypeFields.Points)
	assert.Equal(t, 8, *created.TypeFields.Points)
}

func TestCreateItemUnknownSprint(t *testing.T) {
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Sprint, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newItemService(&MockItemRepository{}, sprintRepo, nil)

	sprintID := "missing"
	_, err := svc.CreateItem(context.Background(), &dto.CreateItemRequest{
		Title:    "Task",
		Type:     "task",
		SprintID: &sprintID,
	})
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
}

func TestGetItemNotFound(t *testing.T) {
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	_, err := svc.GetItem(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
}

func TestListItemsPassesFilters(t *testing.T) {
	status := domain.StatusDone
	itemRepo := &MockItemRepository{
		FindAllFunc: func(ctx context.Context, filters *repository.ItemFilters) ([]*domain.Item, error) {
			require.NotNil(t, filters)
			require.NotNil(t, filters.Status)
			assert.Equal(t, domain.StatusDone, *filters.Status)
			return []*domain.Item{serviceItem("d1", domain.StatusDone, 0)}, nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	items, err := svc.ListItems(context.Background(), &repository.ItemFilters{Status: &status})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
}

func TestUpdateItemPartial(t *testing.T) {
	var updated *domain.Item
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return serviceItem(id, domain.StatusTodo, 0), nil
		},
		UpdateFunc: func(ctx context.Context, item *domain.Item) error {
			updated = item
			return nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	title := "Renamed"
	hours := 3.5
	resp, err := svc.UpdateItem(context.Background(), "t1", &dto.UpdateItemRequest{
		Title:       &title,
		ActualHours: &hours,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.ActualHours)
	assert.InDelta(t, 3.5, *updated.ActualHours, 0.001)
	assert.Equal(t, domain.PriorityMedium, updated.Priority, "untouched fields stay unchanged")
	assert.Equal(t, "Renamed", resp.Title)
}

func TestUpdateItemClearsAssigneeAndSprint(t *testing.T) {
	sprintID := "s1"
	item := serviceItem("t1", domain.StatusTodo, 0)
	item.SprintID = &sprintID
	item.Assignee = &domain.Assignee{Name: "Grace Hopper", Initials: "GH"}

	var updated *domain.Item
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return item, nil
		},
		UpdateFunc: func(ctx context.Context, it *domain.Item) error {
			updated = it
			return nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	empty := ""
	_, err := svc.UpdateItem(context.Background(), "t1", &dto.UpdateItemRequest{
		SprintID:   &empty,
		AssigneeID: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SprintID)
	assert.Nil(t, updated.Assignee)
}

func TestDeleteItemNotFound(t *testing.T) {
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	err := svc.DeleteItem(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
}

func TestDeleteItemSuccess(t *testing.T) {
	var deleted string
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return serviceItem(id, domain.StatusDone, 0), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	require.NoError(t, svc.DeleteItem(context.Background(), "t1"))
	assert.Equal(t, "t1", deleted)
}

func TestCompleteItemRecordsHoursAndMoves(t *testing.T) {
	var updated *domain.Item
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return serviceItem(id, domain.StatusReview, 1), nil
		},
		UpdateFunc: func(ctx context.Context, item *domain.Item) error {
			updated = item
			return nil
		},
		CountByStatusFunc: func(ctx context.Context, status domain.Status) (int64, error) {
			assert.Equal(t, domain.StatusDone, status)
			return 3, nil
		},
	}
	var movedReq *dto.MoveItemRequest
	boardSvc := &MockBoardService{
		MoveItemFunc: func(ctx context.Context, itemID string, req *dto.MoveItemRequest) (*dto.MoveItemResponse, error) {
			movedReq = req
			return &dto.MoveItemResponse{
				Item:         &dto.ItemResponse{ID: itemID, Status: "done"},
				StatusChange: &dto.StatusChangeResponse{ItemID: itemID, From: "review", To: "done"},
			}, nil
		},
	}
	svc := NewItemService(itemRepo, &MockSprintRepository{}, &MockUserClient{}, boardSvc, cache.NewReportCache(nil, 0), nil, zap.NewNop())

	hours := 6.5
	resp, err := svc.CompleteItem(context.Background(), "t1", &dto.CompleteItemRequest{ActualHours: &hours})
	require.NoError(t, err)

	require.NotNil(t, updated)
	require.NotNil(t, updated.ActualHours)
	assert.Equal(t, 6.5, *updated.ActualHours)

	require.NotNil(t, movedReq)
	assert.Equal(t, "done", movedReq.TargetColumn)
	assert.Equal(t, 3, movedReq.TargetIndex, "item lands at the bottom of done")

	require.NotNil(t, resp.StatusChange)
	assert.Equal(t, "done", resp.StatusChange.To)
}

func TestCompleteItemWithoutHours(t *testing.T) {
	updateCalled := false
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return serviceItem(id, domain.StatusInProgress, 0), nil
		},
		UpdateFunc: func(ctx context.Context, item *domain.Item) error {
			updateCalled = true
			return nil
		},
	}
	boardSvc := &MockBoardService{}
	svc := NewItemService(itemRepo, &MockSprintRepository{}, &MockUserClient{}, boardSvc, cache.NewReportCache(nil, 0), nil, zap.NewNop())

	_, err := svc.CompleteItem(context.Background(), "t1", &dto.CompleteItemRequest{})
	require.NoError(t, err)
	assert.False(t, updateCalled, "no hours given, nothing to persist before the move")
}

func TestCompleteItemNotFound(t *testing.T) {
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewItemService(itemRepo, &MockSprintRepository{}, &MockUserClient{}, &MockBoardService{}, cache.NewReportCache(nil, 0), nil, zap.NewNop())

	_, err := svc.CompleteItem(context.Background(), "ghost", nil)
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
}

func TestCompleteItemWithoutBoardService(t *testing.T) {
	itemRepo := &MockItemRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Item, error) {
			return serviceItem(id, domain.StatusReview, 0), nil
		},
	}
	svc := newItemService(itemRepo, &MockSprintRepository{}, nil)

	_, err := svc.CompleteItem(context.Background(), "t1", nil)
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeInternal, appErrCode(t, err))
}
