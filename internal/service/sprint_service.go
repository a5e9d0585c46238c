package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

// SprintService defines the interface for sprint business logic
type SprintService interface {
	CreateSprint(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error)
	GetSprint(ctx context.Context, id string) (*dto.SprintResponse, error)
	ListSprints(ctx context.Context) ([]*dto.SprintResponse, error)
	UpdateSprint(ctx context.Context, id string, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error)
	DeleteSprint(ctx context.Context, id string) error
}

// sprintServiceImpl is the implementation of SprintService
type sprintServiceImpl struct {
	sprintRepo  repository.SprintRepository
	reportCache *cache.ReportCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewSprintService creates a new instance of SprintService
func NewSprintService(
	sprintRepo repository.SprintRepository,
	reportCache *cache.ReportCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) SprintService {
	return &sprintServiceImpl{
		sprintRepo:  sprintRepo,
		reportCache: reportCache,
		metrics:     m,
		logger:      logger,
	}
}

// CreateSprint creates a new sprint
func (s *sprintServiceImpl) CreateSprint(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	if err := validateSprintDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	sprint := &domain.Sprint{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		s.logger.Error("Failed to create sprint", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create sprint", err.Error())
	}
	return dto.FromSprint(sprint), nil
}

// GetSprint returns one sprint by ID
func (s *sprintServiceImpl) GetSprint(ctx context.Context, id string) (*dto.SprintResponse, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read sprint", err.Error())
	}
	return dto.FromSprint(sprint), nil
}

// ListSprints returns all sprints
func (s *sprintServiceImpl) ListSprints(ctx context.Context) ([]*dto.SprintResponse, error) {
	sprints, err := s.sprintRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list sprints", err.Error())
	}
	out := make([]*dto.SprintResponse, len(sprints))
	for i, sp := range sprints {
		out[i] = dto.FromSprint(sp)
	}
	return out, nil
}

// UpdateSprint applies a partial update to a sprint
func (s *sprintServiceImpl) UpdateSprint(ctx context.Context, id string, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read sprint", err.Error())
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Goal != nil {
		sprint.Goal = *req.Goal
	}
	if req.StartDate != nil {
		sprint.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		sprint.EndDate = req.EndDate
	}
	if err := validateSprintDates(sprint.StartDate, sprint.EndDate); err != nil {
		return nil, err
	}

	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		s.logger.Error("Failed to update sprint", zap.String("sprint_id", id), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update sprint", err.Error())
	}
	return dto.FromSprint(sprint), nil
}

// DeleteSprint removes a sprint. Items referencing it are kept and
// detached.
func (s *sprintServiceImpl) DeleteSprint(ctx context.Context, id string) error {
	if err := s.sprintRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Sprint not found", id)
		}
		s.logger.Error("Failed to delete sprint", zap.String("sprint_id", id), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete sprint", err.Error())
	}

	s.reportCache.Invalidate(ctx, "sprint:"+id, "assignees:"+id, "sprint:all", "assignees:all")
	return nil
}

func validateSprintDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return response.NewAppError(response.ErrCodeValidation, "Sprint end date is before its start date", "")
	}
	return nil
}
