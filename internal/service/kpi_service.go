package service

import (
	"context"

	"go.uber.org/zap"

	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

// KPIService computes progress reports over the item set
type KPIService interface {
	SprintReport(ctx context.Context, sprintID *string) (*dto.SprintReportResponse, error)
	AssigneeReport(ctx context.Context, sprintID *string) (*dto.AssigneeReportResponse, error)
}

// kpiServiceImpl is the implementation of KPIService
type kpiServiceImpl struct {
	itemRepo    repository.ItemRepository
	reportCache *cache.ReportCache
	logger      *zap.Logger
}

// NewKPIService creates a new instance of KPIService
func NewKPIService(itemRepo repository.ItemRepository, reportCache *cache.ReportCache, logger *zap.Logger) KPIService {
	return &kpiServiceImpl{
		itemRepo:    itemRepo,
		reportCache: reportCache,
		logger:      logger,
	}
}

// SprintReport aggregates completion and hour totals for one sprint
// scope. A nil sprintID covers the whole backlog.
func (s *kpiServiceImpl) SprintReport(ctx context.Context, sprintID *string) (*dto.SprintReportResponse, error) {
	key := "sprint:" + scopeKey(sprintID)

	var cached dto.SprintReportResponse
	if s.reportCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	totals, err := s.itemRepo.SprintTotals(ctx, sprintID)
	if err != nil {
		s.logger.Error("Failed to compute sprint report", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute sprint report", err.Error())
	}

	report := &dto.SprintReportResponse{
		SprintID:      sprintID,
		Total:         totals.Total,
		Completed:     totals.Completed,
		EstimateHours: totals.EstimateHours,
		ActualHours:   totals.ActualHours,
	}
	if totals.Total > 0 {
		report.CompletionRate = float64(totals.Completed) / float64(totals.Total)
	}

	s.reportCache.Set(ctx, key, report)
	return report, nil
}

// AssigneeReport aggregates completed work per assignee, most
// productive first. Unassigned items are excluded.
func (s *kpiServiceImpl) AssigneeReport(ctx context.Context, sprintID *string) (*dto.AssigneeReportResponse, error) {
	key := "assignees:" + scopeKey(sprintID)

	var cached dto.AssigneeReportResponse
	if s.reportCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	totals, err := s.itemRepo.AssigneeTotals(ctx, sprintID)
	if err != nil {
		s.logger.Error("Failed to compute assignee report", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute assignee report", err.Error())
	}

	report := &dto.AssigneeReportResponse{
		SprintID:  sprintID,
		Assignees: make([]*dto.AssigneeReportEntry, len(totals)),
	}
	for i, t := range totals {
		report.Assignees[i] = &dto.AssigneeReportEntry{
			Name:        t.Name,
			Initials:    t.Initials,
			Completed:   t.Completed,
			ActualHours: t.ActualHours,
		}
	}

	s.reportCache.Set(ctx, key, report)
	return report, nil
}

func scopeKey(sprintID *string) string {
	if sprintID == nil {
		return "all"
	}
	return *sprintID
}
