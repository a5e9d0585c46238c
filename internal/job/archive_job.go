package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
)

// ArchiveJob moves stale done items out of the live board into the
// archive table, together with their comment threads.
type ArchiveJob struct {
	itemRepo    repository.ItemRepository
	commentRepo repository.CommentRepository
	archiveRepo repository.ArchiveRepository
	maxAge      time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewArchiveJob creates a new ArchiveJob instance
func NewArchiveJob(
	itemRepo repository.ItemRepository,
	commentRepo repository.CommentRepository,
	archiveRepo repository.ArchiveRepository,
	maxAge time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ArchiveJob {
	return &ArchiveJob{
		itemRepo:    itemRepo,
		commentRepo: commentRepo,
		archiveRepo: archiveRepo,
		maxAge:      maxAge,
		metrics:     m,
		logger:      logger,
	}
}

// Run executes the archival pass. It is the cron entry point.
func (j *ArchiveJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.maxAge)

	j.logger.Info("Starting archive job for stale done items",
		zap.Time("cutoff", cutoff),
	)

	staleItems, err := j.itemRepo.FindDoneBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find stale done items", zap.Error(err))
		return
	}

	if len(staleItems) == 0 {
		j.logger.Info("No stale done items found")
		return
	}

	j.logger.Info("Found stale done items",
		zap.Int("count", len(staleItems)),
	)

	successCount := 0
	failCount := 0

	for _, item := range staleItems {
		comments, err := j.commentRepo.FindByItemID(ctx, item.ID)
		if err != nil {
			j.logger.Error("Failed to load comment thread",
				zap.String("item_id", item.ID),
				zap.Error(err),
			)
			failCount++
			continue
		}

		if err := j.archiveRepo.Archive(ctx, item, comments); err != nil {
			j.logger.Error("Failed to archive item",
				zap.String("item_id", item.ID),
				zap.Error(err),
			)
			failCount++
			continue
		}

		successCount++
		j.logger.Debug("Archived item",
			zap.String("item_id", item.ID),
			zap.Int("comments", len(comments)),
		)
	}

	if j.metrics != nil && successCount > 0 {
		j.metrics.IncrementItemsArchived(successCount)
	}

	j.logger.Info("Archive job completed",
		zap.Int("total_stale", len(staleItems)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}
