package workers

import (
	"context"
	"time"

	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/repositories"
)

const dueBatchSize = 50

// InsightWorker reschedules industry insights whose refresh window has
// passed. The actual market data comes from an out-of-band aggregation
// job calling the insights API; the worker only keeps NextUpdate moving
// so stale rows are picked up again.
type InsightWorker struct {
	insightRepo repositories.InsightRepository
}

func NewInsightWorker(insightRepo repositories.InsightRepository) *InsightWorker {
	return &InsightWorker{insightRepo: insightRepo}
}

func (w *InsightWorker) Start(ctx context.Context) {
	go w.refreshDueInsights(ctx)
}

func (w *InsightWorker) refreshDueInsights(ctx context.Context) {
	cfg := config.GetConfig()
	ticker := time.NewTicker(time.Duration(cfg.Insights.RefreshInterval) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Insight worker stopped")
			return
		case <-ticker.C:
			w.runOnce(time.Now())
		}
	}
}

func (w *InsightWorker) runOnce(now time.Time) {
	cfg := config.GetConfig()

	due, err := w.insightRepo.FindDue(now, dueBatchSize)
	if err != nil {
		logger.WithError(err).Error("Failed to load due insights")
		return
	}
	if len(due) == 0 {
		return
	}

	next := now.AddDate(0, 0, cfg.Insights.UpdatePeriod)
	for _, insight := range due {
		if err := w.insightRepo.Reschedule(insight.Industry, now, next); err != nil {
			logger.WithError(err).Error("Failed to reschedule insight", "industry", insight.Industry)
			continue
		}
		logger.Debug("Insight rescheduled", "industry", insight.Industry, "next_update", next)
	}
	logger.Info("Insight refresh pass completed", "count", len(due))
}
