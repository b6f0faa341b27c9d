// internal/scheduler/scheduler.go
// Package scheduler は送信キューの定期フラッシュと学習サマリの定期更新を回します。
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"vocab_learn_client/internal/outbox"
	"vocab_learn_client/internal/service"
)

// ジョブ1回あたりの上限時間
const jobTimeout = time.Minute

// Scheduler はバックグラウンドジョブの起動と停止を束ねる
type Scheduler struct {
	scheduler *gocron.Scheduler
	flusher   *outbox.Flusher
	analytics service.AnalyticsService
	logger    *slog.Logger
}

// New はスケジューラを生成します。analytics は nil でもよく、
// その場合サマリ更新ジョブは登録されない。
func New(flusher *outbox.Flusher, analytics service.AnalyticsService, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		flusher:   flusher,
		analytics: analytics,
		logger:    logger,
	}
}

// Start はジョブを登録して非同期に回し始めます
func (s *Scheduler) Start(flushInterval, summaryInterval time.Duration) error {
	if _, err := s.scheduler.Every(flushInterval).Do(s.flushOutbox); err != nil {
		return fmt.Errorf("scheduler: register flush job: %w", err)
	}
	if s.analytics != nil {
		if _, err := s.scheduler.Every(summaryInterval).Do(s.refreshSummary); err != nil {
			return fmt.Errorf("scheduler: register summary job: %w", err)
		}
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started",
		slog.Duration("flush_interval", flushInterval),
		slog.Duration("summary_interval", summaryInterval),
	)
	return nil
}

// Stop は実行中のジョブを待ってから止めます
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) flushOutbox() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.flusher.Flush(ctx)
	if err != nil {
		s.logger.Error("Scheduled outbox flush failed", slog.Any("error", err))
		return
	}
	if res.Delivered > 0 || res.Failed > 0 {
		s.logger.Info("Outbox flushed",
			slog.Int("delivered", res.Delivered),
			slog.Int("failed", res.Failed),
		)
	}
}

func (s *Scheduler) refreshSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	summary, err := s.analytics.FetchSummary(ctx)
	if err != nil {
		s.logger.Warn("Progress summary refresh failed", slog.Any("error", err))
		return
	}
	s.logger.Info("Progress summary",
		slog.Int("total_words", summary.TotalWords),
		slog.Int("mastered", summary.Breakdown.Mastered),
		slog.Int("due_for_review", summary.DueForReview),
	)
}
