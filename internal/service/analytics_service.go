// internal/service/analytics_service.go
package service

import (
	"context"
	"log/slog"

	"vocab_learn_client/internal/api"
	"vocab_learn_client/internal/model"
)

// AnalyticsService は学習統計の読み取り専用APIを包みます。
// 表示ごとに取得し直す値でストアには載せないため、結果をそのまま返す。
type AnalyticsService interface {
	FetchSummary(ctx context.Context) (*model.ProgressSummary, error)
	FetchRecommendations(ctx context.Context) ([]model.Recommendation, error)
}

type analyticsService struct {
	api    api.AnalyticsAPI
	logger *slog.Logger
}

func NewAnalyticsService(apiClient api.AnalyticsAPI, logger *slog.Logger) AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &analyticsService{api: apiClient, logger: logger}
}

func (s *analyticsService) FetchSummary(ctx context.Context) (*model.ProgressSummary, error) {
	summary, err := s.api.ProgressSummary(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Progress summary fetched",
		slog.Int("total_words", summary.TotalWords),
		slog.Int("mastered", summary.Breakdown.Mastered),
	)
	return summary, nil
}

func (s *analyticsService) FetchRecommendations(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.api.Recommendations(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Recommendations fetched", slog.Int("count", len(recs)))
	return recs, nil
}
