//go:generate mockery --name AnalyticsAPI --output ./mocks --outpkg mocks --case=underscore
package api

import (
	"context"

	"vocab_learn_client/internal/model"
)

// AnalyticsAPI は学習状況エンドポイントへの操作
type AnalyticsAPI interface {
	ProgressSummary(ctx context.Context) (*model.ProgressSummary, error)
	Recommendations(ctx context.Context) ([]model.Recommendation, error)
}

var _ AnalyticsAPI = (*Client)(nil)

func (c *Client) ProgressSummary(ctx context.Context) (*model.ProgressSummary, error) {
	var summary model.ProgressSummary
	if err := c.get(ctx, "/analytics/progress", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	var resp model.RecommendationsResponse
	if err := c.get(ctx, "/analytics/recommendations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}
