// internal/model/analytics.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusBreakdown は習熟ステータスごとの単語数
type StatusBreakdown struct {
	NotStarted int `json:"notStarted"`
	Learning   int `json:"learning"`
	Mastered   int `json:"mastered"`
}

// ProgressSummary は GET /analytics/progress のレスポンス
type ProgressSummary struct {
	TotalLists     int             `json:"totalLists"`
	TotalWords     int             `json:"totalWords"`
	Breakdown      StatusBreakdown `json:"breakdown"`
	AverageMastery float64         `json:"averageMastery"`
	DueForReview   int             `json:"dueForReview"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// Recommendation は学習対象としてサーバが推薦する単語
type Recommendation struct {
	WordID uuid.UUID `json:"wordId"`
	ListID uuid.UUID `json:"listId"`
	Term   string    `json:"word"`
	Reason string    `json:"reason"`
}

// RecommendationsResponse は GET /analytics/recommendations のレスポンス
type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
