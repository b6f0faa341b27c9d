// internal/apitest/analytics.go
package apitest

import (
	"net/http"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

const maxRecommendations = 5

func (s *Server) progressSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	summary := model.ProgressSummary{
		TotalLists:  len(s.lists),
		GeneratedAt: now,
	}
	var masterySum float64
	for _, l := range s.lists {
		summary.TotalWords += len(l.Words)
		for i := range l.Words {
			p := l.Words[i].Progress
			if p == nil {
				summary.Breakdown.NotStarted++
				continue
			}
			switch p.Status {
			case model.StatusMastered:
				summary.Breakdown.Mastered++
			case model.StatusLearning:
				summary.Breakdown.Learning++
			default:
				summary.Breakdown.NotStarted++
			}
			masterySum += p.Mastery
			if p.NextReview != nil && !p.NextReview.After(now) {
				summary.DueForReview++
			}
		}
	}
	if summary.TotalWords > 0 {
		summary.AverageMastery = masterySum / float64(summary.TotalWords)
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

// recommendations は未習得の単語を先頭から最大5件返す。
func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]model.Recommendation, 0, maxRecommendations)
	for _, l := range s.lists {
		for i := range l.Words {
			if len(recs) == maxRecommendations {
				break
			}
			word := l.Words[i]
			if word.Progress != nil && word.Progress.Status == model.StatusMastered {
				continue
			}
			reason := "Not started yet"
			if word.Progress != nil && word.Progress.Status == model.StatusLearning {
				reason = "Due for review"
			}
			recs = append(recs, model.Recommendation{
				WordID: word.WordID,
				ListID: l.ListID,
				Term:   word.Term,
				Reason: reason,
			})
		}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.RecommendationsResponse{Recommendations: recs})
}
