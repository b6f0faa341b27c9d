// internal/apitest/quiz.go
package apitest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

var errQuizNotFound = model.NewAppError("QUIZ_NOT_FOUND", "Quiz not found", "", model.ErrNotFound)

func (s *Server) listQuizzes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Quiz, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		out = append(out, *q)
	}
	webutil.RespondWithJSON(w, http.StatusOK, struct {
		Quizzes []model.Quiz `json:"quizzes"`
	}{Quizzes: out})
}

// generateQuiz はリストの単語から四択問題を組み立てる。
// 問題数は questionCount と単語数の小さい方。選択肢の順序は固定。
func (s *Server) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateQuizRequest
	if err := webutil.DecodeValidJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(req.ListID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	if len(list.Words) == 0 {
		webutil.HandleError(w, model.NewAppError(
			"EMPTY_LIST", "Cannot generate a quiz from an empty list", "listId", model.ErrInvalidInput))
		return
	}

	n := req.QuestionCount
	if n > len(list.Words) {
		n = len(list.Words)
	}

	quizID := uuid.New()
	questions := make([]model.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		word := list.Words[i]
		wordID := word.WordID
		options := make(model.OptionList, 0, 4)
		for j := range list.Words {
			if j == i || len(options) == 3 {
				continue
			}
			options = append(options, list.Words[j].Translation)
		}
		options = append(options, word.Translation)
		questions = append(questions, model.QuizQuestion{
			QuestionID:    uuid.New(),
			QuizID:        quizID,
			Type:          model.QuestionMultipleChoice,
			Prompt:        word.Term,
			Options:       options,
			CorrectAnswer: word.Translation,
			WordID:        &wordID,
		})
	}

	quiz := &model.Quiz{
		QuizID:    quizID,
		ListID:    list.ListID,
		Title:     fmt.Sprintf("%s Quiz", list.Name),
		Questions: questions,
		CreatedAt: s.now(),
	}
	s.quizzes[quizID] = quiz
	s.logger.Debug("Quiz generated", "quizId", quizID, "questions", len(questions))
	webutil.RespondWithJSON(w, http.StatusCreated, quiz)
}

func (s *Server) getQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathUUID(r, "quizId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[quizID]
	if !ok {
		webutil.HandleError(w, errQuizNotFound)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, quiz)
}

// submitQuiz は採点し、設問に紐づく単語の復習履歴も更新する。
// 未回答の設問は不正解として集計され、attempt の answers には現れない。
func (s *Server) submitQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathUUID(r, "quizId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	var req model.SubmitQuizRequest
	if err := webutil.DecodeValidJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[quizID]
	if !ok {
		webutil.HandleError(w, errQuizNotFound)
		return
	}

	submitted := make(map[uuid.UUID]string, len(req.Answers))
	for _, a := range req.Answers {
		submitted[a.QuestionID] = a.Answer
	}

	now := s.now()
	attempt := model.QuizAttempt{
		AttemptID:      uuid.New(),
		QuizID:         quizID,
		UserID:         s.userID,
		TotalQuestions: len(quiz.Questions),
		Answers:        make([]model.AttemptAnswer, 0, len(req.Answers)),
		CompletedAt:    now,
	}
	for _, q := range quiz.Questions {
		answer, answered := submitted[q.QuestionID]
		correct := answered && isCorrectAnswer(q, answer)
		if answered {
			attempt.Answers = append(attempt.Answers, model.AttemptAnswer{
				QuestionID: q.QuestionID,
				Answer:     answer,
				IsCorrect:  correct,
			})
		}
		if correct {
			attempt.CorrectAnswers++
		}
		if q.WordID != nil {
			s.recordReview(*q.WordID, correct, now)
		}
	}
	if attempt.TotalQuestions > 0 {
		attempt.Score = float64(attempt.CorrectAnswers) / float64(attempt.TotalQuestions)
	}

	s.attempts[quizID] = append(s.attempts[quizID], attempt)
	s.logger.Debug("Quiz submitted", "quizId", quizID, "score", attempt.Score)
	webutil.RespondWithJSON(w, http.StatusOK, attempt)
}

// recordReview は復習回数と連続正解を更新する。習熟度そのものは
// 明示的な進捗更新でしか動かさない。
func (s *Server) recordReview(wordID uuid.UUID, correct bool, now time.Time) {
	_, word := s.findWord(wordID, nil)
	if word == nil {
		return
	}
	if word.Progress == nil {
		word.Progress = s.freshProgress(word.WordID)
	}
	p := word.Progress
	p.ReviewCount++
	if correct {
		p.Streak++
	} else {
		p.Streak = 0
	}
	p.LastReview = &now
	if p.Status == model.StatusNotStarted || p.Status == "" {
		p.Status = model.StatusLearning
	}
}

func isCorrectAnswer(q model.QuizQuestion, answer string) bool {
	if q.Type == model.QuestionTextInput {
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
	}
	return answer == q.CorrectAnswer
}
