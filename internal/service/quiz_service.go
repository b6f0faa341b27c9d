// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vocab_learn_client/internal/api"
	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/state"
)

// QuizService はクイズ画面のネットワーク呼び出しとストア遷移を束ねます
type QuizService interface {
	// FetchQuizzes はクイズ一覧を取得してストアへ反映する
	FetchQuizzes(ctx context.Context) error
	// StartQuiz はクイズ1件を読み込み、回答バッファを初期化する
	StartQuiz(ctx context.Context, quizID uuid.UUID) error
	// GenerateQuiz はリストからクイズを生成し、そのまま開始する
	GenerateQuiz(ctx context.Context, listID uuid.UUID, questionCount int) error
	// SubmitQuiz は回答一式を1リクエストで送信し、採点結果を反映する。
	// 単語に紐づく設問の復習簿記は一覧画面の状態にも流し込む。
	SubmitQuiz(ctx context.Context) error
}

type quizService struct {
	api        api.QuizAPI
	store      *state.QuizStore
	vocabStore *state.VocabStore
	alerter    Alerter
	logger     *slog.Logger
}

// NewQuizService はクイズサービスを生成します。vocabStore は採点結果の
// 反映先で、nil なら反映をスキップする。
func NewQuizService(apiClient api.QuizAPI, store *state.QuizStore, vocabStore *state.VocabStore, alerter Alerter, logger *slog.Logger) QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &quizService{
		api:        apiClient,
		store:      store,
		vocabStore: vocabStore,
		alerter:    alerter,
		logger:     logger,
	}
}

func (s *quizService) FetchQuizzes(ctx context.Context) error {
	s.store.Dispatch(state.QuizzesFetchStart{})

	quizzes, err := s.api.ListQuizzes(ctx)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.store.Dispatch(state.QuizzesFetchError{Message: model.UserMessage(err)})
		return err
	}

	s.store.Dispatch(state.QuizzesFetchSuccess{Quizzes: quizzes})
	return nil
}

func (s *quizService) StartQuiz(ctx context.Context, quizID uuid.UUID) error {
	s.store.Dispatch(state.QuizzesFetchStart{})

	quiz, err := s.api.GetQuiz(ctx, quizID)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.store.Dispatch(state.QuizzesFetchError{Message: model.UserMessage(err)})
		return err
	}

	s.store.Dispatch(state.QuizLoaded{Quiz: *quiz})
	return nil
}

func (s *quizService) GenerateQuiz(ctx context.Context, listID uuid.UUID, questionCount int) error {
	req := model.GenerateQuizRequest{ListID: listID, QuestionCount: questionCount}
	if err := validateForm(ctx, s.alerter, req); err != nil {
		return err
	}

	s.store.Dispatch(state.QuizzesFetchStart{})

	quiz, err := s.api.GenerateQuiz(ctx, req)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.store.Dispatch(state.QuizzesFetchError{Message: model.UserMessage(err)})
		return err
	}

	s.logger.Info("Quiz generated",
		slog.String("quiz_id", quiz.QuizID.String()),
		slog.Int("questions", len(quiz.Questions)),
	)
	s.store.Dispatch(state.QuizLoaded{Quiz: *quiz})
	return nil
}

func (s *quizService) SubmitQuiz(ctx context.Context) error {
	st := s.store.State()
	if st.Active == nil {
		return model.NewAppError("NO_ACTIVE_QUIZ", "No quiz is in progress", "", model.ErrInvalidInput)
	}
	quiz := *st.Active

	// 回答は設問の並び順で送る
	answers := make([]model.SubmittedAnswer, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		if a, ok := st.Answers[q.QuestionID]; ok {
			answers = append(answers, model.SubmittedAnswer{QuestionID: q.QuestionID, Answer: a})
		}
	}
	req := model.SubmitQuizRequest{Answers: answers}
	if err := validateForm(ctx, s.alerter, req); err != nil {
		return err
	}

	s.store.Dispatch(state.QuizSubmitStart{})
	defer s.store.Dispatch(state.QuizSubmitEnd{})

	attempt, err := s.api.SubmitQuiz(ctx, quiz.QuizID, req)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.store.Dispatch(state.QuizSubmitError{Message: model.UserMessage(err)})
		s.alerter.Alert(ctx, model.UserMessage(err))
		return err
	}

	review := model.BuildReview(quiz, *attempt)
	s.store.Dispatch(state.QuizSubmitSuccess{Attempt: *attempt, Review: review})

	if outcomes := wordOutcomes(quiz, *attempt); len(outcomes) > 0 && s.vocabStore != nil {
		s.vocabStore.Dispatch(state.ApplyQuizOutcome{Outcomes: outcomes, Now: time.Now()})
	}

	s.logger.Info("Quiz submitted",
		slog.String("quiz_id", quiz.QuizID.String()),
		slog.Int("correct", attempt.CorrectAnswers),
		slog.Int("total", attempt.TotalQuestions),
	)
	return nil
}

// wordOutcomes は採点済み回答を単語IDに対応付けます。単語に紐づかない設問は飛ばす。
func wordOutcomes(quiz model.Quiz, attempt model.QuizAttempt) []state.WordOutcome {
	wordByQuestion := make(map[uuid.UUID]*uuid.UUID, len(quiz.Questions))
	for _, q := range quiz.Questions {
		wordByQuestion[q.QuestionID] = q.WordID
	}

	outcomes := make([]state.WordOutcome, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		wordID, ok := wordByQuestion[a.QuestionID]
		if !ok || wordID == nil {
			continue
		}
		outcomes = append(outcomes, state.WordOutcome{WordID: *wordID, IsCorrect: a.IsCorrect})
	}
	return outcomes
}
