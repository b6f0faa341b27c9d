// internal/state/quiz.go
package state

import (
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
)

// QuizState はクイズ画面の状態。他画面と同じリデューサ規律に乗せ、
// コンポーネントローカルな状態は持たない。
type QuizState struct {
	Quizzes []model.Quiz
	Active  *model.Quiz
	Answers map[uuid.UUID]string // questionId → 入力中の回答
	Attempt *model.QuizAttempt
	Review  []model.QuestionReview

	Loading    bool
	Submitting bool
	Error      string
}

func InitialQuizState() QuizState {
	return QuizState{Answers: map[uuid.UUID]string{}}
}

// QuizStore はクイズ画面のストア
type QuizStore = Store[QuizState, QuizAction]

func NewQuizStore(logger *slog.Logger) *QuizStore {
	return NewStore("quiz", InitialQuizState(), ReduceQuiz, logger)
}

// QuizAction はクイズ画面ストアへのアクションの閉じた集合
type QuizAction interface{ isQuizAction() }

type (
	QuizzesFetchStart   struct{}
	QuizzesFetchSuccess struct{ Quizzes []model.Quiz }
	QuizzesFetchError   struct{ Message string }

	// QuizLoaded はクイズ開始。回答バッファと前回の採点結果を捨てる
	QuizLoaded struct{ Quiz model.Quiz }

	// SelectAnswer は1問ぶんの回答を書き換える (バッファは非破壊に差し替え)
	SelectAnswer struct {
		QuestionID uuid.UUID
		Answer     string
	}

	QuizSubmitStart   struct{}
	QuizSubmitSuccess struct {
		Attempt model.QuizAttempt
		Review  []model.QuestionReview
	}
	QuizSubmitError struct{ Message string }
	// QuizSubmitEnd は成否や中断によらず送信可否を戻す
	QuizSubmitEnd struct{}

	// QuizExit はクイズ画面を初期状態へ戻す
	QuizExit struct{}
)

func (QuizzesFetchStart) isQuizAction()   {}
func (QuizzesFetchSuccess) isQuizAction() {}
func (QuizzesFetchError) isQuizAction()   {}
func (QuizLoaded) isQuizAction()          {}
func (SelectAnswer) isQuizAction()        {}
func (QuizSubmitStart) isQuizAction()     {}
func (QuizSubmitSuccess) isQuizAction()   {}
func (QuizSubmitError) isQuizAction()     {}
func (QuizSubmitEnd) isQuizAction()       {}
func (QuizExit) isQuizAction()            {}

// ReduceQuiz はクイズ画面の純粋な状態遷移
func ReduceQuiz(s QuizState, action QuizAction) QuizState {
	switch a := action.(type) {
	case QuizzesFetchStart:
		s.Loading = true
		s.Error = ""
		return s

	case QuizzesFetchSuccess:
		s.Quizzes = a.Quizzes
		s.Loading = false
		return s

	case QuizzesFetchError:
		s.Loading = false
		s.Error = a.Message
		return s

	case QuizLoaded:
		quiz := a.Quiz
		s.Active = &quiz
		s.Answers = map[uuid.UUID]string{}
		s.Attempt = nil
		s.Review = nil
		s.Loading = false
		s.Error = ""
		return s

	case SelectAnswer:
		answers := maps.Clone(s.Answers)
		if answers == nil {
			answers = map[uuid.UUID]string{}
		}
		answers[a.QuestionID] = a.Answer
		s.Answers = answers
		return s

	case QuizSubmitStart:
		s.Submitting = true
		s.Error = ""
		return s

	case QuizSubmitSuccess:
		attempt := a.Attempt
		s.Attempt = &attempt
		s.Review = a.Review
		return s

	case QuizSubmitError:
		s.Error = a.Message
		return s

	case QuizSubmitEnd:
		s.Submitting = false
		return s

	case QuizExit:
		return InitialQuizState()
	}
	return s
}
