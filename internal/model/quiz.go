// internal/model/quiz.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionType は設問形式を表す列挙型
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTextInput      QuestionType = "text_input"
)

// OptionList は選択肢の配列。サーバは JSON 配列のほか、
// 旧形式として配列を JSON 文字列に二重エンコードした値を返すことがある。
type OptionList []string

func (o *OptionList) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*o = direct
		return nil
	}
	var serialized string
	if err := json.Unmarshal(data, &serialized); err != nil {
		return fmt.Errorf("options: unexpected JSON shape: %w", err)
	}
	if serialized == "" {
		*o = nil
		return nil
	}
	var nested []string
	if err := json.Unmarshal([]byte(serialized), &nested); err != nil {
		return fmt.Errorf("options: invalid serialized array: %w", err)
	}
	*o = nested
	return nil
}

// QuizQuestion はクイズの1問
type QuizQuestion struct {
	QuestionID    uuid.UUID    `json:"id"`
	QuizID        uuid.UUID    `json:"quizId"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       OptionList   `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	WordID        *uuid.UUID   `json:"wordId,omitempty"`
}

// Quiz はリストから生成されたクイズ
type Quiz struct {
	QuizID    uuid.UUID      `json:"id"`
	ListID    uuid.UUID      `json:"listId"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// AttemptAnswer は採点済みの回答1件
type AttemptAnswer struct {
	QuestionID uuid.UUID `json:"questionId"`
	Answer     string    `json:"answer"`
	IsCorrect  bool      `json:"isCorrect"`
}

// QuizAttempt はサーバ採点の結果
type QuizAttempt struct {
	AttemptID      uuid.UUID       `json:"id"`
	QuizID         uuid.UUID       `json:"quizId"`
	UserID         uuid.UUID       `json:"userId"`
	Score          float64         `json:"score"`
	CorrectAnswers int             `json:"correctAnswers"`
	TotalQuestions int             `json:"totalQuestions"`
	Answers        []AttemptAnswer `json:"answers"`
	CompletedAt    time.Time       `json:"completedAt"`
}

// SubmittedAnswer は提出時の未採点回答
type SubmittedAnswer struct {
	QuestionID uuid.UUID `json:"questionId"`
	Answer     string    `json:"answer"`
}

// SubmitQuizRequest は POST /quizzes/{id}/submit のボディ
type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}

// GenerateQuizRequest は POST /quizzes/generate のボディ
type GenerateQuizRequest struct {
	ListID        uuid.UUID `json:"listId" validate:"required"`
	QuestionCount int       `json:"questionCount" validate:"min=1,max=30"`
}

// QuestionReview は復習画面用に設問と採点済み回答を突き合わせた行
type QuestionReview struct {
	Question QuizQuestion
	Answer   AttemptAnswer
	Answered bool
}

// BuildReview は設問と回答を questionId で突き合わせます。
// 回答のない設問は不正解・空回答の行になる。設問順は quiz の並びを保つ。
func BuildReview(quiz Quiz, attempt QuizAttempt) []QuestionReview {
	byQuestion := make(map[uuid.UUID]AttemptAnswer, len(attempt.Answers))
	for _, a := range attempt.Answers {
		byQuestion[a.QuestionID] = a
	}
	reviews := make([]QuestionReview, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		row := QuestionReview{Question: q}
		if a, ok := byQuestion[q.QuestionID]; ok {
			row.Answer = a
			row.Answered = true
		} else {
			row.Answer = AttemptAnswer{QuestionID: q.QuestionID}
		}
		reviews = append(reviews, row)
	}
	return reviews
}
