// internal/model/word.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WordStatus は単語の学習ステータス
type WordStatus string

const (
	StatusNotStarted WordStatus = "not_started"
	StatusLearning   WordStatus = "learning"
	StatusMastered   WordStatus = "mastered"
)

// legacyStatusLearned は旧UIが送ってくる三値enumの残骸。
// mastered と同じ「覚えた」ボタンに割り当てられていたため mastered に正規化する。
const legacyStatusLearned = "learned"

// ParseWordStatus は文字列を WordStatus に変換します。
// 旧仕様の "learned" は mastered として受け付け、未知の値は ErrInvalidInput を返します。
func ParseWordStatus(s string) (WordStatus, error) {
	switch s {
	case string(StatusNotStarted), string(StatusLearning), string(StatusMastered):
		return WordStatus(s), nil
	case legacyStatusLearned:
		return StatusMastered, nil
	default:
		return "", NewAppError("INVALID_STATUS", fmt.Sprintf("unknown word status %q", s), "status", ErrInvalidInput)
	}
}

// OptimisticMastery は楽観更新で使う二値の習熟度ルール (mastered → 1.0, それ以外 → 0)。
// サーバ側の間隔反復カーブとはずれる可能性がある点に注意 (再取得で収束する)。
func (s WordStatus) OptimisticMastery() float64 {
	if s == StatusMastered {
		return 1.0
	}
	return 0.0
}

// Difficulty は単語の難易度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard):
		return Difficulty(s), nil
	default:
		return "", NewAppError("INVALID_DIFFICULTY", fmt.Sprintf("unknown difficulty %q", s), "difficulty", ErrInvalidInput)
	}
}

// WordProgress は単語ごとの学習進捗を表します
type WordProgress struct {
	ProgressID  uuid.UUID  `json:"id"`
	WordID      uuid.UUID  `json:"wordId"`
	UserID      uuid.UUID  `json:"userId"`
	Status      WordStatus `json:"status"`
	Mastery     float64    `json:"mastery"` // [0,1]
	ReviewCount int        `json:"reviewCount"`
	Streak      int        `json:"streak"`
	LastReview  *time.Time `json:"lastReview,omitempty"`
	NextReview  *time.Time `json:"nextReview,omitempty"`
}

// Word は単語とその訳を表します
type Word struct {
	WordID       uuid.UUID     `json:"id"`
	ListID       uuid.UUID     `json:"listId"`
	Term         string        `json:"word"` // 表層形
	Translation  string        `json:"translation"`
	PartOfSpeech string        `json:"partOfSpeech,omitempty"`
	Difficulty   Difficulty    `json:"difficulty"`
	Progress     *WordProgress `json:"progress,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// WordForm は単語追加/編集フォームのバッファ兼リクエストDTO
type WordForm struct {
	Term         string `json:"word" validate:"required,min=1,max=100"`
	Translation  string `json:"translation" validate:"required,min=1,max=200"`
	PartOfSpeech string `json:"partOfSpeech" validate:"max=30"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// InitialWordForm はフォームリセットで戻す初期値。部分的な初期化は行わないこと。
func InitialWordForm() WordForm {
	return WordForm{Difficulty: string(DifficultyMedium)}
}

// Form は編集フォームの初期値として単語の現在値を写します
func (w Word) Form() WordForm {
	f := InitialWordForm()
	f.Term = w.Term
	f.Translation = w.Translation
	f.PartOfSpeech = w.PartOfSpeech
	if w.Difficulty != "" {
		f.Difficulty = string(w.Difficulty)
	}
	return f
}

// WordFormPatch はフォームへの浅いマージ用パッチ (nil フィールドは変更なし)
type WordFormPatch struct {
	Term         *string
	Translation  *string
	PartOfSpeech *string
	Difficulty   *string
}

// Merge はパッチを適用した新しいフォームを返します (レシーバは変更しない)
func (f WordForm) Merge(p WordFormPatch) WordForm {
	if p.Term != nil {
		f.Term = *p.Term
	}
	if p.Translation != nil {
		f.Translation = *p.Translation
	}
	if p.PartOfSpeech != nil {
		f.PartOfSpeech = *p.PartOfSpeech
	}
	if p.Difficulty != nil {
		f.Difficulty = *p.Difficulty
	}
	return f
}

// UpdateProgressRequest は POST /vocabulary/words/{wordId}/progress のボディ
type UpdateProgressRequest struct {
	Status WordStatus `json:"status" validate:"required"`
	ListID *uuid.UUID `json:"listId,omitempty"`
}
