// internal/model/list.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListCounts はサーバが返す集計値 (_count)。読み込んだ words とずれることがある参考値。
type ListCounts struct {
	Words int `json:"words"`
}

// VocabularyList は単語リストとその単語を表します
type VocabularyList struct {
	ListID         uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	TargetLanguage string     `json:"targetLanguage"`
	NativeLanguage string     `json:"nativeLanguage"`
	Words          []Word     `json:"words"`
	Counts         ListCounts `json:"_count"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// WordCount は表示用の単語数。words 読み込み済みならその長さが正で、
// 未読み込みの間だけ集計値にフォールバックする。
func (l VocabularyList) WordCount() int {
	if l.Words != nil {
		return len(l.Words)
	}
	return l.Counts.Words
}

// ListForm はリスト作成/編集フォームのバッファ兼リクエストDTO
type ListForm struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Description    string `json:"description" validate:"max=500"`
	TargetLanguage string `json:"targetLanguage" validate:"required,min=2,max=8"`
	NativeLanguage string `json:"nativeLanguage" validate:"required,min=2,max=8"`
}

func InitialListForm() ListForm {
	return ListForm{TargetLanguage: "en", NativeLanguage: "ja"}
}

// Form は編集フォームの初期値としてリストの現在値を写します
func (l VocabularyList) Form() ListForm {
	return ListForm{
		Name:           l.Name,
		Description:    l.Description,
		TargetLanguage: l.TargetLanguage,
		NativeLanguage: l.NativeLanguage,
	}
}

// ListFormPatch はフォームへの浅いマージ用パッチ (nil フィールドは変更なし)
type ListFormPatch struct {
	Name           *string
	Description    *string
	TargetLanguage *string
	NativeLanguage *string
}

func (f ListForm) Merge(p ListFormPatch) ListForm {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.TargetLanguage != nil {
		f.TargetLanguage = *p.TargetLanguage
	}
	if p.NativeLanguage != nil {
		f.NativeLanguage = *p.NativeLanguage
	}
	return f
}

// AIForm はAI生成フォームのバッファ兼 POST /vocabulary/generate-ai-list のボディ
type AIForm struct {
	Topic          string `json:"topic" validate:"required,min=1,max=100"`
	TargetLanguage string `json:"targetLanguage" validate:"required,min=2,max=8"`
	NativeLanguage string `json:"nativeLanguage" validate:"required,min=2,max=8"`
	WordCount      int    `json:"wordCount" validate:"min=1,max=50"`
	Difficulty     string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func InitialAIForm() AIForm {
	return AIForm{
		TargetLanguage: "en",
		NativeLanguage: "ja",
		WordCount:      10,
		Difficulty:     string(DifficultyMedium),
	}
}

// AIFormPatch はAIフォームへの浅いマージ用パッチ
type AIFormPatch struct {
	Topic          *string
	TargetLanguage *string
	NativeLanguage *string
	WordCount      *int
	Difficulty     *string
}

func (f AIForm) Merge(p AIFormPatch) AIForm {
	if p.Topic != nil {
		f.Topic = *p.Topic
	}
	if p.TargetLanguage != nil {
		f.TargetLanguage = *p.TargetLanguage
	}
	if p.NativeLanguage != nil {
		f.NativeLanguage = *p.NativeLanguage
	}
	if p.WordCount != nil {
		f.WordCount = *p.WordCount
	}
	if p.Difficulty != nil {
		f.Difficulty = *p.Difficulty
	}
	return f
}

// VocabularyListsResponse は GET /vocabulary のレスポンス
type VocabularyListsResponse struct {
	VocabularyLists []VocabularyList `json:"vocabularyLists"`
}
