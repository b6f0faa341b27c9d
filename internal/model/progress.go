// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressCommand は楽観更新の裏で送信待ちになっている進捗更新コマンド。
// 同じ単語・同じ目標ステータスのコマンドは1行に畳む (複合ユニークインデックス)。
type ProgressCommand struct {
	CommandID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WordID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_word_status,unique"` // 複合ユニークインデックスの一部
	Status     WordStatus `gorm:"type:text;not null;index:idx_word_status,unique"` // 複合ユニークインデックスの一部
	ListID     *uuid.UUID `gorm:"type:uuid"`
	Attempts   int        `gorm:"not null;default:0"`
	LastError  string
	EnqueuedAt time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time
}

func (ProgressCommand) TableName() string {
	return "progress_commands"
}

// Request は配送時に使う POST /vocabulary/words/{wordId}/progress のボディを組み立てます
func (c ProgressCommand) Request() UpdateProgressRequest {
	return UpdateProgressRequest{Status: c.Status, ListID: c.ListID}
}
