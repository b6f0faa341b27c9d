//go:generate mockery --name Outbox --output ./mocks --outpkg mocks --case=underscore
package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vocab_learn_client/internal/model"
)

// Outbox は進捗更新コマンドの送信待ち行列
type Outbox interface {
	// Enqueue はコマンドを積む。同じ単語・同じ目標ステータスは1行に畳み、
	// 積み直しとして enqueued_at を更新する。
	Enqueue(ctx context.Context, wordID uuid.UUID, status model.WordStatus, listID *uuid.UUID) error
	// Pending は送信待ちコマンドを積んだ順で返す
	Pending(ctx context.Context, limit int) ([]model.ProgressCommand, error)
	// MarkDelivered は配送済みのコマンドを取り除く
	MarkDelivered(ctx context.Context, commandID uuid.UUID) error
	// MarkDeliveredByKey は単語ID+目標ステータスで配送済みのコマンドを取り除く。
	// 楽観更新の即時送信が成功したときに使う。
	MarkDeliveredByKey(ctx context.Context, wordID uuid.UUID, status model.WordStatus) error
	// MarkFailed は失敗を記録してコマンドを残す (次のフラッシュで再送する)
	MarkFailed(ctx context.Context, commandID uuid.UUID, cause error) error
	// Size は送信待ち件数を返す
	Size(ctx context.Context) (int64, error)
}

type gormOutbox struct {
	db *gorm.DB
}

func NewGormOutbox(db *gorm.DB) Outbox {
	return &gormOutbox{db: db}
}

func (o *gormOutbox) Enqueue(ctx context.Context, wordID uuid.UUID, status model.WordStatus, listID *uuid.UUID) error {
	cmd := model.ProgressCommand{
		CommandID:  uuid.New(),
		WordID:     wordID,
		Status:     status,
		ListID:     listID,
		EnqueuedAt: time.Now(),
	}
	result := o.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word_id"}, {Name: "status"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"list_id":     cmd.ListID,
			"enqueued_at": cmd.EnqueuedAt,
		}),
	}).Create(&cmd)
	if result.Error != nil {
		return fmt.Errorf("gormOutbox.Enqueue: %w", result.Error)
	}
	return nil
}

func (o *gormOutbox) Pending(ctx context.Context, limit int) ([]model.ProgressCommand, error) {
	var cmds []model.ProgressCommand
	q := o.db.WithContext(ctx).Order("enqueued_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if result := q.Find(&cmds); result.Error != nil {
		return nil, fmt.Errorf("gormOutbox.Pending: %w", result.Error)
	}
	return cmds, nil
}

func (o *gormOutbox) MarkDelivered(ctx context.Context, commandID uuid.UUID) error {
	result := o.db.WithContext(ctx).Delete(&model.ProgressCommand{}, "command_id = ?", commandID)
	if result.Error != nil {
		return fmt.Errorf("gormOutbox.MarkDelivered: %w", result.Error)
	}
	return nil
}

func (o *gormOutbox) MarkDeliveredByKey(ctx context.Context, wordID uuid.UUID, status model.WordStatus) error {
	result := o.db.WithContext(ctx).Delete(&model.ProgressCommand{}, "word_id = ? AND status = ?", wordID, status)
	if result.Error != nil {
		return fmt.Errorf("gormOutbox.MarkDeliveredByKey: %w", result.Error)
	}
	return nil
}

func (o *gormOutbox) MarkFailed(ctx context.Context, commandID uuid.UUID, cause error) error {
	var cmd model.ProgressCommand
	if result := o.db.WithContext(ctx).First(&cmd, "command_id = ?", commandID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("gormOutbox.MarkFailed: %w", result.Error)
	}

	updates := map[string]interface{}{
		"attempts":   cmd.Attempts + 1,
		"last_error": cause.Error(),
	}
	result := o.db.WithContext(ctx).Model(&model.ProgressCommand{}).
		Where("command_id = ?", commandID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormOutbox.MarkFailed: %w", result.Error)
	}
	return nil
}

func (o *gormOutbox) Size(ctx context.Context) (int64, error) {
	var count int64
	if result := o.db.WithContext(ctx).Model(&model.ProgressCommand{}).Count(&count); result.Error != nil {
		return 0, fmt.Errorf("gormOutbox.Size: %w", result.Error)
	}
	return count, nil
}
