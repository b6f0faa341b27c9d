// internal/outbox/flusher.go
package outbox

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"vocab_learn_client/internal/model"
)

// ProgressSender は進捗更新1件をサーバへ届ける口
type ProgressSender interface {
	UpdateProgress(ctx context.Context, wordID uuid.UUID, req model.UpdateProgressRequest) (*model.WordProgress, error)
}

// FlushResult は1回のフラッシュの集計
type FlushResult struct {
	Delivered int
	Failed    int
}

// Flusher は送信待ちコマンドをサーバへ流し込みます。配送は at-least-once:
// 送信成功から削除まで落ちたコマンドは次回もう一度送られる。サーバ側は
// 単語ID+目標ステータスで冪等なので二重適用にはならない。
// 自動リトライのバックオフは持たず、再送はフラッシュの呼び出し単位で起きる。
type Flusher struct {
	outbox  Outbox
	sender  ProgressSender
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewFlusher はフラッシャーを生成します。rps <= 0 なら送信間隔を制限しない。
func NewFlusher(outbox Outbox, sender ProgressSender, rps float64, logger *slog.Logger) *Flusher {
	if logger == nil {
		logger = slog.Default()
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Flusher{outbox: outbox, sender: sender, limiter: limiter, logger: logger}
}

// Flush は送信待ちを古い順に1件ずつ送ります。個々の失敗は記録して先へ進み、
// コンテキストのキャンセルだけが全体を止める。
func (f *Flusher) Flush(ctx context.Context) (FlushResult, error) {
	var res FlushResult

	cmds, err := f.outbox.Pending(ctx, 0)
	if err != nil {
		return res, err
	}
	if len(cmds) == 0 {
		return res, nil
	}

	f.logger.Info("Flushing progress commands", slog.Int("pending", len(cmds)))

	for _, cmd := range cmds {
		if err := f.limiter.Wait(ctx); err != nil {
			return res, model.ErrCancelled
		}

		_, err := f.sender.UpdateProgress(ctx, cmd.WordID, cmd.Request())
		if err != nil {
			if errors.Is(err, model.ErrCancelled) {
				return res, model.ErrCancelled
			}
			res.Failed++
			f.logger.Warn("Progress command delivery failed",
				slog.String("word_id", cmd.WordID.String()),
				slog.String("status", string(cmd.Status)),
				slog.Int("attempts", cmd.Attempts+1),
				slog.Any("error", err),
			)
			if markErr := f.outbox.MarkFailed(ctx, cmd.CommandID, err); markErr != nil {
				f.logger.Error("Failed to record delivery failure", slog.Any("error", markErr))
			}
			continue
		}

		if err := f.outbox.MarkDelivered(ctx, cmd.CommandID); err != nil {
			// 削除に失敗したコマンドは次回再送される (at-least-once)
			f.logger.Error("Failed to remove delivered command", slog.Any("error", err))
		}
		res.Delivered++
	}

	f.logger.Info("Flush finished",
		slog.Int("delivered", res.Delivered),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}
