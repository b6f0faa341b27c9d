// internal/service/alerter.go
package service

import (
	"context"
	"log/slog"
)

// Alerter は変更系の失敗をユーザーに割り込み通知する口。
// 取得系の失敗は状態の error フィールドに積むのに対し、変更系は
// モーダルを開いたまま入力値を保持してこちらで知らせる。
type Alerter interface {
	Alert(ctx context.Context, message string)
}

type slogAlerter struct {
	logger *slog.Logger
}

// NewSlogAlerter は警告ログとしてアラートを流す実装を返します。
// UI を持つ組み込み先はこのインターフェースを自前の実装で差し替える。
func NewSlogAlerter(logger *slog.Logger) Alerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAlerter{logger: logger}
}

func (a *slogAlerter) Alert(ctx context.Context, message string) {
	a.logger.WarnContext(ctx, "User alert", slog.String("message", message))
}
