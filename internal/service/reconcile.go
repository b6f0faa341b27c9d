// internal/service/reconcile.go
package service

import (
	"context"
	"errors"

	"vocab_learn_client/internal/model"
)

// Plan は「ローカル更新 → 永続化 → サーバ値との同期」の1回分
type Plan struct {
	// Local は即時のローカル状態遷移。楽観戦略でだけ実行される (nil 可)
	Local func()
	// Persist はサーバへの書き込み
	Persist func(ctx context.Context) error
	// Sync はサーバ値との突き合わせ (再取得)。nil なら同期しない
	Sync func(ctx context.Context) error
}

// Reconciler は更新の適用と整合の取り方を戦略として切り出したもの。
// 画面ごとに楽観・悲観を選べるが、呼び出し側の書き方は変わらない。
type Reconciler interface {
	Run(ctx context.Context, p Plan) error
}

type optimisticReconciler struct{}

// NewOptimisticReconciler はローカル遷移を先に適用し、永続化の失敗時だけ
// 同期 (修正再取得) を走らせる戦略を返します。巻き戻しは個別に行わない。
func NewOptimisticReconciler() Reconciler { return optimisticReconciler{} }

func (optimisticReconciler) Run(ctx context.Context, p Plan) error {
	if p.Local != nil {
		p.Local()
	}
	err := p.Persist(ctx)
	if err == nil {
		return nil
	}
	// 中断は失敗ではないので修正再取得もしない
	if errors.Is(err, model.ErrCancelled) {
		return err
	}
	if p.Sync != nil {
		// 失敗後の状態はサーバを正としてまるごと取り直す
		if syncErr := p.Sync(ctx); syncErr != nil && !errors.Is(syncErr, model.ErrCancelled) {
			return errors.Join(err, syncErr)
		}
	}
	return err
}

type pessimisticReconciler struct{}

// NewPessimisticReconciler は永続化が成功してから同期する戦略を返します。
// ローカル遷移は使わず、表示はサーバからの再取得だけで更新される。
func NewPessimisticReconciler() Reconciler { return pessimisticReconciler{} }

func (pessimisticReconciler) Run(ctx context.Context, p Plan) error {
	if err := p.Persist(ctx); err != nil {
		return err
	}
	if p.Sync != nil {
		return p.Sync(ctx)
	}
	return nil
}
