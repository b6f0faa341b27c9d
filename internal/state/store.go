// internal/state/store.go
package state

import (
	"fmt"
	"log/slog"
	"sync"
)

// Reducer は (現在の状態, アクション) から次の状態を導出する純粋関数
type Reducer[S, A any] func(S, A) S

// Listener は状態変化の通知を受け取るコールバック
type Listener[S any] func(S)

// Store は単一の状態値をミューテックスで直列化して保持します。
// Dispatch は到着順に1件ずつ処理され、リデューサの実行中に別の遷移が
// 割り込むことはない。通知はロック外で同期的に行うため、リスナーから
// の再 Dispatch も直列化されるだけで詰まらない。
type Store[S, A any] struct {
	mu       sync.Mutex
	state    S
	reduce   Reducer[S, A]
	subs     map[int]Listener[S]
	nextSub  int
	logger   *slog.Logger
	storeTag string
}

// NewStore はストアを生成します。logger に nil を渡すと slog.Default() が使われます。
func NewStore[S, A any](name string, initial S, reduce Reducer[S, A], logger *slog.Logger) *Store[S, A] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[S, A]{
		state:    initial,
		reduce:   reduce,
		subs:     make(map[int]Listener[S]),
		logger:   logger,
		storeTag: name,
	}
}

// State は現在の状態のコピーを返します
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch はアクションを適用し、購読者へ新しい状態を同期通知します
func (s *Store[S, A]) Dispatch(action A) {
	s.mu.Lock()
	s.state = s.reduce(s.state, action)
	next := s.state
	listeners := make([]Listener[S], 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("Action dispatched",
		slog.String("store", s.storeTag),
		slog.String("action", fmt.Sprintf("%T", action)),
	)

	for _, fn := range listeners {
		fn(next)
	}
}

// Subscribe はリスナーを登録し、解除用の関数を返します
func (s *Store[S, A]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
