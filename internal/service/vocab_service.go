// internal/service/vocab_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vocab_learn_client/internal/api"
	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/outbox"
	"vocab_learn_client/internal/state"
)

// VocabService は一覧画面のネットワーク呼び出しとストア遷移を束ねます
type VocabService interface {
	// FetchLists は指定ページを取得してストアへ反映する。新しい取得を始める
	// 前に、実行中の取得があれば打ち切る。
	FetchLists(ctx context.Context, page int) error
	// FetchNextPage は hasMore のときだけ次ページを取得する
	FetchNextPage(ctx context.Context) error
	// CreateList は入力中のリストフォームを送信する
	CreateList(ctx context.Context) error
	// AddWord は入力中の単語フォームをモーダルの対象リストへ送信する
	AddWord(ctx context.Context) error
	// GenerateAIList は入力中のAIフォームでリスト生成を依頼する
	GenerateAIList(ctx context.Context) error
	// UpdateWordProgress は楽観更新してから永続化する
	UpdateWordProgress(ctx context.Context, wordID uuid.UUID, status model.WordStatus) error
	// FlushPending は送信待ちの進捗コマンドを再送する (ユーザー起点)
	FlushPending(ctx context.Context) (outbox.FlushResult, error)
}

type fetchHandle struct {
	cancel context.CancelFunc
}

type vocabService struct {
	api       api.VocabularyAPI
	store     *state.VocabStore
	outbox    outbox.Outbox
	flusher   *outbox.Flusher
	reconcile Reconciler
	alerter   Alerter
	pageSize  int
	logger    *slog.Logger

	mu      sync.Mutex
	current *fetchHandle // 実行中の一覧取得。新しい取得が来たら打ち切る
}

func NewVocabService(
	apiClient api.VocabularyAPI,
	store *state.VocabStore,
	ob outbox.Outbox,
	flusher *outbox.Flusher,
	alerter Alerter,
	pageSize int,
	logger *slog.Logger,
) VocabService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &vocabService{
		api:       apiClient,
		store:     store,
		outbox:    ob,
		flusher:   flusher,
		reconcile: NewOptimisticReconciler(),
		alerter:   alerter,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// beginFetch は直前の取得を打ち切り、今回の取得の寿命を登録します
func (s *vocabService) beginFetch(ctx context.Context) (context.Context, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	handle := &fetchHandle{cancel: cancel}
	s.current = handle

	return fetchCtx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		cancel()
		if s.current == handle {
			s.current = nil
		}
	}
}

func (s *vocabService) FetchLists(ctx context.Context, page int) error {
	if page < 1 {
		return model.NewAppError("INVALID_PAGE", "page must be a positive integer", "page", model.ErrInvalidInput)
	}

	fetchCtx, done := s.beginFetch(ctx)
	defer done()

	// 開始前に中断済みなら一切 dispatch しない
	if fetchCtx.Err() != nil {
		return model.ErrCancelled
	}
	s.store.Dispatch(state.VocabFetchStart{})

	lists, err := s.api.ListVocabulary(fetchCtx, page, s.pageSize)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			// 打ち切られた取得は成功も失敗も配信しない。後から来た取得が
			// 新しい状態を書くのを邪魔しないため。
			return model.ErrCancelled
		}
		s.store.Dispatch(state.VocabFetchError{Message: model.UserMessage(err)})
		return err
	}

	s.store.Dispatch(state.VocabFetchSuccess{
		Lists:   lists,
		Page:    page,
		HasMore: state.HasMorePages(len(lists), page, s.pageSize),
	})
	return nil
}

func (s *vocabService) FetchNextPage(ctx context.Context) error {
	st := s.store.State()
	if !st.HasMore {
		return nil
	}
	return s.FetchLists(ctx, st.Page+1)
}

func (s *vocabService) CreateList(ctx context.Context) error {
	form := s.store.State().ListForm
	if err := s.validate(ctx, form); err != nil {
		return err
	}

	s.store.Dispatch(state.VocabSaveStart{})
	defer s.store.Dispatch(state.VocabSaveEnd{}) // 成否によらず送信可否を戻す

	list, err := s.api.CreateList(ctx, form)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		// モーダルは開いたまま、入力値も保持する
		s.alerter.Alert(ctx, model.UserMessage(err))
		return err
	}

	s.logger.Info("Vocabulary list created",
		slog.String("list_id", list.ListID.String()),
		slog.String("name", list.Name),
	)
	s.store.Dispatch(state.CloseListModal{})
	s.store.Dispatch(state.ResetListForm{})
	return s.FetchLists(ctx, 1) // 増分ではなく全面リロード
}

func (s *vocabService) AddWord(ctx context.Context) error {
	st := s.store.State()
	if st.WordModalListID == nil {
		return model.NewAppError("NO_TARGET_LIST", "No list selected for the new word", "", model.ErrInvalidInput)
	}
	listID := *st.WordModalListID

	if err := s.validate(ctx, st.WordForm); err != nil {
		return err
	}

	s.store.Dispatch(state.VocabSaveStart{})
	defer s.store.Dispatch(state.VocabSaveEnd{})

	word, err := s.api.CreateWord(ctx, listID, st.WordForm)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.alerter.Alert(ctx, model.UserMessage(err))
		return err
	}

	// まず手元に追記して即表示し、正式な形は全面リロードで揃える
	s.store.Dispatch(state.AddWordSuccess{ListID: listID, Word: *word})
	s.store.Dispatch(state.CloseWordModal{})
	s.store.Dispatch(state.ResetWordForm{})
	return s.FetchLists(ctx, 1)
}

func (s *vocabService) GenerateAIList(ctx context.Context) error {
	form := s.store.State().AIForm
	if err := s.validate(ctx, form); err != nil {
		return err
	}

	s.store.Dispatch(state.AIStart{})
	defer s.store.Dispatch(state.AIEnd{})

	list, err := s.api.GenerateAIList(ctx, form)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			return err
		}
		s.alerter.Alert(ctx, model.UserMessage(err))
		return err
	}

	s.logger.Info("AI list generated",
		slog.String("list_id", list.ListID.String()),
		slog.String("topic", form.Topic),
	)
	s.store.Dispatch(state.CloseAIModal{})
	s.store.Dispatch(state.ResetAIForm{})
	return s.FetchLists(ctx, 1)
}

func (s *vocabService) UpdateWordProgress(ctx context.Context, wordID uuid.UUID, status model.WordStatus) error {
	listID := s.findListID(wordID)
	req := model.UpdateProgressRequest{Status: status, ListID: listID}

	err := s.reconcile.Run(ctx, Plan{
		Local: func() {
			// ネットワーク応答を待たずに表示へ反映する
			s.store.Dispatch(state.UpdateWordProgress{
				WordID:     wordID,
				Status:     status,
				Mastery:    status.OptimisticMastery(),
				ProgressID: uuid.New(),
				Now:        time.Now(),
			})
		},
		Persist: func(ctx context.Context) error {
			// 先に行列へ積んでおく。即時送信が失敗してもコマンドは残り、
			// 次のフラッシュで再送される。
			if err := s.outbox.Enqueue(ctx, wordID, status, listID); err != nil {
				s.logger.Error("Failed to enqueue progress command", slog.Any("error", err))
			}
			if _, err := s.api.UpdateProgress(ctx, wordID, req); err != nil {
				return err
			}
			if err := s.outbox.MarkDeliveredByKey(ctx, wordID, status); err != nil {
				s.logger.Error("Failed to clear delivered command", slog.Any("error", err))
			}
			return nil
		},
		Sync: func(ctx context.Context) error {
			// 巻き戻しはせず、現在ページを取り直して正に合わせる
			return s.FetchLists(ctx, s.store.State().Page)
		},
	})

	if err != nil && !errors.Is(err, model.ErrCancelled) {
		s.alerter.Alert(ctx, model.UserMessage(err))
	}
	return err
}

func (s *vocabService) FlushPending(ctx context.Context) (outbox.FlushResult, error) {
	return s.flusher.Flush(ctx)
}

// findListID は現在の状態から単語の属すリストを探します (見つからなければ nil)
func (s *vocabService) findListID(wordID uuid.UUID) *uuid.UUID {
	for _, l := range s.store.State().Lists {
		for _, w := range l.Words {
			if w.WordID == wordID {
				id := l.ListID
				return &id
			}
		}
	}
	return nil
}

func (s *vocabService) validate(ctx context.Context, form any) error {
	return validateForm(ctx, s.alerter, form)
}
