// internal/service/details_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"vocab_learn_client/internal/api"
	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/state"
)

// DetailsService は詳細画面のネットワーク呼び出しとストア遷移を束ねます。
// 一覧画面と違い、変更のたびにリスト全体を取り直して整合を取る。
type DetailsService interface {
	// FetchList はリスト1件を単語込みで取得してストアへ反映する
	FetchList(ctx context.Context, listID uuid.UUID) error
	// UpdateList は編集中のリストフォームを送信し、成功したら取り直す
	UpdateList(ctx context.Context) error
	// UpdateWord は編集中の単語フォームを送信し、成功したら取り直す
	UpdateWord(ctx context.Context) error
	// ConfirmDelete は確認ダイアログが指している対象を削除する。
	// 実行した対象の種別を返す (リスト削除後は一覧画面側の再取得が要る)。
	ConfirmDelete(ctx context.Context) (state.ConfirmKind, error)
}

type detailsService struct {
	api       api.VocabularyAPI
	store     *state.DetailsStore
	reconcile Reconciler
	alerter   Alerter
	logger    *slog.Logger
}

func NewDetailsService(apiClient api.VocabularyAPI, store *state.DetailsStore, alerter Alerter, logger *slog.Logger) DetailsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &detailsService{
		api:       apiClient,
		store:     store,
		reconcile: NewPessimisticReconciler(),
		alerter:   alerter,
		logger:    logger,
	}
}

func (s *detailsService) FetchList(ctx context.Context, listID uuid.UUID) error {
	s.store.Dispatch(state.DetailsFetchStart{})

	list, err := s.api.GetList(ctx, listID)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			// 中断は成功とも失敗とも配信しない
			return err
		}
		s.store.Dispatch(state.DetailsFetchError{Message: model.UserMessage(err)})
		return err
	}

	s.store.Dispatch(state.DetailsFetchSuccess{List: *list})
	return nil
}

func (s *detailsService) UpdateList(ctx context.Context) error {
	st := s.store.State()
	if st.List == nil {
		return model.NewAppError("NO_LIST_LOADED", "No list is loaded", "", model.ErrInvalidInput)
	}
	listID := st.List.ListID
	form := st.EditListForm

	if err := s.validate(ctx, form); err != nil {
		return err
	}

	s.store.Dispatch(state.DetailsSaveStart{})
	defer s.store.Dispatch(state.DetailsSaveEnd{})

	err := s.reconcile.Run(ctx, Plan{
		Persist: func(ctx context.Context) error {
			_, err := s.api.UpdateList(ctx, listID, form)
			return err
		},
		Sync: func(ctx context.Context) error {
			s.store.Dispatch(state.CloseEditListModal{})
			return s.FetchList(ctx, listID)
		},
	})
	if err != nil && !errors.Is(err, model.ErrCancelled) {
		// モーダルは開いたまま、入力値も保持する
		s.alerter.Alert(ctx, model.UserMessage(err))
	}
	return err
}

func (s *detailsService) UpdateWord(ctx context.Context) error {
	st := s.store.State()
	if st.List == nil {
		return model.NewAppError("NO_LIST_LOADED", "No list is loaded", "", model.ErrInvalidInput)
	}
	if st.EditWordModalID == nil {
		return model.NewAppError("NO_TARGET_WORD", "No word selected for editing", "", model.ErrInvalidInput)
	}
	listID := st.List.ListID
	wordID := *st.EditWordModalID
	form := st.EditWordForm

	if err := s.validate(ctx, form); err != nil {
		return err
	}

	s.store.Dispatch(state.DetailsSaveStart{})
	defer s.store.Dispatch(state.DetailsSaveEnd{})

	err := s.reconcile.Run(ctx, Plan{
		Persist: func(ctx context.Context) error {
			_, err := s.api.UpdateWord(ctx, listID, wordID, form)
			return err
		},
		Sync: func(ctx context.Context) error {
			s.store.Dispatch(state.CloseEditWordModal{})
			return s.FetchList(ctx, listID)
		},
	})
	if err != nil && !errors.Is(err, model.ErrCancelled) {
		s.alerter.Alert(ctx, model.UserMessage(err))
	}
	return err
}

func (s *detailsService) ConfirmDelete(ctx context.Context) (state.ConfirmKind, error) {
	st := s.store.State()
	if st.List == nil {
		return state.ConfirmNone, model.NewAppError("NO_LIST_LOADED", "No list is loaded", "", model.ErrInvalidInput)
	}
	listID := st.List.ListID
	target := st.Confirm

	switch target.Kind {
	case state.ConfirmWord:
		s.store.Dispatch(state.DetailsSaveStart{})
		defer s.store.Dispatch(state.DetailsSaveEnd{})

		err := s.reconcile.Run(ctx, Plan{
			Persist: func(ctx context.Context) error {
				return s.api.DeleteWord(ctx, listID, target.WordID)
			},
			Sync: func(ctx context.Context) error {
				s.store.Dispatch(state.DismissDeleteConfirm{})
				return s.FetchList(ctx, listID)
			},
		})
		if err != nil && !errors.Is(err, model.ErrCancelled) {
			// ダイアログは開いたままにしてやり直せるようにする
			s.alerter.Alert(ctx, model.UserMessage(err))
		}
		return state.ConfirmWord, err

	case state.ConfirmList:
		s.store.Dispatch(state.DetailsSaveStart{})
		defer s.store.Dispatch(state.DetailsSaveEnd{})

		err := s.reconcile.Run(ctx, Plan{
			Persist: func(ctx context.Context) error {
				return s.api.DeleteList(ctx, listID)
			},
			Sync: func(ctx context.Context) error {
				// リストはもう存在しないので取り直しはない
				s.store.Dispatch(state.DismissDeleteConfirm{})
				return nil
			},
		})
		if err != nil && !errors.Is(err, model.ErrCancelled) {
			s.alerter.Alert(ctx, model.UserMessage(err))
		}
		if err == nil {
			s.logger.Info("Vocabulary list deleted", slog.String("list_id", listID.String()))
		}
		return state.ConfirmList, err

	default:
		return state.ConfirmNone, model.NewAppError("NO_CONFIRM_TARGET", "Nothing is pending deletion", "", model.ErrInvalidInput)
	}
}

func (s *detailsService) validate(ctx context.Context, form any) error {
	return validateForm(ctx, s.alerter, form)
}
