// internal/state/details.go
package state

import (
	"log/slog"

	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
)

// ConfirmKind は削除確認ダイアログが何を対象にしているか
type ConfirmKind int

const (
	ConfirmNone ConfirmKind = iota // ダイアログ非表示
	ConfirmList                    // リスト全体の削除
	ConfirmWord                    // 単語1件の削除
)

// ConfirmTarget は削除確認の対象を表すタグ付きバリアント。
// 文字列センチネルで「リスト or 単語」を使い分けない。
type ConfirmTarget struct {
	Kind   ConfirmKind
	WordID uuid.UUID // Kind == ConfirmWord のときだけ有効
}

func NoConfirm() ConfirmTarget         { return ConfirmTarget{Kind: ConfirmNone} }
func ConfirmListDelete() ConfirmTarget { return ConfirmTarget{Kind: ConfirmList} }

func ConfirmWordDelete(id uuid.UUID) ConfirmTarget {
	return ConfirmTarget{Kind: ConfirmWord, WordID: id}
}

// DetailsState はリスト詳細画面の状態。一覧画面と違い、変更系の操作後は
// ローカルパッチではなくサーバからの再取得で一貫性を取る。
type DetailsState struct {
	List    *model.VocabularyList
	Loading bool
	Error   string

	EditListForm      model.ListForm
	ShowEditListModal bool
	EditWordForm      model.WordForm
	EditWordModalID   *uuid.UUID // nil はクローズ。開いている間は編集対象の単語ID

	Confirm ConfirmTarget
	Saving  bool
}

func InitialDetailsState() DetailsState {
	return DetailsState{
		EditListForm: model.InitialListForm(),
		EditWordForm: model.InitialWordForm(),
		Confirm:      NoConfirm(),
	}
}

// DetailsStore は詳細画面のストア
type DetailsStore = Store[DetailsState, DetailsAction]

func NewDetailsStore(logger *slog.Logger) *DetailsStore {
	return NewStore("details", InitialDetailsState(), ReduceDetails, logger)
}

// DetailsAction は詳細画面ストアへのアクションの閉じた集合
type DetailsAction interface{ isDetailsAction() }

type (
	DetailsFetchStart   struct{}
	DetailsFetchSuccess struct{ List model.VocabularyList }
	DetailsFetchError   struct{ Message string }

	// OpenEditListModal は現在のリスト値をフォームに写してから開く
	OpenEditListModal  struct{}
	CloseEditListModal struct{}
	// OpenEditWordModal は対象の単語の現在値をフォームに写してから開く
	OpenEditWordModal  struct{ WordID uuid.UUID }
	CloseEditWordModal struct{}

	UpdateEditListForm struct{ Patch model.ListFormPatch }
	ResetEditListForm  struct{}
	UpdateEditWordForm struct{ Patch model.WordFormPatch }
	ResetEditWordForm  struct{}

	// ShowDeleteConfirm は削除確認の対象を差し替える (開く/付け替えの両方)
	ShowDeleteConfirm    struct{ Target ConfirmTarget }
	DismissDeleteConfirm struct{}

	DetailsSaveStart struct{}
	DetailsSaveEnd   struct{}
)

func (DetailsFetchStart) isDetailsAction()    {}
func (DetailsFetchSuccess) isDetailsAction()  {}
func (DetailsFetchError) isDetailsAction()    {}
func (OpenEditListModal) isDetailsAction()    {}
func (CloseEditListModal) isDetailsAction()   {}
func (OpenEditWordModal) isDetailsAction()    {}
func (CloseEditWordModal) isDetailsAction()   {}
func (UpdateEditListForm) isDetailsAction()   {}
func (ResetEditListForm) isDetailsAction()    {}
func (UpdateEditWordForm) isDetailsAction()   {}
func (ResetEditWordForm) isDetailsAction()    {}
func (ShowDeleteConfirm) isDetailsAction()    {}
func (DismissDeleteConfirm) isDetailsAction() {}
func (DetailsSaveStart) isDetailsAction()     {}
func (DetailsSaveEnd) isDetailsAction()       {}

// ReduceDetails は詳細画面の純粋な状態遷移
func ReduceDetails(s DetailsState, action DetailsAction) DetailsState {
	switch a := action.(type) {
	case DetailsFetchStart:
		s.Loading = true
		s.Error = ""
		return s

	case DetailsFetchSuccess:
		list := a.List
		s.List = &list
		s.Loading = false
		return s

	case DetailsFetchError:
		s.Loading = false
		s.Error = a.Message
		return s

	case OpenEditListModal:
		if s.List != nil {
			s.EditListForm = s.List.Form()
		}
		s.ShowEditListModal = true
		return s
	case CloseEditListModal:
		s.ShowEditListModal = false
		return s

	case OpenEditWordModal:
		if s.List != nil {
			for _, w := range s.List.Words {
				if w.WordID == a.WordID {
					s.EditWordForm = w.Form()
					break
				}
			}
		}
		id := a.WordID
		s.EditWordModalID = &id
		return s
	case CloseEditWordModal:
		s.EditWordModalID = nil
		return s

	case UpdateEditListForm:
		s.EditListForm = s.EditListForm.Merge(a.Patch)
		return s
	case ResetEditListForm:
		s.EditListForm = model.InitialListForm()
		return s
	case UpdateEditWordForm:
		s.EditWordForm = s.EditWordForm.Merge(a.Patch)
		return s
	case ResetEditWordForm:
		s.EditWordForm = model.InitialWordForm()
		return s

	case ShowDeleteConfirm:
		s.Confirm = a.Target
		return s
	case DismissDeleteConfirm:
		s.Confirm = NoConfirm()
		return s

	case DetailsSaveStart:
		s.Saving = true
		return s
	case DetailsSaveEnd:
		s.Saving = false
		return s
	}
	return s
}
