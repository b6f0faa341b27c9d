// internal/state/vocab.go
package state

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"vocab_learn_client/internal/model"
)

// VocabState はリスト一覧画面の唯一の信頼できる状態。
// loading / saving / error は排他ではなく独立したフィールドで、
// どの組み合わせも到達しうる (保存中に別の取得が走る等)。
type VocabState struct {
	Lists   []model.VocabularyList
	Loading bool
	Error   string // "" はエラーなし
	Page    int
	HasMore bool

	ShowListModal   bool
	WordModalListID *uuid.UUID // nil はクローズ。開いている間は単語追加先のリストID
	ShowAIModal     bool

	ListForm model.ListForm
	WordForm model.WordForm
	AIForm   model.AIForm

	Saving    bool
	AILoading bool
}

func InitialVocabState() VocabState {
	return VocabState{
		Page:     1,
		HasMore:  true,
		ListForm: model.InitialListForm(),
		WordForm: model.InitialWordForm(),
		AIForm:   model.InitialAIForm(),
	}
}

// HasMorePages は「返ってきた件数がページ窓を満たしていれば続きがある」と
// みなす近似判定。最終ページがちょうど満杯のときは true を返し、次の空
// フェッチで打ち切られる。正確な総数チェックではない。
func HasMorePages(returned, page, pageSize int) bool {
	return returned >= page*pageSize
}

// VocabStore は一覧画面のストア
type VocabStore = Store[VocabState, VocabAction]

func NewVocabStore(logger *slog.Logger) *VocabStore {
	return NewStore("vocab", InitialVocabState(), ReduceVocab, logger)
}

// VocabAction は一覧画面ストアへのアクションの閉じた集合
type VocabAction interface{ isVocabAction() }

type (
	// VocabFetchStart は取得開始。既存の lists は消さず、古いデータを出したまま読み込む
	VocabFetchStart struct{}
	// VocabFetchSuccess は取得成功。lists を丸ごと差し替える
	VocabFetchSuccess struct {
		Lists   []model.VocabularyList
		Page    int
		HasMore bool
	}
	// VocabFetchError は取得失敗。lists はロールバックせずに残す
	VocabFetchError struct{ Message string }

	OpenListModal  struct{}
	CloseListModal struct{}
	OpenWordModal  struct{ ListID uuid.UUID }
	CloseWordModal struct{}
	OpenAIModal    struct{}
	CloseAIModal   struct{}

	// UpdateListForm 系はフォームバッファへの浅いマージ
	UpdateListForm struct{ Patch model.ListFormPatch }
	ResetListForm  struct{}
	UpdateWordForm struct{ Patch model.WordFormPatch }
	ResetWordForm  struct{}
	UpdateAIForm   struct{ Patch model.AIFormPatch }
	ResetAIForm    struct{}

	VocabSaveStart struct{}
	VocabSaveEnd   struct{}
	AIStart        struct{}
	AIEnd          struct{}

	// AddWordSuccess は作成済みの単語を該当リストへ追記する
	AddWordSuccess struct {
		ListID uuid.UUID
		Word   model.Word
	}

	// UpdateWordProgress は楽観更新。ネットワーク応答を待たずに、全リストを
	// 走査して wordId が一致する単語の progress を書き換える。ProgressID と
	// Now は呼び出し側が採番・採時してペイロードに載せる (リデューサを純粋に保つ)。
	UpdateWordProgress struct {
		WordID     uuid.UUID
		Status     model.WordStatus
		Mastery    float64
		ProgressID uuid.UUID
		Now        time.Time
	}

	// ApplyQuizOutcome は採点結果の復習簿記 (回数・連続正解・日時) をリストへ
	// 反映する。習熟度そのものは動かさない。サーバ値とは再取得で収束する。
	ApplyQuizOutcome struct {
		Outcomes []WordOutcome
		Now      time.Time
	}
)

// WordOutcome はクイズ1問ぶんの採点結果を単語に対応付けたもの
type WordOutcome struct {
	WordID    uuid.UUID
	IsCorrect bool
}

func (VocabFetchStart) isVocabAction()    {}
func (VocabFetchSuccess) isVocabAction()  {}
func (VocabFetchError) isVocabAction()    {}
func (OpenListModal) isVocabAction()      {}
func (CloseListModal) isVocabAction()     {}
func (OpenWordModal) isVocabAction()      {}
func (CloseWordModal) isVocabAction()     {}
func (OpenAIModal) isVocabAction()        {}
func (CloseAIModal) isVocabAction()       {}
func (UpdateListForm) isVocabAction()     {}
func (ResetListForm) isVocabAction()      {}
func (UpdateWordForm) isVocabAction()     {}
func (ResetWordForm) isVocabAction()      {}
func (UpdateAIForm) isVocabAction()       {}
func (ResetAIForm) isVocabAction()        {}
func (VocabSaveStart) isVocabAction()     {}
func (VocabSaveEnd) isVocabAction()       {}
func (AIStart) isVocabAction()            {}
func (AIEnd) isVocabAction()              {}
func (AddWordSuccess) isVocabAction()     {}
func (UpdateWordProgress) isVocabAction() {}
func (ApplyQuizOutcome) isVocabAction()   {}

// ReduceVocab は一覧画面の純粋な状態遷移。未知のアクションは状態をそのまま返す。
func ReduceVocab(s VocabState, action VocabAction) VocabState {
	switch a := action.(type) {
	case VocabFetchStart:
		s.Loading = true
		s.Error = ""
		return s

	case VocabFetchSuccess:
		s.Lists = a.Lists
		s.Page = a.Page
		s.HasMore = a.HasMore
		s.Loading = false
		return s

	case VocabFetchError:
		s.Loading = false
		s.Error = a.Message
		return s

	case OpenListModal:
		s.ShowListModal = true
		return s
	case CloseListModal:
		s.ShowListModal = false
		return s
	case OpenWordModal:
		id := a.ListID
		s.WordModalListID = &id
		return s
	case CloseWordModal:
		s.WordModalListID = nil
		return s
	case OpenAIModal:
		s.ShowAIModal = true
		return s
	case CloseAIModal:
		s.ShowAIModal = false
		return s

	case UpdateListForm:
		s.ListForm = s.ListForm.Merge(a.Patch)
		return s
	case ResetListForm:
		s.ListForm = model.InitialListForm()
		return s
	case UpdateWordForm:
		s.WordForm = s.WordForm.Merge(a.Patch)
		return s
	case ResetWordForm:
		s.WordForm = model.InitialWordForm()
		return s
	case UpdateAIForm:
		s.AIForm = s.AIForm.Merge(a.Patch)
		return s
	case ResetAIForm:
		s.AIForm = model.InitialAIForm()
		return s

	case VocabSaveStart:
		s.Saving = true
		return s
	case VocabSaveEnd:
		s.Saving = false
		return s
	case AIStart:
		s.AILoading = true
		return s
	case AIEnd:
		s.AILoading = false
		return s

	case AddWordSuccess:
		// 対象リストに1語追記。他のリストも words スライスだけは
		// 付け替える (内容は同一) ので、呼び出し側が古い参照を
		// 握りつづけても以後の遷移の影響を受けない。
		s.Lists = lo.Map(s.Lists, func(l model.VocabularyList, _ int) model.VocabularyList {
			words := slices.Clone(l.Words)
			if l.ListID == a.ListID {
				words = append(words, a.Word)
				l.Counts.Words++
			}
			l.Words = words
			return l
		})
		return s

	case UpdateWordProgress:
		s.Lists = mapWords(s.Lists, func(w model.Word) model.Word {
			if w.WordID != a.WordID {
				return w
			}
			w.Progress = optimisticProgress(w, a)
			return w
		})
		return s

	case ApplyQuizOutcome:
		byWord := make(map[uuid.UUID]bool, len(a.Outcomes))
		for _, o := range a.Outcomes {
			byWord[o.WordID] = o.IsCorrect
		}
		s.Lists = mapWords(s.Lists, func(w model.Word) model.Word {
			correct, ok := byWord[w.WordID]
			if !ok {
				return w
			}
			w.Progress = reviewedProgress(w, correct, a.Now)
			return w
		})
		return s
	}
	return s
}

// mapWords は全リストの全単語に fn を適用した新しいリスト群を返します (非破壊)
func mapWords(lists []model.VocabularyList, fn func(model.Word) model.Word) []model.VocabularyList {
	return lo.Map(lists, func(l model.VocabularyList, _ int) model.VocabularyList {
		l.Words = lo.Map(l.Words, func(w model.Word, _ int) model.Word {
			return fn(w)
		})
		return l
	})
}

// optimisticProgress は progress を楽観値で書き換えた新しいオブジェクトを返します。
// ローカルで未知のフィールドはプレースホルダで埋める: progress 未取得の単語には
// 採番済みIDを与え、次回復習日時は now + 7*習熟度 日で計算する。
func optimisticProgress(w model.Word, a UpdateWordProgress) *model.WordProgress {
	var p model.WordProgress
	if w.Progress != nil {
		p = *w.Progress
	} else {
		p = model.WordProgress{ProgressID: a.ProgressID, WordID: w.WordID}
	}
	p.Status = a.Status
	p.Mastery = a.Mastery
	last := a.Now
	p.LastReview = &last
	next := a.Now.Add(time.Duration(float64(7*24*time.Hour) * a.Mastery))
	p.NextReview = &next
	return &p
}

// reviewedProgress はクイズ1問ぶんの復習簿記を反映した新しい progress を返します。
// mastery と mastered ステータスは触らない。未着手の単語だけ learning へ進める。
func reviewedProgress(w model.Word, correct bool, now time.Time) *model.WordProgress {
	var p model.WordProgress
	if w.Progress != nil {
		p = *w.Progress
	} else {
		p = model.WordProgress{WordID: w.WordID, Status: model.StatusNotStarted}
	}
	if p.Status == model.StatusNotStarted || p.Status == "" {
		p.Status = model.StatusLearning
	}
	p.ReviewCount++
	if correct {
		p.Streak++
	} else {
		p.Streak = 0
	}
	last := now
	p.LastReview = &last
	return &p
}
