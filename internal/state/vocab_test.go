// internal/state/vocab_test.go
package state

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_learn_client/internal/model"
)

func newTestWord(listID uuid.UUID, term string) model.Word {
	return model.Word{
		WordID:      uuid.New(),
		ListID:      listID,
		Term:        term,
		Translation: term + "の訳",
		Difficulty:  model.DifficultyMedium,
	}
}

func newTestList(name string, wordCount int) model.VocabularyList {
	l := model.VocabularyList{
		ListID:         uuid.New(),
		Name:           name,
		TargetLanguage: "en",
		NativeLanguage: "ja",
	}
	for i := 0; i < wordCount; i++ {
		l.Words = append(l.Words, newTestWord(l.ListID, name+"-word"))
	}
	l.Counts.Words = wordCount
	return l
}

func TestReduceVocab_Fetch(t *testing.T) {
	lists := []model.VocabularyList{newTestList("A", 1), newTestList("B", 2)}

	t.Run("正常系: FetchStart は error を消すが lists は残す", func(t *testing.T) {
		s := InitialVocabState()
		s.Lists = lists
		s.Error = "boom"

		got := ReduceVocab(s, VocabFetchStart{})

		assert.True(t, got.Loading)
		assert.Empty(t, got.Error)
		assert.Equal(t, lists, got.Lists) // 再取得中も古いデータを出し続ける
	})

	t.Run("正常系: FetchSuccess は lists を丸ごと差し替える", func(t *testing.T) {
		s := InitialVocabState()
		s.Loading = true
		next := []model.VocabularyList{newTestList("C", 0)}

		got := ReduceVocab(s, VocabFetchSuccess{Lists: next, Page: 2, HasMore: true})

		assert.False(t, got.Loading)
		assert.Equal(t, next, got.Lists)
		assert.Equal(t, 2, got.Page)
		assert.True(t, got.HasMore)
	})

	t.Run("正常系: FetchError は lists をロールバックしない", func(t *testing.T) {
		s := InitialVocabState()
		s.Lists = lists
		s.Loading = true

		got := ReduceVocab(s, VocabFetchError{Message: "Network Error"})

		assert.False(t, got.Loading)
		assert.Equal(t, "Network Error", got.Error)
		assert.Equal(t, lists, got.Lists)
	})

	t.Run("正常系: 保存中フラグは FetchStart の影響を受けない", func(t *testing.T) {
		s := InitialVocabState()
		s.Saving = true

		got := ReduceVocab(s, VocabFetchStart{})

		assert.True(t, got.Saving)
		assert.True(t, got.Loading)
	})
}

func TestHasMorePages(t *testing.T) {
	testCases := []struct {
		name     string
		returned int
		page     int
		pageSize int
		want     bool
	}{
		{name: "1ページ目が満杯 (20/20) なら続きあり", returned: 20, page: 1, pageSize: 20, want: true},
		{name: "1ページ目が19件なら打ち止め", returned: 19, page: 1, pageSize: 20, want: false},
		{name: "2ページ目で累計40件なら続きあり", returned: 40, page: 2, pageSize: 20, want: true},
		{name: "2ページ目で累計39件なら打ち止め", returned: 39, page: 2, pageSize: 20, want: false},
		{name: "0件は常に打ち止め", returned: 0, page: 1, pageSize: 20, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasMorePages(tc.returned, tc.page, tc.pageSize))
		})
	}
}

func TestReduceVocab_FormMerge(t *testing.T) {
	t.Run("正常系: マージ列の結果はペイロードを順に浅マージした値と一致する", func(t *testing.T) {
		s := InitialVocabState()

		name1 := "Travel"
		desc := "旅行で使う単語"
		name2 := "Travel English"

		s = ReduceVocab(s, UpdateListForm{Patch: model.ListFormPatch{Name: &name1}})
		s = ReduceVocab(s, UpdateListForm{Patch: model.ListFormPatch{Description: &desc}})
		s = ReduceVocab(s, UpdateListForm{Patch: model.ListFormPatch{Name: &name2}})

		want := model.InitialListForm().
			Merge(model.ListFormPatch{Name: &name1}).
			Merge(model.ListFormPatch{Description: &desc}).
			Merge(model.ListFormPatch{Name: &name2})
		assert.Equal(t, want, s.ListForm)
		assert.Equal(t, "Travel English", s.ListForm.Name)
		assert.Equal(t, "旅行で使う単語", s.ListForm.Description)
	})

	t.Run("正常系: リセットは事前のマージ内容に関わらず初期値そのもの", func(t *testing.T) {
		s := InitialVocabState()
		topic := "cooking"
		count := 30
		s = ReduceVocab(s, UpdateAIForm{Patch: model.AIFormPatch{Topic: &topic, WordCount: &count}})
		s = ReduceVocab(s, ResetAIForm{})
		assert.Equal(t, model.InitialAIForm(), s.AIForm)

		term := "apple"
		s = ReduceVocab(s, UpdateWordForm{Patch: model.WordFormPatch{Term: &term}})
		s = ReduceVocab(s, ResetWordForm{})
		assert.Equal(t, model.InitialWordForm(), s.WordForm)

		name := "X"
		s = ReduceVocab(s, UpdateListForm{Patch: model.ListFormPatch{Name: &name}})
		s = ReduceVocab(s, ResetListForm{})
		assert.Equal(t, model.InitialListForm(), s.ListForm)
	})
}

func TestReduceVocab_Modals(t *testing.T) {
	s := InitialVocabState()
	listID := uuid.New()

	s = ReduceVocab(s, OpenWordModal{ListID: listID})
	require.NotNil(t, s.WordModalListID)
	assert.Equal(t, listID, *s.WordModalListID) // 追加先のリストIDを保持する

	// 開くアクションは冪等
	s = ReduceVocab(s, OpenListModal{})
	s = ReduceVocab(s, OpenListModal{})
	assert.True(t, s.ShowListModal)

	s = ReduceVocab(s, CloseWordModal{})
	assert.Nil(t, s.WordModalListID)
	s = ReduceVocab(s, CloseListModal{})
	assert.False(t, s.ShowListModal)
}

func TestReduceVocab_AddWordSuccess(t *testing.T) {
	target := newTestList("Target", 2)
	other := newTestList("Other", 3)
	s := InitialVocabState()
	s.Lists = []model.VocabularyList{target, other}

	added := newTestWord(target.ListID, "new")
	got := ReduceVocab(s, AddWordSuccess{ListID: target.ListID, Word: added})

	// 対象リストはちょうど1語増える
	require.Len(t, got.Lists[0].Words, 3)
	assert.Equal(t, added.WordID, got.Lists[0].Words[2].WordID)
	assert.Equal(t, 3, got.Lists[0].Counts.Words)
	assert.Equal(t, 3, got.Lists[0].WordCount())

	// 他のリストは内容同一のまま、words スライスの実体は別物になる
	assert.Equal(t, other.Words, got.Lists[1].Words)
	assert.Equal(t, 3, got.Lists[1].Counts.Words)
	assert.NotSame(t, &other.Words[0], &got.Lists[1].Words[0])

	// 元の状態は破壊されない
	assert.Len(t, s.Lists[0].Words, 2)
	assert.Equal(t, 2, s.Lists[0].Counts.Words)
}

func TestReduceVocab_AddWordSuccess_UnloadedWords(t *testing.T) {
	// words 未読み込み (nil) のリストに追加しても表示件数が壊れない
	target := model.VocabularyList{ListID: uuid.New(), Name: "Lazy", Counts: model.ListCounts{Words: 5}}
	s := InitialVocabState()
	s.Lists = []model.VocabularyList{target}

	got := ReduceVocab(s, AddWordSuccess{ListID: target.ListID, Word: newTestWord(target.ListID, "w")})

	assert.Equal(t, 6, got.Lists[0].Counts.Words)
	assert.Len(t, got.Lists[0].Words, 1)
}

func TestReduceVocab_UpdateWordProgress(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	progressID := uuid.New()

	t.Run("正常系: 全リストを走査して一致する単語の progress を書き換える", func(t *testing.T) {
		listA := newTestList("A", 2)
		listB := newTestList("B", 1)
		// 同じ単語が複数リストに現れるケース
		shared := listA.Words[0]
		listB.Words = append(listB.Words, shared)

		s := InitialVocabState()
		s.Lists = []model.VocabularyList{listA, listB}

		got := ReduceVocab(s, UpdateWordProgress{
			WordID:     shared.WordID,
			Status:     model.StatusMastered,
			Mastery:    1.0,
			ProgressID: progressID,
			Now:        now,
		})

		for _, l := range got.Lists {
			for _, w := range l.Words {
				if w.WordID != shared.WordID {
					continue
				}
				require.NotNil(t, w.Progress)
				assert.Equal(t, model.StatusMastered, w.Progress.Status)
				assert.Equal(t, 1.0, w.Progress.Mastery)
				assert.Equal(t, progressID, w.Progress.ProgressID)
				require.NotNil(t, w.Progress.LastReview)
				assert.Equal(t, now, *w.Progress.LastReview)
				require.NotNil(t, w.Progress.NextReview)
				assert.Equal(t, now.Add(7*24*time.Hour), *w.Progress.NextReview) // now + 7*1.0 日
			}
		}
	})

	t.Run("正常系: 一致しない単語はバイト単位で不変", func(t *testing.T) {
		listA := newTestList("A", 3)
		s := InitialVocabState()
		s.Lists = []model.VocabularyList{listA}
		targetID := listA.Words[1].WordID

		got := ReduceVocab(s, UpdateWordProgress{
			WordID: targetID, Status: model.StatusLearning, Mastery: 0, ProgressID: progressID, Now: now,
		})

		assert.Equal(t, listA.Words[0], got.Lists[0].Words[0])
		assert.Equal(t, listA.Words[2], got.Lists[0].Words[2])
	})

	t.Run("正常系: 既存 progress の復習回数と連続正解は保存される", func(t *testing.T) {
		listA := newTestList("A", 1)
		existing := &model.WordProgress{
			ProgressID:  uuid.New(),
			WordID:      listA.Words[0].WordID,
			Status:      model.StatusLearning,
			Mastery:     0.4,
			ReviewCount: 9,
			Streak:      3,
		}
		listA.Words[0].Progress = existing

		s := InitialVocabState()
		s.Lists = []model.VocabularyList{listA}

		got := ReduceVocab(s, UpdateWordProgress{
			WordID: listA.Words[0].WordID, Status: model.StatusMastered, Mastery: 1.0,
			ProgressID: progressID, Now: now,
		})

		p := got.Lists[0].Words[0].Progress
		require.NotNil(t, p)
		assert.Equal(t, existing.ProgressID, p.ProgressID) // 採番済みIDは温存
		assert.Equal(t, 9, p.ReviewCount)
		assert.Equal(t, 3, p.Streak)
		assert.Equal(t, 1.0, p.Mastery)

		// 元の progress オブジェクトは書き換えられていない
		assert.Equal(t, model.StatusLearning, existing.Status)
		assert.Equal(t, 0.4, existing.Mastery)
	})

	t.Run("正常系: 習熟度0なら次回復習は即時", func(t *testing.T) {
		listA := newTestList("A", 1)
		s := InitialVocabState()
		s.Lists = []model.VocabularyList{listA}

		got := ReduceVocab(s, UpdateWordProgress{
			WordID: listA.Words[0].WordID, Status: model.StatusLearning, Mastery: 0,
			ProgressID: progressID, Now: now,
		})

		p := got.Lists[0].Words[0].Progress
		require.NotNil(t, p)
		require.NotNil(t, p.NextReview)
		assert.Equal(t, now, *p.NextReview)
	})
}

func TestReduceVocab_ApplyQuizOutcome(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	list := newTestList("Quizzed", 3)

	mastered := &model.WordProgress{
		WordID: list.Words[0].WordID, Status: model.StatusMastered, Mastery: 1.0,
		ReviewCount: 5, Streak: 5,
	}
	learning := &model.WordProgress{
		WordID: list.Words[1].WordID, Status: model.StatusLearning, Mastery: 0.5,
		ReviewCount: 2, Streak: 2,
	}
	list.Words[0].Progress = mastered
	list.Words[1].Progress = learning
	// Words[2] は progress なし (未着手)

	s := InitialVocabState()
	s.Lists = []model.VocabularyList{list}

	got := ReduceVocab(s, ApplyQuizOutcome{
		Now: now,
		Outcomes: []WordOutcome{
			{WordID: list.Words[0].WordID, IsCorrect: true},
			{WordID: list.Words[1].WordID, IsCorrect: false},
			{WordID: list.Words[2].WordID, IsCorrect: true},
		},
	})

	w0 := got.Lists[0].Words[0].Progress
	require.NotNil(t, w0)
	assert.Equal(t, model.StatusMastered, w0.Status) // mastered は降格しない
	assert.Equal(t, 1.0, w0.Mastery)                 // 習熟度は触らない
	assert.Equal(t, 6, w0.ReviewCount)
	assert.Equal(t, 6, w0.Streak)

	w1 := got.Lists[0].Words[1].Progress
	require.NotNil(t, w1)
	assert.Equal(t, model.StatusLearning, w1.Status)
	assert.Equal(t, 0.5, w1.Mastery)
	assert.Equal(t, 3, w1.ReviewCount)
	assert.Equal(t, 0, w1.Streak) // 不正解で連続正解はリセット

	w2 := got.Lists[0].Words[2].Progress
	require.NotNil(t, w2)
	assert.Equal(t, model.StatusLearning, w2.Status) // 未着手 → learning
	assert.Equal(t, 0.0, w2.Mastery)
	assert.Equal(t, 1, w2.ReviewCount)
	assert.Equal(t, 1, w2.Streak)
	require.NotNil(t, w2.LastReview)
	assert.Equal(t, now, *w2.LastReview)

	// 元の progress は不変
	assert.Equal(t, 5, mastered.ReviewCount)
	assert.Equal(t, 2, learning.ReviewCount)
}
