// internal/service/quiz_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"vocab_learn_client/internal/api/mocks"
	"vocab_learn_client/internal/model"
	servicemocks "vocab_learn_client/internal/service/mocks"
	"vocab_learn_client/internal/state"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quizFixture はクイズ画面用のストアとモックの組み立て。
// 採点結果の流し込み先として一覧画面のストアも持つ。
type quizFixture struct {
	api        *mocks.QuizAPI
	alerter    *servicemocks.Alerter
	store      *state.QuizStore
	vocabStore *state.VocabStore
	svc        QuizService
}

func newQuizFixture() *quizFixture {
	logger := newTestLogger()
	apiMock := new(mocks.QuizAPI)
	alerter := new(servicemocks.Alerter)
	store := state.NewQuizStore(logger)
	vocabStore := state.NewVocabStore(logger)
	svc := NewQuizService(apiMock, store, vocabStore, alerter, logger)
	return &quizFixture{api: apiMock, alerter: alerter, store: store, vocabStore: vocabStore, svc: svc}
}

// testQuizFor は単語に1問ずつ対応する多肢選択クイズを組み立てます
func testQuizFor(words ...model.Word) model.Quiz {
	quizID := uuid.New()
	questions := make([]model.QuizQuestion, 0, len(words))
	for _, w := range words {
		wordID := w.WordID
		questions = append(questions, model.QuizQuestion{
			QuestionID:    uuid.New(),
			QuizID:        quizID,
			Type:          model.QuestionMultipleChoice,
			Prompt:        w.Term,
			Options:       model.OptionList{w.Translation, "decoy A", "decoy B"},
			CorrectAnswer: w.Translation,
			WordID:        &wordID,
		})
	}
	return model.Quiz{QuizID: quizID, ListID: uuid.New(), Title: "review quiz", Questions: questions}
}

// --- Test FetchQuizzes ---

func Test_quizService_FetchQuizzes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(apiMock *mocks.QuizAPI)
		wantErr   error
		check     func(t *testing.T, st state.QuizState)
	}{
		{
			name: "正常系: 一覧が載る",
			setupMock: func(apiMock *mocks.QuizAPI) {
				apiMock.On("ListQuizzes", mock.Anything).
					Return([]model.Quiz{{QuizID: uuid.New(), Title: "quiz A"}}, nil).Once()
			},
			check: func(t *testing.T, st state.QuizState) {
				require.Len(t, st.Quizzes, 1)
				assert.Equal(t, "quiz A", st.Quizzes[0].Title)
				assert.False(t, st.Loading)
				assert.Empty(t, st.Error)
			},
		},
		{
			name: "異常系: 取得失敗は error に積む",
			setupMock: func(apiMock *mocks.QuizAPI) {
				apiMock.On("ListQuizzes", mock.Anything).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Quizzes unavailable", "", model.ErrInternalServer)).Once()
			},
			wantErr: model.ErrInternalServer,
			check: func(t *testing.T, st state.QuizState) {
				assert.Equal(t, "Quizzes unavailable", st.Error)
				assert.False(t, st.Loading)
			},
		},
		{
			name: "正常系: 中断は成功も失敗も配信しない",
			setupMock: func(apiMock *mocks.QuizAPI) {
				apiMock.On("ListQuizzes", mock.Anything).Return(nil, model.ErrCancelled).Once()
			},
			wantErr: model.ErrCancelled,
			check: func(t *testing.T, st state.QuizState) {
				assert.Empty(t, st.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuizFixture()
			tt.setupMock(f.api)

			err := f.svc.FetchQuizzes(ctx)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			tt.check(t, f.store.State())
			f.api.AssertExpectations(t)
		})
	}
}

// --- Test StartQuiz ---

func Test_quizService_StartQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 読み込みで回答バッファと前回の結果が消える", func(t *testing.T) {
		f := newQuizFixture()
		// 前回のクイズの残骸を積んでおく
		prev := testQuizFor(testWord(uuid.New(), "old", model.StatusLearning))
		f.store.Dispatch(state.QuizLoaded{Quiz: prev})
		f.store.Dispatch(state.SelectAnswer{QuestionID: prev.Questions[0].QuestionID, Answer: "stale"})

		quiz := testQuizFor(testWord(uuid.New(), "fresh", model.StatusLearning))
		f.api.On("GetQuiz", mock.Anything, quiz.QuizID).Return(&quiz, nil).Once()

		require.NoError(t, f.svc.StartQuiz(ctx, quiz.QuizID))

		st := f.store.State()
		require.NotNil(t, st.Active)
		assert.Equal(t, quiz.QuizID, st.Active.QuizID)
		assert.Empty(t, st.Answers)
		assert.Nil(t, st.Attempt)
		assert.Nil(t, st.Review)
		assert.False(t, st.Loading)
		f.api.AssertExpectations(t)
	})

	t.Run("異常系: 読み込み失敗は error に積む", func(t *testing.T) {
		f := newQuizFixture()
		quizID := uuid.New()
		f.api.On("GetQuiz", mock.Anything, quizID).
			Return(nil, model.NewAppError("NOT_FOUND", "Quiz not found", "", model.ErrNotFound)).Once()

		err := f.svc.StartQuiz(ctx, quizID)

		require.ErrorIs(t, err, model.ErrNotFound)
		st := f.store.State()
		assert.Equal(t, "Quiz not found", st.Error)
		assert.Nil(t, st.Active)
	})
}

// --- Test GenerateQuiz ---

func Test_quizService_GenerateQuiz(t *testing.T) {
	ctx := context.Background()
	listID := uuid.New()

	t.Run("正常系: 生成されたクイズがそのまま始まる", func(t *testing.T) {
		f := newQuizFixture()
		quiz := testQuizFor(testWord(listID, "passport", model.StatusLearning))
		f.api.On("GenerateQuiz", mock.Anything, model.GenerateQuizRequest{ListID: listID, QuestionCount: 5}).
			Return(&quiz, nil).Once()

		require.NoError(t, f.svc.GenerateQuiz(ctx, listID, 5))

		st := f.store.State()
		require.NotNil(t, st.Active)
		assert.Equal(t, quiz.QuizID, st.Active.QuizID)
		f.api.AssertExpectations(t)
	})

	t.Run("異常系: 問題数 0 はAPIを呼ばずに弾く", func(t *testing.T) {
		f := newQuizFixture()
		f.alerter.On("Alert", mock.Anything, mock.Anything).Return().Once()

		err := f.svc.GenerateQuiz(ctx, listID, 0)

		require.ErrorIs(t, err, model.ErrInvalidInput)
		f.api.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything)
		f.alerter.AssertExpectations(t)
	})
}

// --- Test SubmitQuiz ---

func Test_quizService_SubmitQuiz(t *testing.T) {
	ctx := context.Background()

	// seedQuiz は単語3つ (うち1問は単語に紐づかない) のクイズを開始済みにします
	seedQuiz := func(f *quizFixture) (model.Quiz, model.Word, model.Word) {
		list := testList("Travel")
		correctWord := testWord(list.ListID, "passport", model.StatusLearning)
		wrongWord := testWord(list.ListID, "customs", model.StatusLearning)
		list.Words = []model.Word{correctWord, wrongWord}
		f.vocabStore.Dispatch(state.VocabFetchSuccess{Lists: []model.VocabularyList{list}, Page: 1, HasMore: false})

		quiz := testQuizFor(correctWord, wrongWord)
		// 単語に紐づかない設問 (文法問題など) を混ぜる
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			QuestionID:    uuid.New(),
			QuizID:        quiz.QuizID,
			Type:          model.QuestionTextInput,
			Prompt:        "fill in the blank",
			CorrectAnswer: "at",
		})
		f.store.Dispatch(state.QuizLoaded{Quiz: quiz})
		return quiz, correctWord, wrongWord
	}

	t.Run("正常系: 採点結果が載り復習簿記が一覧へ流れる", func(t *testing.T) {
		f := newQuizFixture()
		quiz, correctWord, wrongWord := seedQuiz(f)

		f.store.Dispatch(state.SelectAnswer{QuestionID: quiz.Questions[0].QuestionID, Answer: correctWord.Translation})
		f.store.Dispatch(state.SelectAnswer{QuestionID: quiz.Questions[1].QuestionID, Answer: "wrong guess"})
		f.store.Dispatch(state.SelectAnswer{QuestionID: quiz.Questions[2].QuestionID, Answer: "at"})

		attempt := model.QuizAttempt{
			AttemptID:      uuid.New(),
			QuizID:         quiz.QuizID,
			Score:          2.0 / 3.0,
			CorrectAnswers: 2,
			TotalQuestions: 3,
			Answers: []model.AttemptAnswer{
				{QuestionID: quiz.Questions[0].QuestionID, Answer: correctWord.Translation, IsCorrect: true},
				{QuestionID: quiz.Questions[1].QuestionID, Answer: "wrong guess", IsCorrect: false},
				{QuestionID: quiz.Questions[2].QuestionID, Answer: "at", IsCorrect: true},
			},
			CompletedAt: time.Now(),
		}
		f.api.On("SubmitQuiz", mock.Anything, quiz.QuizID, mock.MatchedBy(func(req model.SubmitQuizRequest) bool {
			// 回答は設問順で3件そろっている
			return len(req.Answers) == 3 && req.Answers[0].QuestionID == quiz.Questions[0].QuestionID
		})).Return(&attempt, nil).Once()

		require.NoError(t, f.svc.SubmitQuiz(ctx))

		st := f.store.State()
		require.NotNil(t, st.Attempt)
		assert.Equal(t, 2, st.Attempt.CorrectAnswers)
		require.Len(t, st.Review, 3)
		assert.True(t, st.Review[0].Answered)
		assert.Equal(t, quiz.Questions[0].QuestionID, st.Review[0].Question.QuestionID)
		assert.False(t, st.Submitting)
		assert.Empty(t, st.Error)

		// 単語に紐づく2問だけが一覧の復習簿記へ反映される
		vocab := f.vocabStore.State()
		require.Len(t, vocab.Lists, 1)
		byID := map[uuid.UUID]model.Word{}
		for _, w := range vocab.Lists[0].Words {
			byID[w.WordID] = w
		}
		got := byID[correctWord.WordID]
		require.NotNil(t, got.Progress)
		assert.Equal(t, 3, got.Progress.ReviewCount)
		assert.Equal(t, 2, got.Progress.Streak, "正解は連続正解を伸ばす")
		assert.NotNil(t, got.Progress.LastReview)
		assert.Equal(t, model.StatusLearning, got.Progress.Status, "採点では習熟ステータスを動かさない")

		got = byID[wrongWord.WordID]
		require.NotNil(t, got.Progress)
		assert.Equal(t, 3, got.Progress.ReviewCount)
		assert.Equal(t, 0, got.Progress.Streak, "誤答は連続正解を折る")

		f.api.AssertExpectations(t)
	})

	t.Run("異常系: 送信失敗は回答を保持して通知する", func(t *testing.T) {
		f := newQuizFixture()
		quiz, correctWord, _ := seedQuiz(f)
		f.store.Dispatch(state.SelectAnswer{QuestionID: quiz.Questions[0].QuestionID, Answer: correctWord.Translation})

		f.api.On("SubmitQuiz", mock.Anything, quiz.QuizID, mock.Anything).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Scoring failed", "", model.ErrInternalServer)).Once()
		f.alerter.On("Alert", mock.Anything, "Scoring failed").Return().Once()

		err := f.svc.SubmitQuiz(ctx)

		require.ErrorIs(t, err, model.ErrInternalServer)
		st := f.store.State()
		assert.Equal(t, "Scoring failed", st.Error)
		assert.Nil(t, st.Attempt)
		assert.Len(t, st.Answers, 1, "やり直せるように回答は残す")
		assert.False(t, st.Submitting)
		f.alerter.AssertExpectations(t)
	})

	t.Run("正常系: 中断はエラー表示なしで送信可否だけ戻す", func(t *testing.T) {
		f := newQuizFixture()
		quiz, correctWord, _ := seedQuiz(f)
		f.store.Dispatch(state.SelectAnswer{QuestionID: quiz.Questions[0].QuestionID, Answer: correctWord.Translation})

		f.api.On("SubmitQuiz", mock.Anything, quiz.QuizID, mock.Anything).
			Return(nil, model.ErrCancelled).Once()

		err := f.svc.SubmitQuiz(ctx)

		require.ErrorIs(t, err, model.ErrCancelled)
		st := f.store.State()
		assert.Empty(t, st.Error)
		assert.False(t, st.Submitting)
		f.alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
	})

	t.Run("異常系: クイズ未開始", func(t *testing.T) {
		f := newQuizFixture()

		err := f.svc.SubmitQuiz(ctx)

		require.ErrorIs(t, err, model.ErrInvalidInput)
		f.api.AssertNotCalled(t, "SubmitQuiz", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 回答が1問もない", func(t *testing.T) {
		f := newQuizFixture()
		seedQuiz(f)
		f.alerter.On("Alert", mock.Anything, mock.Anything).Return().Once()

		err := f.svc.SubmitQuiz(ctx)

		require.ErrorIs(t, err, model.ErrInvalidInput)
		f.api.AssertNotCalled(t, "SubmitQuiz", mock.Anything, mock.Anything, mock.Anything)
		f.alerter.AssertExpectations(t)
	})
}
