// internal/outbox/outbox_test.go
package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vocab_learn_client/internal/model"
)

// テスト用ロガーの作成 (出力を捨てる)
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	if err := db.AutoMigrate(&model.ProgressCommand{}); err != nil {
		panic("failed to migrate database for testing: " + err.Error())
	}
	// cache=shared はプロセス内で共有されるのでテストごとに空にする
	db.Exec("DELETE FROM progress_commands")
	return db
}

// --- ProgressSender のモック ---
type MockProgressSender struct {
	mock.Mock
}

func (m *MockProgressSender) UpdateProgress(ctx context.Context, wordID uuid.UUID, req model.UpdateProgressRequest) (*model.WordProgress, error) {
	args := m.Called(ctx, wordID, req)
	var progress *model.WordProgress
	if args.Get(0) != nil {
		progress = args.Get(0).(*model.WordProgress)
	}
	return progress, args.Error(1)
}

func TestGormOutbox_EnqueueCollapsesDuplicates(t *testing.T) {
	ctx := context.Background()
	ob := NewGormOutbox(setupTestDB(t))
	wordID := uuid.New()

	require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, nil))
	require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, nil))

	size, err := ob.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size) // 同じ単語・同じ目標ステータスは1行に畳む

	// 目標ステータスが違えば別のコマンド
	require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusLearning, nil))
	size, err = ob.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
}

func TestGormOutbox_PendingReturnsOldestFirst(t *testing.T) {
	ctx := context.Background()
	ob := NewGormOutbox(setupTestDB(t))
	first, second := uuid.New(), uuid.New()

	require.NoError(t, ob.Enqueue(ctx, first, model.StatusMastered, nil))
	time.Sleep(5 * time.Millisecond) // enqueued_at に差をつける
	require.NoError(t, ob.Enqueue(ctx, second, model.StatusMastered, nil))

	cmds, err := ob.Pending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, first, cmds[0].WordID)
	assert.Equal(t, second, cmds[1].WordID)
}

func TestGormOutbox_ReenqueueRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	ob := NewGormOutbox(setupTestDB(t))
	wordID := uuid.New()
	listID := uuid.New()

	require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, nil))
	cmds, err := ob.Pending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	firstEnqueue := cmds[0].EnqueuedAt

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, &listID))

	cmds, err = ob.Pending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].EnqueuedAt.After(firstEnqueue))
	require.NotNil(t, cmds[0].ListID)
	assert.Equal(t, listID, *cmds[0].ListID)
}

func TestFlusher_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 成功は取り除き、失敗は残して先へ進む", func(t *testing.T) {
		ob := NewGormOutbox(setupTestDB(t))
		okWord, ngWord := uuid.New(), uuid.New()
		require.NoError(t, ob.Enqueue(ctx, okWord, model.StatusMastered, nil))
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, ob.Enqueue(ctx, ngWord, model.StatusLearning, nil))

		sender := new(MockProgressSender)
		sender.On("UpdateProgress", mock.Anything, okWord, mock.AnythingOfType("model.UpdateProgressRequest")).
			Return(&model.WordProgress{WordID: okWord}, nil).Once()
		sender.On("UpdateProgress", mock.Anything, ngWord, mock.AnythingOfType("model.UpdateProgressRequest")).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "boom", "", model.ErrInternalServer)).Once()

		flusher := NewFlusher(ob, sender, 0, newTestLogger())
		res, err := flusher.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Delivered)
		assert.Equal(t, 1, res.Failed)

		// 失敗したコマンドだけが残り、失敗回数と原因が記録される
		cmds, err := ob.Pending(ctx, 0)
		require.NoError(t, err)
		require.Len(t, cmds, 1)
		assert.Equal(t, ngWord, cmds[0].WordID)
		assert.Equal(t, 1, cmds[0].Attempts)
		assert.Contains(t, cmds[0].LastError, "boom")
		sender.AssertExpectations(t)
	})

	t.Run("正常系: 次のフラッシュで失敗分が再送される", func(t *testing.T) {
		ob := NewGormOutbox(setupTestDB(t))
		wordID := uuid.New()
		require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, nil))

		sender := new(MockProgressSender)
		sender.On("UpdateProgress", mock.Anything, wordID, mock.AnythingOfType("model.UpdateProgressRequest")).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "down", "", model.ErrInternalServer)).Once()
		sender.On("UpdateProgress", mock.Anything, wordID, mock.AnythingOfType("model.UpdateProgressRequest")).
			Return(&model.WordProgress{WordID: wordID}, nil).Once()

		flusher := NewFlusher(ob, sender, 0, newTestLogger())

		res, err := flusher.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)

		res, err = flusher.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Delivered)

		size, err := ob.Size(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), size)
		sender.AssertExpectations(t)
	})

	t.Run("正常系: 空の送信待ちは何もしない", func(t *testing.T) {
		ob := NewGormOutbox(setupTestDB(t))
		sender := new(MockProgressSender)

		flusher := NewFlusher(ob, sender, 0, newTestLogger())
		res, err := flusher.Flush(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.Delivered)
		assert.Zero(t, res.Failed)
		sender.AssertNotCalled(t, "UpdateProgress")
	})

	t.Run("異常系: キャンセルされた配送は中断として返る", func(t *testing.T) {
		ob := NewGormOutbox(setupTestDB(t))
		wordID := uuid.New()
		require.NoError(t, ob.Enqueue(ctx, wordID, model.StatusMastered, nil))

		sender := new(MockProgressSender)
		sender.On("UpdateProgress", mock.Anything, wordID, mock.AnythingOfType("model.UpdateProgressRequest")).
			Return(nil, model.ErrCancelled).Once()

		flusher := NewFlusher(ob, sender, 0, newTestLogger())
		_, err := flusher.Flush(ctx)
		assert.True(t, errors.Is(err, model.ErrCancelled))

		// 中断されたコマンドは失敗扱いにせず残す
		cmds, err := ob.Pending(ctx, 0)
		require.NoError(t, err)
		require.Len(t, cmds, 1)
		assert.Equal(t, 0, cmds[0].Attempts)
	})
}
