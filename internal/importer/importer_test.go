// internal/importer/importer_test.go
package importer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"vocab_learn_client/internal/api/mocks"
	"vocab_learn_client/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTestXLSX はヘッダ1行 + データ行のブックを作ります
func writeTestXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"word", "translation", "partOfSpeech", "difficulty"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Importer_ImportFile_XLSX(t *testing.T) {
	ctx := context.Background()
	listID := uuid.New()

	path := writeTestXLSX(t, [][]interface{}{
		{"passport", "パスポート", "noun", "easy"},
		{"missing translation", "", "", ""},
		{"boarding pass", "搭乗券", "", ""}, // 難易度空欄は medium
	})

	creator := new(mocks.VocabularyAPI)
	creator.On("CreateWord", mock.Anything, listID, mock.MatchedBy(func(form model.WordForm) bool {
		return form.Term == "passport" && form.Difficulty == "easy"
	})).Return(&model.Word{WordID: uuid.New()}, nil).Once()
	creator.On("CreateWord", mock.Anything, listID, mock.MatchedBy(func(form model.WordForm) bool {
		return form.Term == "boarding pass" && form.Difficulty == "medium"
	})).Return(&model.Word{WordID: uuid.New()}, nil).Once()

	im := New(creator, newTestLogger())
	result, err := im.ImportFile(ctx, listID, path, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3", "検証に落ちた行の行番号を残す")
	creator.AssertExpectations(t)
}

func Test_Importer_ImportFile_CSV(t *testing.T) {
	ctx := context.Background()
	listID := uuid.New()

	path := writeTestCSV(t, "word,translation,partOfSpeech,difficulty\n"+
		"passport,パスポート,noun,easy\n"+
		",,,\n"+ // 空の行は数えずに飛ばす
		"customs,税関,noun,HARD\n")

	creator := new(mocks.VocabularyAPI)
	creator.On("CreateWord", mock.Anything, listID, mock.AnythingOfType("model.WordForm")).
		Return(&model.Word{WordID: uuid.New()}, nil).Twice()

	im := New(creator, newTestLogger())
	result, err := im.ImportFile(ctx, listID, path, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
	creator.AssertExpectations(t)
}

func Test_Importer_ImportFile_RowFailuresContinue(t *testing.T) {
	ctx := context.Background()
	listID := uuid.New()

	path := writeTestCSV(t, "word,translation\n"+
		"passport,パスポート\n"+
		"customs,税関\n")

	creator := new(mocks.VocabularyAPI)
	creator.On("CreateWord", mock.Anything, listID, mock.MatchedBy(func(form model.WordForm) bool {
		return form.Term == "passport"
	})).Return(nil, model.NewAppError("DUPLICATE_WORD", "Word already exists", "", model.ErrConflict)).Once()
	creator.On("CreateWord", mock.Anything, listID, mock.MatchedBy(func(form model.WordForm) bool {
		return form.Term == "customs"
	})).Return(&model.Word{WordID: uuid.New()}, nil).Once()

	im := New(creator, newTestLogger())
	result, err := im.ImportFile(ctx, listID, path, DefaultConfig())

	require.NoError(t, err, "行単位の送信失敗では取り込み全体を止めない")
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Word already exists")
	creator.AssertExpectations(t)
}

func Test_Importer_ImportFile_Cancelled(t *testing.T) {
	ctx := context.Background()
	listID := uuid.New()

	path := writeTestCSV(t, "word,translation\n"+
		"passport,パスポート\n"+
		"customs,税関\n")

	creator := new(mocks.VocabularyAPI)
	creator.On("CreateWord", mock.Anything, listID, mock.Anything).
		Return(nil, model.ErrCancelled).Once()

	im := New(creator, newTestLogger())
	result, err := im.ImportFile(ctx, listID, path, DefaultConfig())

	require.ErrorIs(t, err, model.ErrCancelled)
	assert.Equal(t, 0, result.Created, "中断は途中までの集計を返して打ち切る")
	creator.AssertNumberOfCalls(t, "CreateWord", 1)
}

func Test_Importer_ImportFile_UnsupportedFormat(t *testing.T) {
	im := New(new(mocks.VocabularyAPI), newTestLogger())

	_, err := im.ImportFile(context.Background(), uuid.New(), "words.pdf", DefaultConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
