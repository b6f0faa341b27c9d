// internal/importer/importer.go
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

// WordCreator は取り込んだ単語の送信先
type WordCreator interface {
	CreateWord(ctx context.Context, listID uuid.UUID, form model.WordForm) (*model.Word, error)
}

// Config は取り込み元ファイルの列割り当て
type Config struct {
	TermColumn         string // 単語の列
	TranslationColumn  string // 訳の列
	PartOfSpeechColumn string // 品詞の列 (空欄可)
	DifficultyColumn   string // 難易度の列 (空欄は medium)
	SheetName          string // Excel のシート名
	StartRow           int    // 取り込み開始行 (1始まり)。既定はヘッダを飛ばして2行目
}

func DefaultConfig() Config {
	return Config{
		TermColumn:         "A",
		TranslationColumn:  "B",
		PartOfSpeechColumn: "C",
		DifficultyColumn:   "D",
		SheetName:          "Sheet1",
		StartRow:           2,
	}
}

// Result は1回の取り込みの集計。行単位の失敗は Errors に残して先へ進む。
type Result struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// Importer はファイルから単語を読み取り、リストへ1語ずつ送信します
type Importer struct {
	creator WordCreator
	logger  *slog.Logger
}

func New(creator WordCreator, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{creator: creator, logger: logger}
}

// ImportFile は拡張子で形式を判別して取り込みます。対応するのは .xlsx と .csv。
// 行単位の失敗 (検証エラー・送信エラー) は集計に積んで続行し、
// コンテキストの中断だけが取り込み全体を止める。
func (im *Importer) ImportFile(ctx context.Context, listID uuid.UUID, path string, cfg Config) (*Result, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readExcelRows(path, cfg.SheetName)
	default:
		return nil, model.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("unsupported import format %q", filepath.Ext(path)), "", model.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: make([]string, 0)}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		if isBlankRow(row) {
			continue
		}
		result.TotalProcessed++

		form, err := formFromRow(row, cfg)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if _, err := im.creator.CreateWord(ctx, listID, form); err != nil {
			if errors.Is(err, model.ErrCancelled) {
				// 中断は行エラーではなく取り込み全体の打ち切り
				return result, err
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	im.logger.Info("Word import finished",
		slog.String("file", filepath.Base(path)),
		slog.String("list_id", listID.String()),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excelize.GetRows: %w", err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // 行ごとの列数ゆらぎを許す
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv.Read: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// formFromRow は1行をフォームへ写して検証します
func formFromRow(row []string, cfg Config) (model.WordForm, error) {
	form := model.InitialWordForm()
	form.Term = cellAt(row, cfg.TermColumn)
	form.Translation = cellAt(row, cfg.TranslationColumn)
	form.PartOfSpeech = cellAt(row, cfg.PartOfSpeechColumn)

	if raw := cellAt(row, cfg.DifficultyColumn); raw != "" {
		d, err := model.ParseDifficulty(strings.ToLower(raw))
		if err != nil {
			return model.WordForm{}, err
		}
		form.Difficulty = string(d)
	}

	if err := webutil.Validator.Struct(form); err != nil {
		return model.WordForm{}, fmt.Errorf("invalid row: %w", err)
	}
	return form, nil
}

func cellAt(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnIndex は "A"→0, "B"→1, ... "AA"→26 の変換
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	idx := 0
	for i := 0; i < len(column); i++ {
		c := column[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		idx = idx*26 + int(c-'A'+1)
	}
	return idx - 1
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
