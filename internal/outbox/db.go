// internal/outbox/db.go
package outbox

import (
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vocab_learn_client/internal/model"
)

// NewDB は送信待ちコマンドを永続化するローカルSQLiteを開きます。
// path に ":memory:" を渡すとテスト用のインメモリDBになる。
func NewDB(path string, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: finalGormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to open outbox database", slog.Any("error", err), slog.String("path", path))
		return nil, err
	}

	if err := db.AutoMigrate(&model.ProgressCommand{}); err != nil {
		appLogger.Error("Failed to migrate outbox schema", slog.Any("error", err))
		return nil, err
	}

	appLogger.Info("Outbox database ready", slog.String("path", path))
	return db, nil
}
