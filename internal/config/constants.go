// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-learn-client"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultPageSize               = 20
	DefaultOutboxPath             = "vocab_outbox.db"
	DefaultFlushIntervalSeconds   = 30
	DefaultSummaryIntervalSeconds = 300
	DefaultLogLevel               = "info"
)
