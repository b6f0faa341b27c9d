// internal/api/transport.go
package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true, // リクエストヘッダー
	"set-cookie":    true, // レスポンスヘッダー
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// LoggingTransport は送信するリクエスト/レスポンスのログ出力を一元管理する RoundTripper です。
type LoggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport はログ付きトランスポートを生成します。
// next に nil を渡すと http.DefaultTransport が使われます。
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingTransport{next: next, logger: logger}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	t.logger.Debug("Request started",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)
	if t.logger.Enabled(req.Context(), slog.LevelDebug) {
		t.logger.Debug("Request detail",
			slog.Any("headers", formatHeaders(req.Header)),
		)
	}

	resp, err := t.next.RoundTrip(req)
	latency := time.Since(startTime)

	if err != nil {
		t.logger.Error("Request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Float64("latency_ms", float64(latency.Nanoseconds())/1e6),
			slog.Any("error", err),
		)
		return nil, err
	}

	// レベルを選択 (5xxエラーはError、4xxはWarn、それ以外はInfo)
	logLevel := slog.LevelInfo
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "Request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Float64("latency_ms", float64(latency.Nanoseconds())/1e6),
	)
	if t.logger.Enabled(req.Context(), slog.LevelDebug) {
		t.logger.Debug("Response detail",
			slog.Int("status", resp.StatusCode),
			slog.Any("headers", formatHeaders(resp.Header)),
		)
	}

	return resp, nil
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		if sensitiveHeaders[lowerKey] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}
