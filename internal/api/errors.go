// internal/api/errors.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vocab_learn_client/internal/model"
)

// errorBodyLimit はエラーレスポンス本文の読み取り上限。巨大な本文で詰まらないための保険。
const errorBodyLimit = 64 << 10

// sentinelForStatus はHTTPステータスをアプリケーションのエラー体系へ写します
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return model.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.ErrForbidden
	case http.StatusNotFound:
		return model.ErrNotFound
	case http.StatusConflict:
		return model.ErrConflict
	default:
		return model.ErrInternalServer
	}
}

// decodeAPIError は非2xxレスポンスを AppError に変換します。
// メッセージの採用順: 構造化エラーの message → トップレベルの message →
// ステータス行の文言 → 最後のフォールバック文字列。
func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error   model.ErrorDetail `json:"error"`
		Message string            `json:"message"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	_ = json.Unmarshal(body, &payload) // 形状不明の本文は黙って捨てる

	message := payload.Error.Message
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = model.FallbackErrorMessage
	}

	code := payload.Error.Code
	if code == "" {
		code = http.StatusText(resp.StatusCode)
	}

	return model.NewAppError(code, message, payload.Error.Field, sentinelForStatus(resp.StatusCode))
}

// wrapTransportError は送信そのものの失敗を分類します。
// コンテキストのキャンセルは失敗ではなく中断として ErrCancelled を返す。
func wrapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return model.ErrCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewAppError("TIMEOUT", "Request timed out", "", model.ErrInternalServer)
	}
	return model.NewAppError("NETWORK_ERROR", err.Error(), "", model.ErrInternalServer)
}
