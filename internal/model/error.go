// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrCancelled      = errors.New("request cancelled") // ユーザー起点の中断。失敗として表示しない
)

// FallbackErrorMessage は形状不明のエラーに対する最終フォールバック文字列。
// UIにそのまま表示されるため変更しないこと。
const FallbackErrorMessage = "unknown error"

// ErrorDetail はAPIエラーレスポンスに含まれる詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はサーバが返すエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーの詳細 (コード・メッセージ・フィールド) と原因を保持するカスタムエラー
type AppError struct {
	Detail ErrorDetail
	Err    error // ラップされた原因エラー (sentinel)
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Detail.Message != "" {
		return e.Detail.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return FallbackErrorMessage
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage はユーザー向けに表示するメッセージを返します。
// 優先順位: 構造化されたメッセージ → 原因エラーの文言 → フォールバック。
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Detail.Message != "" {
		return appErr.Detail.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}
