// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"vocab_learn_client/internal/model"
)

// encodeFailureBody はレスポンスのJSON化自体に失敗したときの固定本文
const encodeFailureBody = `{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to encode response"}}`

// sentinelStatuses は番兵エラーとHTTPステータスの対応表。
// クライアント側 (internal/api) のステータス→番兵の写像の逆向き。
var sentinelStatuses = []struct {
	sentinel error
	status   int
}{
	{model.ErrNotFound, http.StatusNotFound},
	{model.ErrInvalidInput, http.StatusBadRequest},
	{model.ErrConflict, http.StatusConflict},
	{model.ErrForbidden, http.StatusForbidden},
}

func statusFor(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}
	for _, m := range sentinelStatuses {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		RespondWithJSON(w, statusFor(err), model.APIErrorResponse{Error: appErr.Detail})
		return
	}

	// 予期せぬエラー。詳細はログに残し、クライアントには汎用メッセージだけ返す
	slog.Error("Unhandled error", slog.Any("error", err))
	RespondWithJSON(w, http.StatusInternalServerError, model.APIErrorResponse{
		Error: model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "An internal server error occurred",
		},
	})
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", slog.Any("error", err))
		code = http.StatusInternalServerError
		body = []byte(encodeFailureBody)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

// RespondNoContent は本文なしの 204 を返します (削除系の成功応答)
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// NewValidationErrorResponse はバリデーション結果を AppError にまとめます
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := lo.Map(errs, func(e validator.FieldError, _ int) string {
		return e.Field()
	})
	messages := lo.Map(errs, func(e validator.FieldError, _ int) string {
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag())
	})

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
