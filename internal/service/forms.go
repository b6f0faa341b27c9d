// internal/service/forms.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

// validateForm は送信前にフォームを検証します。失敗は変更系エラーと同じ扱いで、
// アラートを出してモーダルと入力値をそのまま残す。
func validateForm(ctx context.Context, alerter Alerter, form any) error {
	err := webutil.Validator.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		appErr := webutil.NewValidationErrorResponse(verrs)
		alerter.Alert(ctx, appErr.Detail.Message)
		return appErr
	}
	return model.NewAppError("VALIDATION_ERROR", "Form failed validation", "", model.ErrInvalidInput)
}
