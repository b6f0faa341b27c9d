//go:generate mockery --name QuizAPI --output ./mocks --outpkg mocks --case=underscore
package api

import (
	"context"

	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
)

// QuizAPI はクイズエンドポイントへの操作
type QuizAPI interface {
	ListQuizzes(ctx context.Context) ([]model.Quiz, error)
	GenerateQuiz(ctx context.Context, req model.GenerateQuizRequest) (*model.Quiz, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.Quiz, error)
	SubmitQuiz(ctx context.Context, quizID uuid.UUID, req model.SubmitQuizRequest) (*model.QuizAttempt, error)
}

var _ QuizAPI = (*Client)(nil)

func (c *Client) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var resp struct {
		Quizzes []model.Quiz `json:"quizzes"`
	}
	if err := c.get(ctx, "/quizzes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Quizzes, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, req model.GenerateQuizRequest) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.post(ctx, "/quizzes/generate", req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.get(ctx, "/quizzes/"+quizID.String(), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) SubmitQuiz(ctx context.Context, quizID uuid.UUID, req model.SubmitQuizRequest) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := c.post(ctx, "/quizzes/"+quizID.String()+"/submit", req, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}
