//go:generate mockery --name VocabularyAPI --output ./mocks --outpkg mocks --case=underscore
package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
)

// VocabularyAPI は語彙リスト/単語エンドポイントへの操作
type VocabularyAPI interface {
	ListVocabulary(ctx context.Context, page, limit int) ([]model.VocabularyList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*model.VocabularyList, error)
	CreateList(ctx context.Context, form model.ListForm) (*model.VocabularyList, error)
	UpdateList(ctx context.Context, listID uuid.UUID, form model.ListForm) (*model.VocabularyList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	CreateWord(ctx context.Context, listID uuid.UUID, form model.WordForm) (*model.Word, error)
	UpdateWord(ctx context.Context, listID, wordID uuid.UUID, form model.WordForm) (*model.Word, error)
	DeleteWord(ctx context.Context, listID, wordID uuid.UUID) error
	UpdateProgress(ctx context.Context, wordID uuid.UUID, req model.UpdateProgressRequest) (*model.WordProgress, error)
	GenerateAIList(ctx context.Context, form model.AIForm) (*model.VocabularyList, error)
}

var _ VocabularyAPI = (*Client)(nil)

// ListVocabulary は GET /vocabulary?page&limit を呼びます。
// サーバのページングは累積窓で、page=N は先頭から N*limit 件までを返す。
func (c *Client) ListVocabulary(ctx context.Context, page, limit int) ([]model.VocabularyList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp model.VocabularyListsResponse
	if err := c.get(ctx, "/vocabulary", query, &resp); err != nil {
		return nil, err
	}
	return resp.VocabularyLists, nil
}

func (c *Client) GetList(ctx context.Context, listID uuid.UUID) (*model.VocabularyList, error) {
	var list model.VocabularyList
	if err := c.get(ctx, "/vocabulary/"+listID.String(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreateList(ctx context.Context, form model.ListForm) (*model.VocabularyList, error) {
	var list model.VocabularyList
	if err := c.post(ctx, "/vocabulary", form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UpdateList(ctx context.Context, listID uuid.UUID, form model.ListForm) (*model.VocabularyList, error) {
	var list model.VocabularyList
	if err := c.put(ctx, "/vocabulary/"+listID.String(), form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) DeleteList(ctx context.Context, listID uuid.UUID) error {
	return c.delete(ctx, "/vocabulary/"+listID.String())
}

func (c *Client) CreateWord(ctx context.Context, listID uuid.UUID, form model.WordForm) (*model.Word, error) {
	var word model.Word
	if err := c.post(ctx, fmt.Sprintf("/vocabulary/%s/words", listID), form, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

func (c *Client) UpdateWord(ctx context.Context, listID, wordID uuid.UUID, form model.WordForm) (*model.Word, error) {
	var word model.Word
	if err := c.put(ctx, fmt.Sprintf("/vocabulary/%s/words/%s", listID, wordID), form, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

func (c *Client) DeleteWord(ctx context.Context, listID, wordID uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/vocabulary/%s/words/%s", listID, wordID))
}

func (c *Client) UpdateProgress(ctx context.Context, wordID uuid.UUID, req model.UpdateProgressRequest) (*model.WordProgress, error) {
	var progress model.WordProgress
	if err := c.post(ctx, fmt.Sprintf("/vocabulary/words/%s/progress", wordID), req, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *Client) GenerateAIList(ctx context.Context, form model.AIForm) (*model.VocabularyList, error) {
	var list model.VocabularyList
	if err := c.post(ctx, "/vocabulary/generate-ai-list", form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
