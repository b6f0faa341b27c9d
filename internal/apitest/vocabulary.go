// internal/apitest/vocabulary.go
package apitest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

// listVocabulary は累積ページングで返す。page=N は先頭から N*limit 件。
func (s *Server) listVocabulary(w http.ResponseWriter, r *http.Request) {
	page, limit, err := paginationParams(r, 1, 20)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	end := page * limit
	if end > len(s.lists) {
		end = len(s.lists)
	}
	out := make([]model.VocabularyList, 0, end)
	for _, l := range s.lists[:end] {
		out = append(out, *cloneList(l))
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.VocabularyListsResponse{VocabularyLists: out})
}

func (s *Server) createList(w http.ResponseWriter, r *http.Request) {
	var form model.ListForm
	if err := webutil.DecodeValidJSONBody(r, &form); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lists {
		if strings.EqualFold(l.Name, form.Name) {
			webutil.HandleError(w, model.NewAppError(
				"DUPLICATE_LIST_NAME", "A list with this name already exists", "name", model.ErrConflict))
			return
		}
	}

	now := s.now()
	list := &model.VocabularyList{
		ListID:         uuid.New(),
		UserID:         s.userID,
		Name:           form.Name,
		Description:    form.Description,
		TargetLanguage: form.TargetLanguage,
		NativeLanguage: form.NativeLanguage,
		Words:          []model.Word{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.lists = append(s.lists, list)
	s.logger.Debug("List created", "listId", list.ListID, "name", list.Name)
	webutil.RespondWithJSON(w, http.StatusCreated, cloneList(list))
}

func (s *Server) getList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(listID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, cloneList(list))
}

func (s *Server) updateList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	var form model.ListForm
	if err := webutil.DecodeValidJSONBody(r, &form); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(listID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	list.Name = form.Name
	list.Description = form.Description
	list.TargetLanguage = form.TargetLanguage
	list.NativeLanguage = form.NativeLanguage
	list.UpdatedAt = s.now()
	webutil.RespondWithJSON(w, http.StatusOK, cloneList(list))
}

func (s *Server) deleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, list := s.findList(listID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	s.lists = append(s.lists[:idx], s.lists[idx+1:]...)
	s.logger.Debug("List deleted", "listId", listID)
	webutil.RespondNoContent(w)
}

func (s *Server) createWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	var form model.WordForm
	if err := webutil.DecodeValidJSONBody(r, &form); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(listID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	for _, existing := range list.Words {
		if strings.EqualFold(existing.Term, form.Term) {
			webutil.HandleError(w, model.NewAppError(
				"DUPLICATE_WORD", "Word already exists in this list", "word", model.ErrConflict))
			return
		}
	}

	now := s.now()
	word := model.Word{
		WordID:       uuid.New(),
		ListID:       list.ListID,
		Term:         form.Term,
		Translation:  form.Translation,
		PartOfSpeech: form.PartOfSpeech,
		Difficulty:   wordDifficulty(form.Difficulty),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	word.Progress = s.freshProgress(word.WordID)
	list.Words = append(list.Words, word)
	list.Counts.Words = len(list.Words)
	list.UpdatedAt = now
	webutil.RespondWithJSON(w, http.StatusCreated, cloneWord(word))
}

func (s *Server) updateWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	wordID, err := pathUUID(r, "wordId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	var form model.WordForm
	if err := webutil.DecodeValidJSONBody(r, &form); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, word := s.findWord(wordID, &listID)
	if word == nil || list == nil || list.ListID != listID {
		webutil.HandleError(w, errWordNotFound)
		return
	}
	word.Term = form.Term
	word.Translation = form.Translation
	word.PartOfSpeech = form.PartOfSpeech
	word.Difficulty = wordDifficulty(form.Difficulty)
	word.UpdatedAt = s.now()
	list.UpdatedAt = word.UpdatedAt
	webutil.RespondWithJSON(w, http.StatusOK, cloneWord(*word))
}

func (s *Server) deleteWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	wordID, err := pathUUID(r, "wordId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(listID)
	if list == nil {
		webutil.HandleError(w, errListNotFound)
		return
	}
	for i := range list.Words {
		if list.Words[i].WordID == wordID {
			list.Words = append(list.Words[:i], list.Words[i+1:]...)
			list.Counts.Words = len(list.Words)
			list.UpdatedAt = s.now()
			webutil.RespondNoContent(w)
			return
		}
	}
	webutil.HandleError(w, errWordNotFound)
}

// updateProgress はサーバ側の習熟度カーブを適用する。クライアントの
// 楽観ルール (mastered=1.0 / それ以外 0.0) とは learning の値が異なり、
// 再取得でサーバ値へ収束することが観測できる。
func (s *Server) updateProgress(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathUUID(r, "wordId")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	var req model.UpdateProgressRequest
	if err := webutil.DecodeValidJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}
	status, err := model.ParseWordStatus(string(req.Status))
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, word := s.findWord(wordID, req.ListID)
	if word == nil {
		webutil.HandleError(w, errWordNotFound)
		return
	}
	if word.Progress == nil {
		word.Progress = s.freshProgress(word.WordID)
	}

	now := s.now()
	p := word.Progress
	p.Status = status
	p.LastReview = &now
	switch status {
	case model.StatusMastered:
		p.Mastery = 1.0
		next := now.Add(7 * 24 * time.Hour)
		p.NextReview = &next
	case model.StatusLearning:
		p.Mastery = 0.3
		next := now.Add(24 * time.Hour)
		p.NextReview = &next
	default:
		p.Mastery = 0
		p.NextReview = nil
	}
	s.logger.Debug("Progress updated", "wordId", wordID, "status", status)
	progress := *p
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

func (s *Server) generateAIList(w http.ResponseWriter, r *http.Request) {
	var form model.AIForm
	if err := webutil.DecodeValidJSONBody(r, &form); err != nil {
		webutil.HandleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	list := &model.VocabularyList{
		ListID:         uuid.New(),
		UserID:         s.userID,
		Name:           form.Topic,
		Description:    fmt.Sprintf("Generated list about %s", form.Topic),
		TargetLanguage: form.TargetLanguage,
		NativeLanguage: form.NativeLanguage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i := 0; i < form.WordCount; i++ {
		word := model.Word{
			WordID:      uuid.New(),
			ListID:      list.ListID,
			Term:        fmt.Sprintf("%s term %d", form.Topic, i+1),
			Translation: fmt.Sprintf("%s translation %d", form.Topic, i+1),
			Difficulty:  wordDifficulty(form.Difficulty),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		word.Progress = s.freshProgress(word.WordID)
		list.Words = append(list.Words, word)
	}
	list.Counts.Words = len(list.Words)
	s.lists = append(s.lists, list)
	s.logger.Debug("AI list generated", "listId", list.ListID, "words", len(list.Words))
	webutil.RespondWithJSON(w, http.StatusCreated, cloneList(list))
}

var (
	errListNotFound = model.NewAppError("LIST_NOT_FOUND", "Vocabulary list not found", "", model.ErrNotFound)
	errWordNotFound = model.NewAppError("WORD_NOT_FOUND", "Word not found", "", model.ErrNotFound)
)

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", fmt.Sprintf("invalid %s", key), key, model.ErrInvalidInput)
	}
	return id, nil
}

func paginationParams(r *http.Request, defaultPage, defaultLimit int) (int, int, error) {
	page, limit := defaultPage, defaultLimit
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, model.NewAppError("INVALID_PAGINATION", "page must be a positive integer", "page", model.ErrInvalidInput)
		}
		page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, model.NewAppError("INVALID_PAGINATION", "limit must be a positive integer", "limit", model.ErrInvalidInput)
		}
		limit = n
	}
	return page, limit, nil
}

// wordDifficulty は省略時を medium に倒す。バリデーション済み前提。
func wordDifficulty(s string) model.Difficulty {
	if s == "" {
		return model.DifficultyMedium
	}
	d, err := model.ParseDifficulty(s)
	if err != nil {
		return model.DifficultyMedium
	}
	return d
}
