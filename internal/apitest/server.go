// internal/apitest/server.go
// Package apitest は統合テスト用のインメモリ API サーバを提供します。
// 実サーバと同じワイヤ契約 (JSON の形・CSRF 前提条件・累積ページング・採点) を
// 再現しますが、永続化は行いません。httptest.NewServer にそのまま渡せます。
package apitest

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/webutil"
)

// Server は語彙 API のインメモリ実装。http.Handler を満たす。
// 全状態は mu で保護され、ハンドラはリクエスト単位でロックを取る。
type Server struct {
	mu        sync.Mutex
	userID    uuid.UUID
	csrfToken string
	lists     []*model.VocabularyList
	quizzes   map[uuid.UUID]*model.Quiz
	attempts  map[uuid.UUID][]model.QuizAttempt
	now       func() time.Time
	logger    *slog.Logger
	router    chi.Router
}

func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		userID:    uuid.New(),
		csrfToken: uuid.NewString(),
		quizzes:   make(map[uuid.UUID]*model.Quiz),
		attempts:  make(map[uuid.UUID][]model.QuizAttempt),
		now:       time.Now,
		logger:    logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(corsHandler.Handler)

	r.Use(s.requireCSRF)

	r.Get("/csrf-token", s.issueCSRFToken)

	r.Route("/vocabulary", func(r chi.Router) {
		r.Get("/", s.listVocabulary)
		r.Post("/", s.createList)
		r.Post("/generate-ai-list", s.generateAIList)
		r.Post("/words/{wordId}/progress", s.updateProgress)

		r.Route("/{listId}", func(r chi.Router) {
			r.Get("/", s.getList)
			r.Put("/", s.updateList)
			r.Delete("/", s.deleteList)
			r.Post("/words", s.createWord)
			r.Put("/words/{wordId}", s.updateWord)
			r.Delete("/words/{wordId}", s.deleteWord)
		})
	})

	r.Route("/quizzes", func(r chi.Router) {
		r.Get("/", s.listQuizzes)
		r.Post("/generate", s.generateQuiz)
		r.Get("/{quizId}", s.getQuiz)
		r.Post("/{quizId}/submit", s.submitQuiz)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/progress", s.progressSummary)
		r.Get("/recommendations", s.recommendations)
	})

	return r
}

// requireCSRF は変更系メソッドに X-CSRF-Token ヘッダを要求する。
// 安全なメソッド (GET/HEAD/OPTIONS) は素通しする。
func (s *Server) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("X-CSRF-Token") != s.csrfToken {
			s.logger.Warn("CSRF token rejected", "method", r.Method, "path", r.URL.Path)
			webutil.HandleError(w, model.NewAppError(
				"CSRF_TOKEN_MISMATCH", "CSRF token is missing or invalid", "", model.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// issueCSRFToken はトークンをクッキーで発行し、ボディでも返す。
func (s *Server) issueCSRFToken(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:  "csrf_token",
		Value: s.csrfToken,
		Path:  "/",
	})
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"csrfToken": s.csrfToken})
}

// CSRFToken はテストが生の HTTP リクエストを組むときに使う現行トークン。
func (s *Server) CSRFToken() string {
	return s.csrfToken
}

// SeedList は HTTP を介さずにリストを登録します。ID や進捗が
// 未設定の箇所は補い、登録後の値を返す。
func (s *Server) SeedList(list model.VocabularyList) model.VocabularyList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.ListID == uuid.Nil {
		list.ListID = uuid.New()
	}
	list.UserID = s.userID
	if list.CreatedAt.IsZero() {
		list.CreatedAt = s.now()
	}
	if list.UpdatedAt.IsZero() {
		list.UpdatedAt = list.CreatedAt
	}
	for i := range list.Words {
		w := &list.Words[i]
		if w.WordID == uuid.Nil {
			w.WordID = uuid.New()
		}
		w.ListID = list.ListID
		if w.CreatedAt.IsZero() {
			w.CreatedAt = list.CreatedAt
		}
		if w.UpdatedAt.IsZero() {
			w.UpdatedAt = w.CreatedAt
		}
		if w.Progress == nil {
			w.Progress = s.freshProgress(w.WordID)
		} else {
			if w.Progress.ProgressID == uuid.Nil {
				w.Progress.ProgressID = uuid.New()
			}
			w.Progress.WordID = w.WordID
			w.Progress.UserID = s.userID
		}
	}
	list.Counts = model.ListCounts{Words: len(list.Words)}

	stored := cloneList(&list)
	s.lists = append(s.lists, stored)
	return *cloneList(stored)
}

func (s *Server) freshProgress(wordID uuid.UUID) *model.WordProgress {
	return &model.WordProgress{
		ProgressID: uuid.New(),
		WordID:     wordID,
		UserID:     s.userID,
		Status:     model.StatusNotStarted,
	}
}

// findList は呼び出し側が mu を保持している前提。
func (s *Server) findList(id uuid.UUID) (int, *model.VocabularyList) {
	for i, l := range s.lists {
		if l.ListID == id {
			return i, l
		}
	}
	return -1, nil
}

// findWord は listHint があればそのリストだけを、なければ全リストを探す。
func (s *Server) findWord(wordID uuid.UUID, listHint *uuid.UUID) (*model.VocabularyList, *model.Word) {
	scan := func(l *model.VocabularyList) *model.Word {
		for i := range l.Words {
			if l.Words[i].WordID == wordID {
				return &l.Words[i]
			}
		}
		return nil
	}
	if listHint != nil {
		if _, l := s.findList(*listHint); l != nil {
			if w := scan(l); w != nil {
				return l, w
			}
		}
	}
	for _, l := range s.lists {
		if w := scan(l); w != nil {
			return l, w
		}
	}
	return nil, nil
}

func cloneList(l *model.VocabularyList) *model.VocabularyList {
	out := *l
	out.Words = make([]model.Word, len(l.Words))
	for i := range l.Words {
		out.Words[i] = cloneWord(l.Words[i])
	}
	return &out
}

func cloneWord(w model.Word) model.Word {
	if w.Progress != nil {
		p := *w.Progress
		w.Progress = &p
	}
	return w
}
