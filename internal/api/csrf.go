// internal/api/csrf.go
package api

import (
	"context"
	"io"
	"net/http"
	"sync"

	"vocab_learn_client/internal/model"
)

const (
	csrfHeader = "X-CSRF-Token"
	csrfCookie = "csrf_token"
	csrfPath   = "/csrf-token"
)

// CSRFSource は変更系リクエストに載せるトークンの供給元。
// グローバルなインターセプタではなく、クライアントに注入する明示的な
// ケイパビリティとして扱う。
type CSRFSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticCSRF は固定トークンを返す供給元 (テスト用)
type StaticCSRF string

func (s StaticCSRF) Token(context.Context) (string, error) { return string(s), nil }

// cookieCSRFSource は初回だけ GET /csrf-token を呼んでクッキーを発行させ、
// 以後はジャーに入ったクッキー値をそのまま使う。
type cookieCSRFSource struct {
	client *Client
	mu     sync.Mutex
	primed bool
}

func NewCookieCSRFSource(client *Client) CSRFSource {
	return &cookieCSRFSource{client: client}
}

func (s *cookieCSRFSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token := s.fromJar(); token != "" {
		return token, nil
	}
	if s.primed {
		// 発行済みなのにクッキーがない。ヘッダなしで送ってサーバに拒否させる
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.endpoint(csrfPath, nil), nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return "", wrapTransportError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	s.primed = true

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", model.NewAppError("CSRF_UNAVAILABLE", "Failed to obtain CSRF token", "", model.ErrInternalServer)
	}
	return s.fromJar(), nil
}

func (s *cookieCSRFSource) fromJar() string {
	jar := s.client.httpClient.Jar
	if jar == nil {
		return ""
	}
	for _, c := range jar.Cookies(s.client.baseURL) {
		if c.Name == csrfCookie {
			return c.Value
		}
	}
	return ""
}
