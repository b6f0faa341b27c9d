// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client は語彙APIサーバへのRESTクライアント。
// クッキー (セッション・CSRF) を保持するため、1ユーザーにつき1つを共有する。
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	csrf       CSRFSource
	logger     *slog.Logger
}

// Option は Client の生成時設定
type Option func(*Client)

// WithHTTPClient は下層の http.Client を差し替えます (テスト用)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCSRF は変更系リクエストに付与するトークンの供給元を差し替えます
func WithCSRF(src CSRFSource) Option {
	return func(c *Client) { c.csrf = src }
}

// WithLogger はロガーを差し替えます。nil なら slog.Default() が使われます。
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient はベースURLに対するクライアントを生成します。
// 既定ではクッキージャー付き・ログ付きのトランスポートを使う。
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base URL %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		logger:  slog.Default(),
	}
	c.httpClient = &http.Client{
		Jar:     jar,
		Timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Transport == nil {
		c.httpClient.Transport = NewLoggingTransport(nil, c.logger)
	}
	if c.csrf == nil {
		c.csrf = NewCookieCSRFSource(c)
	}
	return c, nil
}

// endpoint はベースURL配下のパスを組み立てます
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do はリクエストを1本送り、2xx ならレスポンスボディを out にデコードします。
// 変更系メソッドには CSRF トークンを付与する。失敗はすべて model のエラー
// 体系に写してから返す (キャンセルは ErrCancelled)。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if isMutating(method) {
		token, err := c.csrf.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		// 残りを読み捨ててコネクションを再利用可能にする
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
