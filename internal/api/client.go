package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/session"
)

var (
	// ErrRequestFailed 上游请求失败（网络错误或非 2xx 状态）
	ErrRequestFailed = errors.New("api: request failed")
	// ErrResponseInvalid 上游响应无法解析
	ErrResponseInvalid = errors.New("api: response invalid")
)

// Client 商城 API 客户端
// 提供公开与鉴权两种调用面，鉴权调用在发起网络请求前
// 从会话读取令牌，令牌缺失或过期时直接失败
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New 创建 API 客户端
func New(cfg *config.APIConfig, sess *session.Session) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/"
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout()},
		session: sess,
	}
}

// Session 返回客户端绑定的会话
func (c *Client) Session() *session.Session {
	return c.session
}

// endpoint 拼接请求地址
func (c *Client) endpoint(path string, query url.Values) string {
	full := c.baseURL + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}

// get 公开 GET 请求
func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, dest, false)
}

// getAuthed 鉴权 GET 请求
func (c *Client) getAuthed(ctx context.Context, path string, query url.Values, dest interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, dest, true)
}

// post 公开 POST 请求
func (c *Client) post(ctx context.Context, path string, body, dest interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, dest, false)
}

// postAuthed 鉴权 POST 请求
func (c *Client) postAuthed(ctx context.Context, path string, body, dest interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, dest, true)
}

// putAuthed 鉴权 PUT 请求
func (c *Client) putAuthed(ctx context.Context, path string, body, dest interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, dest, true)
}

// deleteAuthed 鉴权 DELETE 请求
func (c *Client) deleteAuthed(ctx context.Context, path string, dest interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, dest, true)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest interface{}, authed bool) error {
	var token string
	if authed {
		// 令牌在发请求时读取，而不是客户端构造时
		var err error
		token, err = c.session.Token(ctx)
		if err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request body: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, raw)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

// uploadAuthed 鉴权 multipart 上传
func (c *Client) uploadAuthed(ctx context.Context, method, path, fieldName, filename string, file io.Reader, dest interface{}) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, raw)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

// apiError 上游错误响应体
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newStatusError(status int, raw []byte) error {
	var payload apiError
	_ = json.Unmarshal(raw, &payload)
	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, status)
	}
	return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, status, msg)
}
