package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/storefront-next/internal/localstore"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken 本地没有访问令牌
	ErrMissingToken = errors.New("session: missing auth token")
	// ErrTokenExpired 访问令牌已过期
	ErrTokenExpired = errors.New("session: auth token expired")
)

// Session 显式会话对象
// 令牌保存在本地存储中，每次取用时校验过期时间，
// 避免携带一个已知过期的令牌发起请求
type Session struct {
	store localstore.Store
	now   func() time.Time
}

// New 创建会话
func New(store localstore.Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Token 读取当前访问令牌
// 令牌缺失或已过期时返回错误，调用方不应再发起网络请求
func (s *Session) Token(ctx context.Context) (string, error) {
	raw, ok, err := localstore.AccessToken(ctx, s.store)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(raw)
	if !ok || token == "" {
		return "", ErrMissingToken
	}
	if err := s.checkExpiry(token); err != nil {
		return "", err
	}
	return token, nil
}

// SetToken 保存访问令牌
func (s *Session) SetToken(ctx context.Context, token string) error {
	return localstore.SetAccessToken(ctx, s.store, token)
}

// Clear 清除会话令牌
func (s *Session) Clear(ctx context.Context) error {
	return localstore.ClearAccessToken(ctx, s.store)
}

// LoggedIn 判断本地是否存在可用令牌
func (s *Session) LoggedIn(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

// Store 返回底层本地存储
func (s *Session) Store() localstore.Store {
	return s.store
}

// checkExpiry 校验 JWT 的 exp 声明
// 令牌不是 JWT 时按不透明令牌处理，过期只能由远端发现
func (s *Session) checkExpiry(token string) error {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil
	}
	if s.now().After(expiresAt.Time) {
		return ErrTokenExpired
	}
	return nil
}
