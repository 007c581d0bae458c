// Package account 登录态与个人资料
package account

import (
	"context"
	"errors"
	"io"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/session"
)

// 资料变更类型，与上游 request_type 字段一致
const (
	RequestTypeChangeEmail    = "change_email"
	RequestTypeChangePhone    = "change_phone_number"
	RequestTypeChangePassword = "change_password"
)

// ErrEmptyCredentials 登录参数缺失
var ErrEmptyCredentials = errors.New("account: email and password are required")

// Manager 账号操作入口
type Manager struct {
	client  *api.Client
	session *session.Session
}

// NewManager 创建账号入口
func NewManager(client *api.Client, sess *session.Session) *Manager {
	return &Manager{client: client, session: sess}
}

// Login 登录并把令牌写入会话
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	result, err := m.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	if err := m.session.SetToken(ctx, result.AccessToken); err != nil {
		return "", err
	}
	return result.Message, nil
}

// Logout 清除本地会话
func (m *Manager) Logout(ctx context.Context) error {
	return m.session.Clear(ctx)
}

// LoggedIn 本地是否存在可用令牌
func (m *Manager) LoggedIn(ctx context.Context) bool {
	return m.session.LoggedIn(ctx)
}

// Profile 拉取当前用户资料
func (m *Manager) Profile(ctx context.Context) (*api.User, error) {
	return m.client.Me(ctx)
}

// ChangeEmail 修改邮箱，需要当前密码确认
func (m *Manager) ChangeEmail(ctx context.Context, password, newEmail string) (string, error) {
	return m.client.UpdateProfile(ctx, api.ProfileUpdateRequest{
		Password:    password,
		RequestType: RequestTypeChangeEmail,
		NewEmail:    newEmail,
	})
}

// ChangePhoneNumber 修改手机号，需要当前密码确认
func (m *Manager) ChangePhoneNumber(ctx context.Context, password, newPhoneNumber string) (string, error) {
	return m.client.UpdateProfile(ctx, api.ProfileUpdateRequest{
		Password:       password,
		RequestType:    RequestTypeChangePhone,
		NewPhoneNumber: newPhoneNumber,
	})
}

// ChangePassword 修改密码，需要当前密码确认
func (m *Manager) ChangePassword(ctx context.Context, password, newPassword string) (string, error) {
	return m.client.UpdateProfile(ctx, api.ProfileUpdateRequest{
		Password:    password,
		RequestType: RequestTypeChangePassword,
		NewPassword: newPassword,
	})
}

// UpdateAvatar 上传新头像
func (m *Manager) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (string, error) {
	return m.client.UpdateProfileImage(ctx, filename, image)
}
