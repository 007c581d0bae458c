package api

import (
	"context"
	"io"
	"net/http"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult 登录响应
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// Login 用户登录
// 成功后令牌由调用方决定是否落入会话
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, "users/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me 查询当前用户资料
func (c *Client) Me(ctx context.Context) (*User, error) {
	var envelope userEnvelope
	if err := c.getAuthed(ctx, "users/me", nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.User, nil
}

// ProfileUpdateRequest 资料变更请求
// RequestType 决定 new_* 字段中的哪一个生效
type ProfileUpdateRequest struct {
	Password       string `json:"password"`
	RequestType    string `json:"request_type"`
	NewEmail       string `json:"new_email,omitempty"`
	NewPhoneNumber string `json:"new_phone_number,omitempty"`
	NewPassword    string `json:"new_password,omitempty"`
}

// UpdateProfile 变更邮箱、手机号或密码
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (string, error) {
	var result messageResult
	if err := c.putAuthed(ctx, "users/update", req, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// UpdateProfileImage 上传头像
func (c *Client) UpdateProfileImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	var result messageResult
	if err := c.uploadAuthed(ctx, http.MethodPut, "users/update/image", "image", filename, image, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}
