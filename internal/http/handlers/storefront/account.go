package storefront

import (
	"github.com/storefront-next/internal/account"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	message, err := h.Account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, message, gin.H{"logged_in": true})
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Account.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"logged_in": false})
}

// GetCurrentUser 当前用户资料
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, err := h.Account.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, user)
}

// ProfileUpdateRequest 资料变更请求
type ProfileUpdateRequest struct {
	Password       string `json:"password" binding:"required"`
	RequestType    string `json:"request_type" binding:"required"`
	NewEmail       string `json:"new_email"`
	NewPhoneNumber string `json:"new_phone_number"`
	NewPassword    string `json:"new_password"`
}

// UpdateProfile 变更邮箱、手机号或密码
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	var (
		message string
		err     error
	)
	switch req.RequestType {
	case account.RequestTypeChangeEmail:
		message, err = h.Account.ChangeEmail(ctx, req.Password, req.NewEmail)
	case account.RequestTypeChangePhone:
		message, err = h.Account.ChangePhoneNumber(ctx, req.Password, req.NewPhoneNumber)
	case account.RequestTypeChangePassword:
		message, err = h.Account.ChangePassword(ctx, req.Password, req.NewPassword)
	default:
		response.BadRequest(c, "unknown request_type")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, message, nil)
}

// UpdateAvatar 上传头像
func (h *Handler) UpdateAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	defer file.Close()

	message, err := h.Account.UpdateAvatar(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, message, nil)
}
