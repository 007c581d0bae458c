package storefront

import (
	"errors"

	"github.com/storefront-next/internal/address"
	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/cart"
	"github.com/storefront-next/internal/checkout"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/purchase"
	"github.com/storefront-next/internal/session"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 业务错误到接口错误响应的映射关系
type mappedHandlerError struct {
	target error
	code   int
}

var commonErrorRules = []mappedHandlerError{
	{target: session.ErrMissingToken, code: response.CodeUnauthorized},
	{target: session.ErrTokenExpired, code: response.CodeUnauthorized},
	{target: cart.ErrQuantityInvalid, code: response.CodeBadRequest},
	{target: cart.ErrUnknownProduct, code: response.CodeNotFound},
	{target: checkout.ErrCourierNotSelected, code: response.CodeBadRequest},
	{target: checkout.ErrUnknownAddress, code: response.CodeBadRequest},
	{target: checkout.ErrUnknownOption, code: response.CodeBadRequest},
	{target: address.ErrUnknownAddress, code: response.CodeNotFound},
	{target: address.ErrDistrictMismatch, code: response.CodeBadRequest},
	{target: purchase.ErrActionNotAllowed, code: response.CodeBadRequest},
	{target: purchase.ErrRatingInvalid, code: response.CodeBadRequest},
	{target: purchase.ErrUnknownTransaction, code: response.CodeNotFound},
	{target: api.ErrRequestFailed, code: response.CodeUpstream},
	{target: api.ErrResponseInvalid, code: response.CodeUpstream},
}

// respondError 按映射规则回写错误响应
func respondError(c *gin.Context, err error) {
	for _, rule := range commonErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, err.Error())
			return
		}
	}
	logger.Errorw("storefront_unexpected_error",
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.Error(c, response.CodeInternal, err.Error())
}
