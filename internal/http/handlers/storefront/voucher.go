package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListMyVouchers 当前用户的优惠券
func (h *Handler) ListMyVouchers(c *gin.Context) {
	vouchers, err := h.Vouchers.Mine(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, vouchers)
}

// ClaimVoucher 领取卖家优惠券
func (h *Handler) ClaimVoucher(c *gin.Context) {
	voucherID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid voucher id")
		return
	}

	if err := h.Vouchers.Claim(c.Request.Context(), uint(voucherID)); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, "voucher claimed", gin.H{"seller_voucher_id": voucherID})
}

// UseVoucher 标记用户优惠券已使用
func (h *Handler) UseVoucher(c *gin.Context) {
	voucherID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid voucher id")
		return
	}

	usedID, err := h.Vouchers.Use(c.Request.Context(), uint(voucherID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, "voucher used", gin.H{"user_voucher_id": usedID})
}
