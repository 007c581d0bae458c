package storefront

import (
	"github.com/storefront-next/internal/checkout"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func checkoutStateView(state checkout.State) gin.H {
	return gin.H{
		"stage":               state.Stage().String(),
		"items":               state.Items,
		"total_price":         state.TotalPrice,
		"addresses":           state.Addresses,
		"couriers":            state.Couriers,
		"selected_address_id": state.SelectedAddressID,
		"rates":               state.Rates,
		"selection":           state.Selection,
		"calculation":         state.Calculation,
		"used_voucher_id":     state.UsedVoucherID,
	}
}

// StartCheckout 初始化结算流程
func (h *Handler) StartCheckout(c *gin.Context) {
	state, err := h.Checkout.Bootstrap(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, checkoutStateView(state))
}

// GetCheckout 当前结算状态
func (h *Handler) GetCheckout(c *gin.Context) {
	response.Success(c, checkoutStateView(h.Checkout.State()))
}

// SelectCheckoutAddress 切换收货地址
func (h *Handler) SelectCheckoutAddress(c *gin.Context) {
	var req struct {
		AddressID uint `json:"address_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	state, err := h.Checkout.SelectAddress(c.Request.Context(), req.AddressID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, checkoutStateView(state))
}

// SelectCheckoutShipment 选定物流方案
func (h *Handler) SelectCheckoutShipment(c *gin.Context) {
	var req struct {
		VendorName string `json:"vendor_name" binding:"required"`
		Service    string `json:"service" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	state, err := h.Checkout.SelectShipmentOption(c.Request.Context(), req.VendorName, req.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, checkoutStateView(state))
}

// ApplyCheckoutVoucher 在结算中使用优惠券
func (h *Handler) ApplyCheckoutVoucher(c *gin.Context) {
	var req struct {
		UserVoucherID uint `json:"user_voucher_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	state, err := h.Checkout.ApplyVoucher(c.Request.Context(), req.UserVoucherID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, checkoutStateView(state))
}

// ConfirmCheckout 下单并返回支付跳转信息
func (h *Handler) ConfirmCheckout(c *gin.Context) {
	result, err := h.Checkout.Confirm(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, result.Message, gin.H{"payment_data": result.PaymentData})
}
