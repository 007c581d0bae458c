package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车写请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	state, err := h.Cart.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items":         state.Lines,
		"total_price":   state.TotalPrice,
		"empty_message": h.Cart.EmptyMessage(),
	})
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	state, err := h.Cart.AddProduct(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"items": state.Lines, "total_price": state.TotalPrice})
}

// UpdateCartItem 修改购物车商品数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	state, err := h.Cart.SetQuantity(c.Request.Context(), uint(productID), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"items": state.Lines, "total_price": state.TotalPrice})
}

// DeleteCartItem 删除购物车商品
func (h *Handler) DeleteCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	state, err := h.Cart.RemoveLine(c.Request.Context(), uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items":         state.Lines,
		"total_price":   state.TotalPrice,
		"empty_message": h.Cart.EmptyMessage(),
	})
}
