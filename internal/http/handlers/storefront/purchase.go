package storefront

import (
	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/purchase"

	"github.com/gin-gonic/gin"
)

// ListPurchases 订单历史分页
// tx 参数在已加载的一页内做交易号子串过滤
func (h *Handler) ListPurchases(c *gin.Context) {
	query := purchase.Query{
		Page:   parseIntQuery(c, "page"),
		Date:   c.Query("date"),
		Status: parseIntQuery(c, "status"),
	}
	state, err := h.Purchase.Load(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	items := state.Items
	if term := c.Query("tx"); term != "" {
		items = h.Purchase.Search(term)
	}
	response.Success(c, gin.H{
		"transactions": items,
		"current_page": state.CurrentPage,
		"total_items":  state.TotalItems,
		"total_page":   state.TotalPages,
		"page_numbers": state.PageNumbers(),
	})
}

// ReviewRequest 交易评价请求
type ReviewRequest struct {
	Reviews []api.ProductReviewInput `json:"reviews" binding:"required"`
}

// ReviewPurchase 提交交易评价
func (h *Handler) ReviewPurchase(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	message, err := h.Purchase.SubmitReview(c.Request.Context(), c.Param("id"), req.Reviews)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMsg(c, message, nil)
}

// CancelPurchase 取消待支付交易
func (h *Handler) CancelPurchase(c *gin.Context) {
	state, err := h.Purchase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"transactions": state.Items,
		"current_page": state.CurrentPage,
		"total_page":   state.TotalPages,
	})
}
