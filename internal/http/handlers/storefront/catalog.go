package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/catalog"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func parseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

func parseIntQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// GetProducts 商品列表
// 排序与分页交给远端，search 在结果上本地过滤
func (h *Handler) GetProducts(c *gin.Context) {
	query := catalog.Query{
		SortPrice:  c.Query("price"),
		SortDate:   c.Query("date"),
		SortRating: c.Query("rating"),
		Page:       parseIntQuery(c, "page"),
		PerPage:    parseIntQuery(c, "per_page"),
		ProvinceID: parseUintQuery(c, "province_id"),
		CategoryID: parseUintQuery(c, "category_id"),
		SellerID:   parseUintQuery(c, "seller_id"),
	}
	if err := h.Catalog.Load(c.Request.Context(), query); err != nil {
		respondError(c, err)
		return
	}

	products := h.Catalog.Filter(c.Query("search"), 0)
	response.Success(c, gin.H{
		"products":     products,
		"categories":   h.Catalog.Categories(),
		"provinces":    h.Catalog.Provinces(),
		"page_numbers": h.Catalog.PageNumbers(),
	})
}

// ShowMoreProducts 增量展开更多商品
func (h *Handler) ShowMoreProducts(c *gin.Context) {
	if err := h.Catalog.ShowMore(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"products": h.Catalog.Visible()})
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.API.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, categories)
}

// GetProductDetail 商品详情
func (h *Handler) GetProductDetail(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	detail, err := h.Catalog.Detail(c.Request.Context(), uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, detail)
}

// GetSellerProfile 卖家公开信息
func (h *Handler) GetSellerProfile(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid seller id")
		return
	}
	profile, err := h.Catalog.SellerProfile(c.Request.Context(), uint(sellerID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, profile)
}

// GetSellerVouchers 卖家公开券列表（带本地领取标记）
func (h *Handler) GetSellerVouchers(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid seller id")
		return
	}
	vouchers, err := h.Vouchers.SellerVouchers(c.Request.Context(), uint(sellerID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, vouchers)
}
