package storefront

import (
	"strconv"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAddresses 地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	addresses, err := h.Addresses.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, addresses)
}

// CreateAddress 新增地址
func (h *Handler) CreateAddress(c *gin.Context) {
	var input api.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	addresses, err := h.Addresses.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, addresses)
}

// UpdateAddress 修改地址
func (h *Handler) UpdateAddress(c *gin.Context) {
	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid address id")
		return
	}
	var input api.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	addresses, err := h.Addresses.Update(c.Request.Context(), uint(addressID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, addresses)
}

// DeleteAddress 删除地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid address id")
		return
	}

	addresses, err := h.Addresses.Delete(c.Request.Context(), uint(addressID))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, addresses)
}

// GetProvinces 省份列表
func (h *Handler) GetProvinces(c *gin.Context) {
	if err := h.Addresses.LoadLocations(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, h.Addresses.Provinces())
}

// GetDistricts 区县列表，province_id 过滤在本地完成
func (h *Handler) GetDistricts(c *gin.Context) {
	if err := h.Addresses.LoadLocations(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, h.Addresses.DistrictsOf(parseUintQuery(c, "province_id")))
}
