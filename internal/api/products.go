package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProductQuery 商品查询条件
// 排序字段为空时表示不按该维度排序
type ProductQuery struct {
	Price      string
	Date       string
	Rating     string
	Page       int
	PerPage    int
	ProvinceID uint
	CategoryID uint
	SellerID   uint
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	values.Set("price", q.Price)
	values.Set("date", q.Date)
	values.Set("rating", q.Rating)
	page := q.Page
	if page <= 0 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	values.Set("per_page", strconv.Itoa(perPage))
	if q.ProvinceID > 0 {
		values.Set("province_id", strconv.FormatUint(uint64(q.ProvinceID), 10))
	} else {
		values.Set("province_id", "")
	}
	if q.CategoryID > 0 {
		values.Set("category_id", strconv.FormatUint(uint64(q.CategoryID), 10))
	} else {
		values.Set("category_id", "")
	}
	if q.SellerID > 0 {
		values.Set("seller_id", strconv.FormatUint(uint64(q.SellerID), 10))
	}
	return values
}

// QueryProducts 商品分页查询
func (c *Client) QueryProducts(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "products/user/query", query.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct 商品详情
func (c *Client) GetProduct(ctx context.Context, productID uint) (*ProductDetail, error) {
	var detail ProductDetail
	if err := c.get(ctx, fmt.Sprintf("products/user/product/%d", productID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Categories 类目列表
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Provinces 省份列表
func (c *Client) Provinces(ctx context.Context) ([]Province, error) {
	var provinces []Province
	if err := c.get(ctx, "locations/provinces", nil, &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

// Districts 区县列表（全部，按省份过滤在本地完成）
func (c *Client) Districts(ctx context.Context) ([]District, error) {
	var districts []District
	if err := c.get(ctx, "locations/districts", nil, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

// SellerPublicInfo 卖家公开信息
func (c *Client) SellerPublicInfo(ctx context.Context, sellerID uint) (*SellerProfile, error) {
	var envelope sellerProfileEnvelope
	if err := c.get(ctx, fmt.Sprintf("sellers/publicinfo/%d", sellerID), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Seller, nil
}

// SellerPublicVouchers 卖家公开优惠券列表
func (c *Client) SellerPublicVouchers(ctx context.Context, sellerID uint) ([]VoucherDetail, error) {
	var vouchers []VoucherDetail
	if err := c.get(ctx, fmt.Sprintf("sellervouchers/publiclist/%d", sellerID), nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}
