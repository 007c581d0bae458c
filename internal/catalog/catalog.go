// Package catalog 商品浏览
// 分页与排序交给远端，名称搜索与类目筛选在已加载的
// 结果上本地完成
package catalog

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/pagination"
)

const (
	showMoreStep = 8
	showMoreCap  = 100
)

// Query 浏览条件
type Query struct {
	SortPrice  string
	SortDate   string
	SortRating string
	Page       int
	PerPage    int
	ProvinceID uint
	CategoryID uint
	SellerID   uint
}

// Browser 商品浏览视图
type Browser struct {
	mu          sync.Mutex
	client      *api.Client
	products    []api.Product
	categories  []api.Category
	provinces   []api.Province
	currentPage int
	totalPages  int
	totalItems  int
	visible     int
	query       Query
}

// NewBrowser 创建商品浏览视图
func NewBrowser(client *api.Client) *Browser {
	return &Browser{client: client, visible: showMoreStep}
}

// Load 按条件拉取商品，同时拉取类目与省份供筛选
func (b *Browser) Load(ctx context.Context, query Query) error {
	var (
		page       *api.ProductPage
		categories []api.Category
		provinces  []api.Province
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		page, err = b.client.QueryProducts(groupCtx, api.ProductQuery{
			Price:      query.SortPrice,
			Date:       query.SortDate,
			Rating:     query.SortRating,
			Page:       query.Page,
			PerPage:    query.PerPage,
			ProvinceID: query.ProvinceID,
			CategoryID: query.CategoryID,
			SellerID:   query.SellerID,
		})
		return err
	})
	group.Go(func() error {
		var err error
		categories, err = b.client.Categories(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		provinces, err = b.client.Provinces(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	b.mu.Lock()
	b.products = page.Products
	b.categories = categories
	b.provinces = provinces
	b.currentPage = page.CurrentPage
	b.totalPages = page.TotalPage
	b.totalItems = page.TotalItems
	b.visible = showMoreStep
	b.query = query
	b.mu.Unlock()
	return nil
}

// ShowMore 增量展开更多商品
// 本页展开完后拉取下一页并追加
func (b *Browser) ShowMore(ctx context.Context) error {
	b.mu.Lock()
	needNextPage := b.visible >= len(b.products) && b.currentPage < b.totalPages
	b.visible += showMoreStep
	if b.visible > showMoreCap {
		b.visible = showMoreCap
	}
	query := b.query
	nextPage := b.currentPage + 1
	b.mu.Unlock()

	if !needNextPage {
		return nil
	}

	query.Page = nextPage
	page, err := b.client.QueryProducts(ctx, api.ProductQuery{
		Price:      query.SortPrice,
		Date:       query.SortDate,
		Rating:     query.SortRating,
		Page:       query.Page,
		PerPage:    query.PerPage,
		ProvinceID: query.ProvinceID,
		CategoryID: query.CategoryID,
		SellerID:   query.SellerID,
	})
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.products = append(b.products, page.Products...)
	b.currentPage = page.CurrentPage
	b.totalPages = page.TotalPage
	b.query = query
	b.mu.Unlock()
	return nil
}

// Collapse 收起到初始数量
func (b *Browser) Collapse() {
	b.mu.Lock()
	b.visible = showMoreStep
	b.mu.Unlock()
}

// Visible 当前可见的商品
func (b *Browser) Visible() []api.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.visible
	if n > len(b.products) {
		n = len(b.products)
	}
	visible := make([]api.Product, n)
	copy(visible, b.products[:n])
	return visible
}

// Filter 在已加载的商品上做名称搜索与类目筛选
func (b *Browser) Filter(search string, categoryID uint) []api.Product {
	b.mu.Lock()
	products := make([]api.Product, len(b.products))
	copy(products, b.products)
	b.mu.Unlock()

	search = strings.ToLower(strings.TrimSpace(search))
	var matched []api.Product
	for _, product := range products {
		if categoryID > 0 && product.CategoryID != categoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

// Categories 类目快照
func (b *Browser) Categories() []api.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	categories := make([]api.Category, len(b.categories))
	copy(categories, b.categories)
	return categories
}

// Provinces 省份快照
func (b *Browser) Provinces() []api.Province {
	b.mu.Lock()
	defer b.mu.Unlock()
	provinces := make([]api.Province, len(b.provinces))
	copy(provinces, b.provinces)
	return provinces
}

// PageNumbers 分页控件页码
func (b *Browser) PageNumbers() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return pagination.Numbers(b.currentPage, b.totalPages)
}

// Detail 商品详情
func (b *Browser) Detail(ctx context.Context, productID uint) (*api.ProductDetail, error) {
	return b.client.GetProduct(ctx, productID)
}

// SellerProfile 卖家公开信息
func (b *Browser) SellerProfile(ctx context.Context, sellerID uint) (*api.SellerProfile, error) {
	return b.client.SellerPublicInfo(ctx, sellerID)
}
