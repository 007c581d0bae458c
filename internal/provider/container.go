package provider

import (
	"github.com/storefront-next/internal/account"
	"github.com/storefront-next/internal/address"
	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/cart"
	"github.com/storefront-next/internal/catalog"
	"github.com/storefront-next/internal/checkout"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/purchase"
	"github.com/storefront-next/internal/session"
	"github.com/storefront-next/internal/voucher"
)

// Container 依赖注入容器
type Container struct {
	Config  *config.Config
	Store   localstore.Store
	Session *session.Session
	API     *api.Client

	// 视图与流程
	Account   *account.Manager
	Catalog   *catalog.Browser
	Cart      *cart.View
	Checkout  *checkout.Flow
	Purchase  *purchase.History
	Addresses *address.Book
	Vouchers  *voucher.Selector
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 1. 本地存储与会话
	c.Store = localstore.New(&cfg.Store)
	c.Session = session.New(c.Store)

	// 2. 远端 API 客户端
	c.API = api.New(&cfg.API, c.Session)

	// 3. 视图与流程
	c.Account = account.NewManager(c.API, c.Session)
	c.Catalog = catalog.NewBrowser(c.API)
	c.Cart = cart.NewView(c.API)
	c.Checkout = checkout.NewFlow(c.API)
	c.Purchase = purchase.NewHistory(c.API, c.Store)
	c.Addresses = address.NewBook(c.API)
	c.Vouchers = voucher.NewSelector(c.API, c.Store)

	return c
}
