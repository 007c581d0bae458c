package router

import (
	"fmt"
	"strings"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/http/handlers/storefront"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := storefront.New(c)
	redisPrefix := strings.TrimSpace(cfg.Store.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	var redisClient *redis.Client
	if store, ok := c.Store.(*localstore.RedisStore); ok {
		redisClient = store.Client()
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
			auth.POST("/logout", handler.Logout)
		}

		// 商品浏览接口
		apiV1.GET("/products", handler.GetProducts)
		apiV1.POST("/products/show-more", handler.ShowMoreProducts)
		apiV1.GET("/products/:id", handler.GetProductDetail)
		apiV1.GET("/categories", handler.GetCategories)
		apiV1.GET("/sellers/:id", handler.GetSellerProfile)
		apiV1.GET("/sellers/:id/vouchers", handler.GetSellerVouchers)
		apiV1.GET("/locations/provinces", handler.GetProvinces)
		apiV1.GET("/locations/districts", handler.GetDistricts)

		// 用户资料接口
		apiV1.GET("/me", handler.GetCurrentUser)
		apiV1.PUT("/me/profile", handler.UpdateProfile)
		apiV1.PUT("/me/avatar", handler.UpdateAvatar)

		// 购物车接口
		apiV1.GET("/cart", handler.GetCart)
		apiV1.POST("/cart/items", handler.AddCartItem)
		apiV1.PUT("/cart/items/:product_id", handler.UpdateCartItem)
		apiV1.DELETE("/cart/items/:product_id", handler.DeleteCartItem)

		// 结算流程接口
		checkoutGroup := apiV1.Group("/checkout")
		{
			checkoutGroup.POST("", handler.StartCheckout)
			checkoutGroup.GET("", handler.GetCheckout)
			checkoutGroup.PUT("/address", handler.SelectCheckoutAddress)
			checkoutGroup.PUT("/shipment", handler.SelectCheckoutShipment)
			checkoutGroup.POST("/voucher", handler.ApplyCheckoutVoucher)
			checkoutGroup.POST("/confirm", handler.ConfirmCheckout)
		}

		// 订单历史接口
		apiV1.GET("/purchases", handler.ListPurchases)
		apiV1.POST("/purchases/:id/review", handler.ReviewPurchase)
		apiV1.POST("/purchases/:id/cancel", handler.CancelPurchase)

		// 收货地址接口
		apiV1.GET("/addresses", handler.ListAddresses)
		apiV1.POST("/addresses", handler.CreateAddress)
		apiV1.PUT("/addresses/:id", handler.UpdateAddress)
		apiV1.DELETE("/addresses/:id", handler.DeleteAddress)

		// 优惠券接口
		apiV1.GET("/vouchers", handler.ListMyVouchers)
		apiV1.POST("/vouchers/:id/claim", handler.ClaimVoucher)
		apiV1.POST("/vouchers/:id/use", handler.UseVoucher)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
