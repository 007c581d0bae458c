// Package storefront 本地网关接口
// 把视图与流程对象暴露为 HTTP 接口，业务数据全部来自远端商城 API
package storefront

import "github.com/storefront-next/internal/provider"

// Handler 店面接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
