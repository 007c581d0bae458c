package api

import (
	"context"
	"fmt"
)

// ListCart 拉取购物车
// 空购物车时上游返回空对象，items 为 nil
func (c *Client) ListCart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.getAuthed(ctx, "carts/list", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertCart 创建或更新购物车条目
func (c *Client) UpsertCart(ctx context.Context, changes []CartChange) error {
	body := struct {
		Items []CartChange `json:"items"`
	}{Items: changes}
	return c.postAuthed(ctx, "carts/createupdate", body, nil)
}

// DeleteCartLine 删除购物车条目
func (c *Client) DeleteCartLine(ctx context.Context, productID uint) error {
	return c.deleteAuthed(ctx, fmt.Sprintf("carts/delete/%d", productID), nil)
}
