package api

import (
	"context"
	"fmt"
)

// ListAddresses 收货地址列表
func (c *Client) ListAddresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := c.getAuthed(ctx, "addresses/list", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress 新增收货地址
func (c *Client) CreateAddress(ctx context.Context, input AddressInput) error {
	return c.postAuthed(ctx, "addresses/create", input, nil)
}

// UpdateAddress 修改收货地址
func (c *Client) UpdateAddress(ctx context.Context, addressID uint, input AddressInput) error {
	return c.putAuthed(ctx, fmt.Sprintf("addresses/update/%d", addressID), input, nil)
}

// DeleteAddress 删除收货地址
func (c *Client) DeleteAddress(ctx context.Context, addressID uint) error {
	return c.deleteAuthed(ctx, fmt.Sprintf("addresses/delete/%d", addressID), nil)
}
