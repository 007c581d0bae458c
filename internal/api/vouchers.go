package api

import (
	"context"
	"fmt"
)

// ListUserVouchers 当前用户已领取的优惠券
func (c *Client) ListUserVouchers(ctx context.Context) ([]UserVoucher, error) {
	var vouchers []UserVoucher
	if err := c.getAuthed(ctx, "usersellervouchers/list", nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// ClaimVoucher 领取卖家优惠券
func (c *Client) ClaimVoucher(ctx context.Context, sellerVoucherID uint) error {
	return c.postAuthed(ctx, fmt.Sprintf("usersellervouchers/save/%d", sellerVoucherID), nil, nil)
}

// UseVoucher 标记用户优惠券已使用
func (c *Client) UseVoucher(ctx context.Context, userVoucherID uint) error {
	return c.putAuthed(ctx, fmt.Sprintf("usersellervouchers/used/%d", userVoucherID), nil, nil)
}
