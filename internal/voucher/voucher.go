// Package voucher 优惠券领取与使用
// 已领取的券 id 在本地留一份缓存，卖家页展示时
// 不必为每张券询问远端
package voucher

import (
	"context"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/localstore"
)

// SellerVoucher 卖家公开券与本地领取标记
type SellerVoucher struct {
	api.VoucherDetail
	Claimed bool `json:"claimed"`
}

// Selector 优惠券操作入口
type Selector struct {
	client *api.Client
	store  localstore.Store
}

// NewSelector 创建优惠券入口
func NewSelector(client *api.Client, store localstore.Store) *Selector {
	return &Selector{client: client, store: store}
}

// SellerVouchers 卖家公开券列表，本地已领取的打上标记
func (s *Selector) SellerVouchers(ctx context.Context, sellerID uint) ([]SellerVoucher, error) {
	details, err := s.client.SellerPublicVouchers(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	claimed, err := localstore.ClaimedVoucherIDs(ctx, s.store)
	if err != nil {
		return nil, err
	}
	claimedSet := make(map[uint]struct{}, len(claimed))
	for _, id := range claimed {
		claimedSet[id] = struct{}{}
	}

	vouchers := make([]SellerVoucher, 0, len(details))
	for _, detail := range details {
		_, ok := claimedSet[detail.ID]
		vouchers = append(vouchers, SellerVoucher{VoucherDetail: detail, Claimed: ok})
	}
	return vouchers, nil
}

// Claim 领取卖家券
// 远端成功后把券 id 记入本地缓存
func (s *Selector) Claim(ctx context.Context, sellerVoucherID uint) error {
	if err := s.client.ClaimVoucher(ctx, sellerVoucherID); err != nil {
		return err
	}
	return localstore.AddClaimedVoucher(ctx, s.store, sellerVoucherID)
}

// Mine 当前用户的券列表
func (s *Selector) Mine(ctx context.Context) ([]api.UserVoucher, error) {
	return s.client.ListUserVouchers(ctx)
}

// Use 标记一张用户券已使用，返回该券 id 供结算引用
func (s *Selector) Use(ctx context.Context, userVoucherID uint) (uint, error) {
	if err := s.client.UseVoucher(ctx, userVoucherID); err != nil {
		return 0, err
	}
	return userVoucherID, nil
}
