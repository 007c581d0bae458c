package localstore

import (
	"context"

	"github.com/storefront-next/internal/constants"
)

// AccessToken 读取本地保存的访问令牌
func AccessToken(ctx context.Context, store Store) (string, bool, error) {
	return store.Get(ctx, constants.StoreKeyAccessToken)
}

// SetAccessToken 保存访问令牌
func SetAccessToken(ctx context.Context, store Store, token string) error {
	return store.Set(ctx, constants.StoreKeyAccessToken, token)
}

// ClearAccessToken 清除访问令牌
func ClearAccessToken(ctx context.Context, store Store) error {
	return store.Del(ctx, constants.StoreKeyAccessToken)
}

// ClaimedVoucherIDs 读取已领取的优惠券 id 集合
// 该集合只是服务端事实的本地缓存
func ClaimedVoucherIDs(ctx context.Context, store Store) ([]uint, error) {
	var ids []uint
	if _, err := GetJSON(ctx, store, constants.StoreKeyClaimedVouchers, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// AddClaimedVoucher 记录一张已领取的优惠券
func AddClaimedVoucher(ctx context.Context, store Store, voucherID uint) error {
	ids, err := ClaimedVoucherIDs(ctx, store)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == voucherID {
			return nil
		}
	}
	ids = append(ids, voucherID)
	return SetJSON(ctx, store, constants.StoreKeyClaimedVouchers, ids)
}

// IsVoucherClaimed 判断优惠券是否已领取
func IsVoucherClaimed(ctx context.Context, store Store, voucherID uint) (bool, error) {
	ids, err := ClaimedVoucherIDs(ctx, store)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == voucherID {
			return true, nil
		}
	}
	return false, nil
}

// ReviewedTransactionIDs 读取已评价的交易 id 集合
func ReviewedTransactionIDs(ctx context.Context, store Store) ([]string, error) {
	var ids []string
	if _, err := GetJSON(ctx, store, constants.StoreKeyReviewedTransactions, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkTransactionReviewed 记录一笔已评价的交易
func MarkTransactionReviewed(ctx context.Context, store Store, transactionID string) error {
	ids, err := ReviewedTransactionIDs(ctx, store)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == transactionID {
			return nil
		}
	}
	ids = append(ids, transactionID)
	return SetJSON(ctx, store, constants.StoreKeyReviewedTransactions, ids)
}

// IsTransactionReviewed 判断交易是否已评价
func IsTransactionReviewed(ctx context.Context, store Store, transactionID string) (bool, error) {
	ids, err := ReviewedTransactionIDs(ctx, store)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == transactionID {
			return true, nil
		}
	}
	return false, nil
}
