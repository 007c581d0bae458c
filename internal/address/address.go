// Package address 收货地址簿
// 省份与区县全量拉取一次，级联过滤在本地完成
package address

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/storefront-next/internal/api"
)

var (
	// ErrUnknownAddress 地址不在地址簿中
	ErrUnknownAddress = errors.New("address: not in address book")
	// ErrDistrictMismatch 区县不属于所选省份
	ErrDistrictMismatch = errors.New("address: district not in selected province")
)

// Book 地址簿视图
type Book struct {
	mu        sync.Mutex
	client    *api.Client
	addresses []api.Address
	provinces []api.Province
	districts []api.District
}

// NewBook 创建地址簿视图
func NewBook(client *api.Client) *Book {
	return &Book{client: client}
}

// Load 拉取地址列表
func (b *Book) Load(ctx context.Context) ([]api.Address, error) {
	addresses, err := b.client.ListAddresses(ctx)
	if err != nil {
		return b.Addresses(), err
	}
	b.mu.Lock()
	b.addresses = addresses
	b.mu.Unlock()
	return b.Addresses(), nil
}

// LoadLocations 并行拉取省份与区县
func (b *Book) LoadLocations(ctx context.Context) error {
	var (
		provinces []api.Province
		districts []api.District
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		provinces, err = b.client.Provinces(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		districts, err = b.client.Districts(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}
	b.mu.Lock()
	b.provinces = provinces
	b.districts = districts
	b.mu.Unlock()
	return nil
}

// Addresses 地址列表快照
func (b *Book) Addresses() []api.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	addresses := make([]api.Address, len(b.addresses))
	copy(addresses, b.addresses)
	return addresses
}

// Provinces 省份列表快照
func (b *Book) Provinces() []api.Province {
	b.mu.Lock()
	defer b.mu.Unlock()
	provinces := make([]api.Province, len(b.provinces))
	copy(provinces, b.provinces)
	return provinces
}

// DistrictsOf 按省份过滤区县
func (b *Book) DistrictsOf(provinceID uint) []api.District {
	b.mu.Lock()
	defer b.mu.Unlock()
	var matched []api.District
	for _, district := range b.districts {
		if district.ProvinceID == provinceID {
			matched = append(matched, district)
		}
	}
	return matched
}

// validateLocation 校验省份与区县成对
// 区县未加载时放行，交给远端校验
func (b *Book) validateLocation(input api.AddressInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.districts) == 0 {
		return nil
	}
	for _, district := range b.districts {
		if district.ID == input.DistrictID {
			if district.ProvinceID != input.ProvinceID {
				return ErrDistrictMismatch
			}
			return nil
		}
	}
	return ErrDistrictMismatch
}

// Create 新增地址，成功后重新拉取列表
func (b *Book) Create(ctx context.Context, input api.AddressInput) ([]api.Address, error) {
	if err := b.validateLocation(input); err != nil {
		return b.Addresses(), err
	}
	input.IsActive = 1
	if err := b.client.CreateAddress(ctx, input); err != nil {
		return b.Addresses(), err
	}
	return b.Load(ctx)
}

// Update 修改地址，成功后重新拉取列表
func (b *Book) Update(ctx context.Context, addressID uint, input api.AddressInput) ([]api.Address, error) {
	if !b.contains(addressID) {
		return b.Addresses(), ErrUnknownAddress
	}
	if err := b.validateLocation(input); err != nil {
		return b.Addresses(), err
	}
	if err := b.client.UpdateAddress(ctx, addressID, input); err != nil {
		return b.Addresses(), err
	}
	return b.Load(ctx)
}

// Delete 删除地址
// 远端成功后本地直接去掉该行，不再额外拉取
func (b *Book) Delete(ctx context.Context, addressID uint) ([]api.Address, error) {
	if !b.contains(addressID) {
		return b.Addresses(), ErrUnknownAddress
	}
	if err := b.client.DeleteAddress(ctx, addressID); err != nil {
		return b.Addresses(), err
	}
	b.mu.Lock()
	kept := b.addresses[:0]
	for _, address := range b.addresses {
		if address.ID != addressID {
			kept = append(kept, address)
		}
	}
	b.addresses = kept
	b.mu.Unlock()
	return b.Addresses(), nil
}

func (b *Book) contains(addressID uint) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, address := range b.addresses {
		if address.ID == addressID {
			return true
		}
	}
	return false
}
