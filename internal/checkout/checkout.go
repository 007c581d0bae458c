// Package checkout 结算流程
// 流程被建模为显式的阶段机：购物车、地址、运费报价、
// 整车结算、下单。阶段由当前状态纯函数推导，
// 每类远端刷新持有代数计数器，过期响应直接丢弃
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/storefront-next/internal/api"
)

// MsgSelectCourier 未选择物流时的下单拦截文案
const MsgSelectCourier = "Please select a courier before processing."

var (
	// ErrCourierNotSelected 结算条件不满足，不能下单
	ErrCourierNotSelected = errors.New(MsgSelectCourier)
	// ErrUnknownAddress 地址不在地址列表中
	ErrUnknownAddress = errors.New("checkout: address not in address list")
	// ErrUnknownOption 运费方案不在报价中
	ErrUnknownOption = errors.New("checkout: shipment option not offered")
)

// Stage 结算阶段
type Stage int

const (
	// StageEmptyCart 购物车为空，流程无法继续
	StageEmptyCart Stage = iota
	// StageNeedAddress 没有可用收货地址
	StageNeedAddress
	// StageSelectRate 已有地址，等待选择运费方案
	StageSelectRate
	// StageAwaitCalculation 已选方案，等待整车结算结果
	StageAwaitCalculation
	// StageReady 结算完成，可以下单
	StageReady
)

// String 阶段名
func (s Stage) String() string {
	switch s {
	case StageEmptyCart:
		return "empty_cart"
	case StageNeedAddress:
		return "need_address"
	case StageSelectRate:
		return "select_rate"
	case StageAwaitCalculation:
		return "await_calculation"
	case StageReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State 结算流程状态
type State struct {
	Items             []api.CartItem
	TotalPrice        api.Money
	Addresses         []api.Address
	Couriers          []api.Courier
	SelectedAddressID uint
	Rates             api.ShipmentRates
	Selection         *api.CourierSelection
	Calculation       *api.CartCalculation
	UsedVoucherID     uint
}

// Stage 由状态推导当前阶段
func (s State) Stage() Stage {
	return nextStage(s)
}

// nextStage 阶段推导的纯函数
func nextStage(s State) Stage {
	switch {
	case len(s.Items) == 0:
		return StageEmptyCart
	case s.SelectedAddressID == 0:
		return StageNeedAddress
	case s.Selection == nil:
		return StageSelectRate
	case s.Calculation == nil:
		return StageAwaitCalculation
	default:
		return StageReady
	}
}

// totalWeightGram 整车重量（克）
// 行重量按 weight_kg * quantity * 1000 累加
func totalWeightGram(items []api.CartItem) int {
	total := decimal.Zero
	for _, item := range items {
		line := item.DetailProduct.WeightKG.Decimal.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Mul(decimal.NewFromInt(1000))
		total = total.Add(line)
	}
	return int(total.IntPart())
}

// cartChanges 购物车条目转为请求形状
func cartChanges(items []api.CartItem) []api.CartChange {
	changes := make([]api.CartChange, 0, len(items))
	for _, item := range items {
		changes = append(changes, api.CartChange{
			ProductID: item.DetailProduct.ID,
			Quantity:  item.Quantity,
		})
	}
	return changes
}

// Flow 结算流程
type Flow struct {
	mu      sync.Mutex
	client  *api.Client
	state   State
	rateGen uint64
	calcGen uint64
}

// NewFlow 创建结算流程
func NewFlow(client *api.Client) *Flow {
	return &Flow{client: client}
}

// State 返回状态快照
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Bootstrap 并行加载购物车、地址与物流供应商
// 有地址时默认选中第一个并立即拉取运费报价
func (f *Flow) Bootstrap(ctx context.Context) (State, error) {
	var (
		cartResp  *api.Cart
		addresses []api.Address
		couriers  []api.Courier
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		cartResp, err = f.client.ListCart(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		addresses, err = f.client.ListAddresses(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		couriers, err = f.client.ListCouriers(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return f.State(), err
	}

	f.mu.Lock()
	f.state = State{
		Items:      cartResp.Items,
		TotalPrice: cartResp.TotalPrice,
		Addresses:  addresses,
		Couriers:   couriers,
	}
	if len(addresses) > 0 {
		f.state.SelectedAddressID = addresses[0].ID
	}
	f.rateGen++
	gen := f.rateGen
	f.mu.Unlock()

	if err := f.refreshRates(ctx, gen); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// SelectAddress 切换收货地址
// 切换会作废旧报价与旧结算结果，然后重新询价
func (f *Flow) SelectAddress(ctx context.Context, addressID uint) (State, error) {
	f.mu.Lock()
	found := false
	for _, address := range f.state.Addresses {
		if address.ID == addressID {
			found = true
			break
		}
	}
	if !found {
		f.mu.Unlock()
		return f.State(), ErrUnknownAddress
	}
	f.state.SelectedAddressID = addressID
	f.state.Rates = nil
	f.state.Selection = nil
	f.state.Calculation = nil
	f.rateGen++
	f.calcGen++
	gen := f.rateGen
	f.mu.Unlock()

	if err := f.refreshRates(ctx, gen); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// refreshRates 拉取运费报价
// 没有地址或购物车为空时什么都不做
func (f *Flow) refreshRates(ctx context.Context, gen uint64) error {
	f.mu.Lock()
	if f.state.SelectedAddressID == 0 || len(f.state.Items) == 0 {
		f.mu.Unlock()
		return nil
	}
	req := api.ShipmentOptionRequest{
		SellerID:              f.state.Items[0].DetailProduct.SellerID,
		TotalWeightGram:       totalWeightGram(f.state.Items),
		UserSelectedAddressID: f.state.SelectedAddressID,
	}
	f.mu.Unlock()

	rates, err := f.client.ShipmentOptions(ctx, req)
	if err != nil {
		return err
	}
	f.applyRates(gen, rates)
	return nil
}

// applyRates 提交报价结果，代数不匹配的响应被丢弃
func (f *Flow) applyRates(gen uint64, rates api.ShipmentRates) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.rateGen {
		return false
	}
	f.state.Rates = rates
	return true
}

// SelectShipmentOption 选定某家供应商的某个服务
// 选定后发起整车结算
func (f *Flow) SelectShipmentOption(ctx context.Context, vendorName, service string) (State, error) {
	f.mu.Lock()
	options, ok := f.state.Rates[vendorName]
	if !ok {
		f.mu.Unlock()
		return f.State(), ErrUnknownOption
	}
	var selected *api.ShipmentOption
	for i := range options {
		if options[i].Service == service {
			selected = &options[i]
			break
		}
	}
	if selected == nil {
		f.mu.Unlock()
		return f.State(), ErrUnknownOption
	}
	var sellerID uint
	if len(f.state.Items) > 0 {
		sellerID = f.state.Items[0].DetailProduct.SellerID
	}
	f.state.Selection = &api.CourierSelection{
		SelectedCourier: vendorName,
		SelectedService: service,
		SellerID:        sellerID,
	}
	f.state.Calculation = nil
	f.calcGen++
	gen := f.calcGen
	f.mu.Unlock()

	if err := f.refreshCalculation(ctx, gen); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// refreshCalculation 整车结算
// 地址或物流方案缺失时什么都不做
func (f *Flow) refreshCalculation(ctx context.Context, gen uint64) error {
	f.mu.Lock()
	if f.state.SelectedAddressID == 0 || f.state.Selection == nil {
		f.mu.Unlock()
		return nil
	}
	req := api.CalculateCartRequest{
		Carts:                 cartChanges(f.state.Items),
		SelectedCourier:       []api.CourierSelection{*f.state.Selection},
		UserSelectedAddressID: f.state.SelectedAddressID,
	}
	f.mu.Unlock()

	calc, err := f.client.CalculateCart(ctx, req)
	if err != nil {
		return err
	}
	f.applyCalculation(gen, calc)
	return nil
}

// applyCalculation 提交结算结果，代数不匹配的响应被丢弃
func (f *Flow) applyCalculation(gen uint64, calc *api.CartCalculation) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.calcGen {
		return false
	}
	f.state.Calculation = calc
	return true
}

// ApplyVoucher 在结算中使用一张已领取的优惠券
// 远端标记成功后重新结算
func (f *Flow) ApplyVoucher(ctx context.Context, userVoucherID uint) (State, error) {
	if err := f.client.UseVoucher(ctx, userVoucherID); err != nil {
		return f.State(), err
	}

	f.mu.Lock()
	f.state.UsedVoucherID = userVoucherID
	f.state.Calculation = nil
	f.calcGen++
	gen := f.calcGen
	f.mu.Unlock()

	if err := f.refreshCalculation(ctx, gen); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// Confirm 下单
// 结算结果、地址与物流方案齐备才放行，返回支付跳转信息
func (f *Flow) Confirm(ctx context.Context) (*api.CreateTransactionResult, error) {
	f.mu.Lock()
	if f.state.Calculation == nil || f.state.SelectedAddressID == 0 || f.state.Selection == nil {
		f.mu.Unlock()
		return nil, ErrCourierNotSelected
	}
	req := api.CalculateCartRequest{
		Carts:                 cartChanges(f.state.Items),
		SelectedCourier:       []api.CourierSelection{*f.state.Selection},
		UserSelectedAddressID: f.state.SelectedAddressID,
	}
	f.mu.Unlock()

	return f.client.CreateTransaction(ctx, req)
}
