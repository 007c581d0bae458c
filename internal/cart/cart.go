// Package cart 购物车视图
// 本地状态只是服务端购物车的缓存，所有写操作先提交远端，
// 成功后才通过纯函数变换本地状态
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/storefront-next/internal/api"
)

// MsgEmptyCart 空购物车提示文案
const MsgEmptyCart = "No products in the cart"

var (
	// ErrQuantityInvalid 数量为负
	ErrQuantityInvalid = errors.New("cart: quantity must not be negative")
	// ErrUnknownProduct 商品不在购物车中
	ErrUnknownProduct = errors.New("cart: product not in cart")
)

// Line 购物车行
type Line struct {
	ProductID uint
	Name      string
	Price     api.Money
	ImageURL  string
	Stock     int
	WeightKG  api.Money
	SellerID  uint
	Quantity  int
	SubTotal  api.Money
}

// State 购物车状态快照
// TotalPrice 恒等于各行 SubTotal 之和
type State struct {
	Lines      []Line
	TotalPrice api.Money
}

// IsEmpty 购物车是否为空
func (s State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Find 查找购物车行
func (s State) Find(productID uint) (Line, bool) {
	for _, line := range s.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return Line{}, false
}

// clone 深拷贝状态，变换不修改旧快照
func (s State) clone() State {
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)
	return State{Lines: lines, TotalPrice: s.TotalPrice}
}

// recomputeTotal 由各行小计重新推导总价
func recomputeTotal(s State) State {
	total := api.NewMoney(0)
	for _, line := range s.Lines {
		total = total.Add(line.SubTotal)
	}
	s.TotalPrice = total
	return s
}

// applyQuantity 数量变更的纯变换
func applyQuantity(s State, productID uint, quantity int) State {
	next := s.clone()
	for i, line := range next.Lines {
		if line.ProductID == productID {
			line.Quantity = quantity
			line.SubTotal = line.Price.Mul(quantity)
			next.Lines[i] = line
			break
		}
	}
	return recomputeTotal(next)
}

// applyRemove 删行的纯变换
func applyRemove(s State, productID uint) State {
	next := s.clone()
	lines := next.Lines[:0]
	for _, line := range next.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	next.Lines = lines
	return recomputeTotal(next)
}

// fromAPI 把上游购物车映射为本地状态
func fromAPI(cart *api.Cart) State {
	state := State{}
	for _, item := range cart.Items {
		state.Lines = append(state.Lines, Line{
			ProductID: item.DetailProduct.ID,
			Name:      item.DetailProduct.Name,
			Price:     item.DetailProduct.Price,
			ImageURL:  item.DetailProduct.ImageURL,
			Stock:     item.DetailProduct.Stock,
			WeightKG:  item.DetailProduct.WeightKG,
			SellerID:  item.DetailProduct.SellerID,
			Quantity:  item.Quantity,
			SubTotal:  item.SubTotal,
		})
	}
	return recomputeTotal(state)
}

// View 购物车视图
type View struct {
	mu     sync.Mutex
	client *api.Client
	state  State
}

// NewView 创建购物车视图
func NewView(client *api.Client) *View {
	return &View{client: client}
}

// State 返回当前状态快照
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Load 从服务端刷新购物车
func (v *View) Load(ctx context.Context) (State, error) {
	cart, err := v.client.ListCart(ctx)
	if err != nil {
		return v.State(), err
	}
	state := fromAPI(cart)
	v.mu.Lock()
	v.state = state
	v.mu.Unlock()
	return state.clone(), nil
}

// SetQuantity 修改商品数量
// 数量超过库存时收敛到库存上限，负数直接拒绝。
// 远端更新失败时本地状态保持不变
func (v *View) SetQuantity(ctx context.Context, productID uint, quantity int) (State, error) {
	if quantity < 0 {
		return v.State(), ErrQuantityInvalid
	}

	v.mu.Lock()
	line, ok := v.state.Find(productID)
	v.mu.Unlock()
	if !ok {
		return v.State(), ErrUnknownProduct
	}
	if quantity > line.Stock {
		quantity = line.Stock
	}
	if quantity == 0 {
		return v.RemoveLine(ctx, productID)
	}

	if err := v.client.UpsertCart(ctx, []api.CartChange{{ProductID: productID, Quantity: quantity}}); err != nil {
		return v.State(), err
	}

	v.mu.Lock()
	v.state = applyQuantity(v.state, productID, quantity)
	state := v.state.clone()
	v.mu.Unlock()
	return state, nil
}

// AddProduct 向购物车加入商品
// 商品已在车中时数量累加，之后重新拉取服务端状态
func (v *View) AddProduct(ctx context.Context, productID uint, quantity int) (State, error) {
	if quantity <= 0 {
		return v.State(), ErrQuantityInvalid
	}
	if line, ok := v.State().Find(productID); ok {
		quantity += line.Quantity
	}
	if err := v.client.UpsertCart(ctx, []api.CartChange{{ProductID: productID, Quantity: quantity}}); err != nil {
		return v.State(), err
	}
	return v.Load(ctx)
}

// RemoveLine 删除购物车行
func (v *View) RemoveLine(ctx context.Context, productID uint) (State, error) {
	v.mu.Lock()
	_, ok := v.state.Find(productID)
	v.mu.Unlock()
	if !ok {
		return v.State(), ErrUnknownProduct
	}

	if err := v.client.DeleteCartLine(ctx, productID); err != nil {
		return v.State(), err
	}

	v.mu.Lock()
	v.state = applyRemove(v.state, productID)
	state := v.state.clone()
	v.mu.Unlock()
	return state, nil
}

// EmptyMessage 空购物车文案，非空时返回空串
func (v *View) EmptyMessage() string {
	if v.State().IsEmpty() {
		return MsgEmptyCart
	}
	return ""
}
