// Package purchase 订单历史
// 列表分页由远端完成，评价标记保存在本地，
// 重新拉取列表后标记仍然有效
package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/pagination"
)

var (
	// ErrActionNotAllowed 当前交易状态不允许该操作
	ErrActionNotAllowed = errors.New("purchase: action not allowed for transaction status")
	// ErrRatingInvalid 评分越界
	ErrRatingInvalid = errors.New("purchase: rating out of range")
	// ErrUnknownTransaction 交易不在当前列表中
	ErrUnknownTransaction = errors.New("purchase: transaction not loaded")
)

// Item 带本地评价标记的交易
type Item struct {
	api.Transaction
	Reviewed bool `json:"reviewed"`
}

// Query 列表查询条件
type Query struct {
	Page   int
	Date   string
	Status int
}

// State 列表状态快照
type State struct {
	Items       []Item
	CurrentPage int
	TotalItems  int
	TotalPages  int
	Query       Query
}

// PageNumbers 供分页控件使用的页码序列
func (s State) PageNumbers() []int {
	return pagination.Numbers(s.CurrentPage, s.TotalPages)
}

// History 订单历史视图
type History struct {
	mu     sync.Mutex
	client *api.Client
	store  localstore.Store
	state  State
}

// NewHistory 创建订单历史视图
func NewHistory(client *api.Client, store localstore.Store) *History {
	return &History{client: client, store: store}
}

// State 返回状态快照
func (h *History) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot()
}

func (h *History) snapshot() State {
	items := make([]Item, len(h.state.Items))
	copy(items, h.state.Items)
	state := h.state
	state.Items = items
	return state
}

// Load 拉取一页交易并附加本地评价标记
func (h *History) Load(ctx context.Context, query Query) (State, error) {
	if query.Date == "" {
		query.Date = constants.SortDateNewest
	}
	page, err := h.client.ListTransactions(ctx, api.TransactionQuery{
		Page:    query.Page,
		PerPage: 10,
		Date:    query.Date,
		Status:  query.Status,
	})
	if err != nil {
		return h.State(), err
	}

	items := make([]Item, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		reviewed, err := localstore.IsTransactionReviewed(ctx, h.store, tx.ID)
		if err != nil {
			return h.State(), err
		}
		items = append(items, Item{Transaction: tx, Reviewed: reviewed})
	}

	h.mu.Lock()
	h.state = State{
		Items:       items,
		CurrentPage: page.CurrentPage,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPage,
		Query:       query,
	}
	state := h.snapshot()
	h.mu.Unlock()
	return state, nil
}

// Search 在已加载的一页内按交易号子串过滤
func (h *History) Search(term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	state := h.State()
	if term == "" {
		return state.Items
	}
	var matched []Item
	for _, item := range state.Items {
		if strings.Contains(strings.ToLower(item.ID), term) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (h *History) find(transactionID string) (Item, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, item := range h.state.Items {
		if item.ID == transactionID {
			return item, true
		}
	}
	return Item{}, false
}

// CanPay 是否展示支付入口
func CanPay(item Item) bool {
	return item.TransactionStatusName == constants.TransactionStatusNameWaitingForPayment &&
		item.PaymentLink != ""
}

// CanCancel 是否允许取消
func CanCancel(item Item) bool {
	return item.TransactionStatusName == constants.TransactionStatusNameWaitingForPayment
}

// CanReview 是否允许评价
func CanReview(item Item) bool {
	return item.TransactionStatusName == constants.TransactionStatusNameDelivered && !item.Reviewed
}

// SubmitReview 提交交易评价
// 远端成功后本地记录该交易已评价，防止重复入口
func (h *History) SubmitReview(ctx context.Context, transactionID string, reviews []api.ProductReviewInput) (string, error) {
	item, ok := h.find(transactionID)
	if !ok {
		return "", ErrUnknownTransaction
	}
	if !CanReview(item) {
		return "", ErrActionNotAllowed
	}
	for _, review := range reviews {
		if review.Rating < constants.ReviewRatingMin || review.Rating > constants.ReviewRatingMax {
			return "", fmt.Errorf("%w: %d", ErrRatingInvalid, review.Rating)
		}
	}

	message, err := h.client.ReviewTransaction(ctx, transactionID, reviews)
	if err != nil {
		return "", err
	}
	if err := localstore.MarkTransactionReviewed(ctx, h.store, transactionID); err != nil {
		return message, err
	}

	h.mu.Lock()
	for i := range h.state.Items {
		if h.state.Items[i].ID == transactionID {
			h.state.Items[i].Reviewed = true
		}
	}
	h.mu.Unlock()
	return message, nil
}

// Cancel 取消待支付交易，成功后重新拉取当前页
func (h *History) Cancel(ctx context.Context, transactionID string) (State, error) {
	item, ok := h.find(transactionID)
	if !ok {
		return h.State(), ErrUnknownTransaction
	}
	if !CanCancel(item) {
		return h.State(), ErrActionNotAllowed
	}
	if err := h.client.CancelTransaction(ctx, transactionID); err != nil {
		return h.State(), err
	}
	return h.Load(ctx, h.State().Query)
}
