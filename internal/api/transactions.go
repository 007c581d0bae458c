package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TransactionQuery 交易列表查询条件
type TransactionQuery struct {
	Page    int
	PerPage int
	Date    string
	Tx      string
	Status  int
}

func (q TransactionQuery) values() url.Values {
	values := url.Values{}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	values.Set("per_page", strconv.Itoa(perPage))
	if q.Date != "" {
		values.Set("date", q.Date)
	}
	if strings.TrimSpace(q.Tx) != "" {
		values.Set("tx", strings.TrimSpace(q.Tx))
	}
	if q.Status > 0 {
		values.Set("status", strconv.Itoa(q.Status))
	}
	return values
}

// CreateTransaction 下单
// 上游在 Midtrans 创建支付并返回跳转地址
func (c *Client) CreateTransaction(ctx context.Context, req CalculateCartRequest) (*CreateTransactionResult, error) {
	var result CreateTransactionResult
	if err := c.postAuthed(ctx, "transactions/create", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTransactions 交易分页查询
func (c *Client) ListTransactions(ctx context.Context, query TransactionQuery) (*TransactionPage, error) {
	var page TransactionPage
	if err := c.getAuthed(ctx, "transactions/", query.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ReviewTransaction 提交交易评价
func (c *Client) ReviewTransaction(ctx context.Context, transactionID string, reviews []ProductReviewInput) (string, error) {
	body := struct {
		Reviews []ProductReviewInput `json:"reviews"`
	}{Reviews: reviews}
	var result messageResult
	if err := c.postAuthed(ctx, fmt.Sprintf("transactions/review/%s", transactionID), body, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// CancelTransaction 取消交易
func (c *Client) CancelTransaction(ctx context.Context, transactionID string) error {
	return c.postAuthed(ctx, fmt.Sprintf("transactions/cancel/%s", transactionID), nil, nil)
}
