package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := session.New(localstore.NewMemoryStore())
	client := New(&config.APIConfig{BaseURL: server.URL + "/api/"}, sess)
	return client, server
}

func TestAuthedCallWithoutTokenFailsBeforeNetwork(t *testing.T) {
	var hits int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	_, err := client.ListCart(context.Background())
	if !errors.Is(err, session.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no upstream request, got %d", hits)
	}
}

func TestAuthedCallSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Cart{})
	}))

	if err := client.Session().SetToken(context.Background(), "opaque-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if _, err := client.ListCart(context.Background()); err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if gotAuth != "Bearer opaque-token" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestUpstreamErrorBodyIsSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Product 9 not found"}`))
	}))
	if err := client.Session().SetToken(context.Background(), "opaque-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	_, err := client.ListCart(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if want := "Product 9 not found"; err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to carry %q, got %v", want, err)
	}
}

func TestQueryProductsBuildsQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(ProductPage{CurrentPage: 1})
	}))

	_, err := client.QueryProducts(context.Background(), ProductQuery{
		Price:      "asc",
		Date:       "date",
		Rating:     "rating",
		Page:       2,
		PerPage:    100,
		CategoryID: 3,
	})
	if err != nil {
		t.Fatalf("query products: %v", err)
	}
	for _, want := range []string{"price=asc", "page=2", "per_page=100", "category_id=3", "province_id="} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestGetProductRequestsUserProductPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(ProductDetail{ID: 7, Name: "Mechanical Keyboard", Stock: 3})
	}))

	detail, err := client.GetProduct(context.Background(), 7)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if gotPath != "/api/products/user/product/7" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if detail.Name != "Mechanical Keyboard" || detail.Stock != 3 {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestListTransactionsDecodesNullDiscount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"current_page": 1,
			"total_items": 1,
			"total_page": 1,
			"transactions": [{
				"id": "tx-1",
				"gross_amount": 25000,
				"total_discount": null,
				"transaction_status": 1,
				"transaction_status_name": "WAITING_FOR_PAYMENT"
			}]
		}`))
	}))
	if err := client.Session().SetToken(context.Background(), "opaque-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	page, err := client.ListTransactions(context.Background(), TransactionQuery{})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(page.Transactions) != 1 {
		t.Fatalf("expected one transaction, got %d", len(page.Transactions))
	}
	if !page.Transactions[0].TotalDiscount.IsZero() {
		t.Fatalf("null discount should decode as zero, got %s", page.Transactions[0].TotalDiscount)
	}
	if !page.Transactions[0].GrossAmount.Equal(NewMoney(25000)) {
		t.Fatalf("unexpected gross amount %s", page.Transactions[0].GrossAmount)
	}
}

func TestMoneyUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":"12.5","b":10000}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A.String() != "12.5" {
		t.Fatalf("unexpected string money %s", payload.A)
	}
	if !payload.B.Equal(NewMoney(10000)) {
		t.Fatalf("unexpected numeric money %s", payload.B)
	}
	if payload.B.Mul(3).String() != "30000" {
		t.Fatalf("unexpected product %s", payload.B.Mul(3))
	}
}
