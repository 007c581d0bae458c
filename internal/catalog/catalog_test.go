package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/session"
)

func newBrowserFixture(t *testing.T, totalProducts, perPage int) *Browser {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/user/query", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		totalPage := (totalProducts + perPage - 1) / perPage
		start := (page - 1) * perPage
		var products []api.Product
		for i := start; i < start+perPage && i < totalProducts; i++ {
			category := uint(1)
			if i%2 == 1 {
				category = 2
			}
			products = append(products, api.Product{
				ID:         uint(i + 1),
				Name:       fmt.Sprintf("Kopi %03d", i+1),
				CategoryID: category,
			})
		}
		_ = json.NewEncoder(w).Encode(api.ProductPage{
			CurrentPage: page,
			Products:    products,
			TotalItems:  totalProducts,
			TotalPage:   totalPage,
		})
	})
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.Category{{ID: 1, CategoryName: "Beans"}, {ID: 2, CategoryName: "Tools"}})
	})
	mux.HandleFunc("GET /api/locations/provinces", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.Province{{ID: 5, Province: "Jawa Barat"}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	sess := session.New(localstore.NewMemoryStore())
	client := api.New(&config.APIConfig{BaseURL: server.URL + "/api/"}, sess)
	return NewBrowser(client)
}

func TestLoadAndVisibleWindow(t *testing.T) {
	browser := newBrowserFixture(t, 30, 10)
	if err := browser.Load(context.Background(), Query{PerPage: 10}); err != nil {
		t.Fatalf("load: %v", err)
	}

	visible := browser.Visible()
	if len(visible) != 8 {
		t.Fatalf("expected 8 visible products, got %d", len(visible))
	}
	if len(browser.Categories()) != 2 || len(browser.Provinces()) != 1 {
		t.Fatal("categories or provinces missing")
	}
}

func TestShowMoreAppendsNextPage(t *testing.T) {
	browser := newBrowserFixture(t, 30, 10)
	ctx := context.Background()
	if err := browser.Load(ctx, Query{PerPage: 10}); err != nil {
		t.Fatalf("load: %v", err)
	}

	// 第一次展开仍在本页内
	if err := browser.ShowMore(ctx); err != nil {
		t.Fatalf("show more: %v", err)
	}
	if len(browser.Visible()) != 10 {
		t.Fatalf("expected 10 visible, got %d", len(browser.Visible()))
	}

	// 第二次展开超出本页，应追加下一页
	if err := browser.ShowMore(ctx); err != nil {
		t.Fatalf("show more: %v", err)
	}
	if len(browser.Visible()) != 20 {
		t.Fatalf("expected 20 visible after next page, got %d", len(browser.Visible()))
	}

	browser.Collapse()
	if len(browser.Visible()) != 8 {
		t.Fatalf("expected collapse to 8, got %d", len(browser.Visible()))
	}
}

func TestFilterByNameAndCategory(t *testing.T) {
	browser := newBrowserFixture(t, 10, 10)
	if err := browser.Load(context.Background(), Query{PerPage: 10}); err != nil {
		t.Fatalf("load: %v", err)
	}

	matched := browser.Filter("kopi 00", 0)
	if len(matched) != 9 {
		t.Fatalf("expected 9 name matches, got %d", len(matched))
	}
	matched = browser.Filter("", 2)
	for _, product := range matched {
		if product.CategoryID != 2 {
			t.Fatalf("category filter leaked product %+v", product)
		}
	}
	if got := browser.Filter("tidak ada", 0); got != nil {
		t.Fatalf("expected no matches, got %+v", got)
	}
}
