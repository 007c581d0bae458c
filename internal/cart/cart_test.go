package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/session"
)

type fakeUpstream struct {
	cart     api.Cart
	failNext atomic.Bool
	writes   atomic.Int32
}

func newFakeUpstream(t *testing.T) (*fakeUpstream, *api.Client) {
	t.Helper()
	upstream := &fakeUpstream{
		cart: api.Cart{
			Items: []api.CartItem{
				{
					DetailProduct: api.CartItemDetail{ID: 7, Name: "Arabica Beans", Price: api.NewMoney(10000), Stock: 5},
					Quantity:      2,
					SubTotal:      api.NewMoney(20000),
				},
			},
			TotalPrice: api.NewMoney(20000),
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/carts/list", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(upstream.cart)
	})
	mux.HandleFunc("POST /api/carts/createupdate", func(w http.ResponseWriter, r *http.Request) {
		upstream.writes.Add(1)
		if upstream.failNext.Swap(false) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"upstream down"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Cart created/updated successfully"})
	})
	mux.HandleFunc("DELETE /api/carts/delete/", func(w http.ResponseWriter, r *http.Request) {
		upstream.writes.Add(1)
		if upstream.failNext.Swap(false) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"upstream down"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Cart item deleted successfully"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	sess := session.New(localstore.NewMemoryStore())
	if err := sess.SetToken(context.Background(), "test-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	client := api.New(&config.APIConfig{BaseURL: server.URL + "/api/"}, sess)
	return upstream, client
}

func TestQuantityChangeRecomputesTotals(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	state, err := view.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !state.TotalPrice.Equal(api.NewMoney(20000)) {
		t.Fatalf("unexpected total %s", state.TotalPrice)
	}

	state, err = view.SetQuantity(ctx, 7, 3)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	line, _ := state.Find(7)
	if line.Quantity != 3 || !line.SubTotal.Equal(api.NewMoney(30000)) {
		t.Fatalf("unexpected line %+v", line)
	}
	if !state.TotalPrice.Equal(api.NewMoney(30000)) {
		t.Fatalf("unexpected total %s", state.TotalPrice)
	}
}

func TestQuantityClampsToStock(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	if _, err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	state, err := view.SetQuantity(ctx, 7, 99)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	line, _ := state.Find(7)
	if line.Quantity != 5 {
		t.Fatalf("expected quantity clamped to stock 5, got %d", line.Quantity)
	}
}

func TestNegativeQuantityRejectedWithoutNetwork(t *testing.T) {
	upstream, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	if _, err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err := view.SetQuantity(ctx, 7, -1)
	if !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if upstream.writes.Load() != 0 {
		t.Fatalf("expected no upstream writes, got %d", upstream.writes.Load())
	}
}

func TestFailedUpdateLeavesStateUntouched(t *testing.T) {
	upstream, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	if _, err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	upstream.failNext.Store(true)
	_, err := view.SetQuantity(ctx, 7, 4)
	if !errors.Is(err, api.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}

	state := view.State()
	line, _ := state.Find(7)
	if line.Quantity != 2 || !state.TotalPrice.Equal(api.NewMoney(20000)) {
		t.Fatalf("state changed after failed update: %+v", state)
	}
}

func TestRemoveLastLineEmptiesCart(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	if _, err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	state, err := view.RemoveLine(ctx, 7)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !state.IsEmpty() || !state.TotalPrice.IsZero() {
		t.Fatalf("expected empty cart, got %+v", state)
	}
	if view.EmptyMessage() != MsgEmptyCart {
		t.Fatalf("unexpected empty message %q", view.EmptyMessage())
	}
}

func TestUnknownProductRejected(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewView(client)
	ctx := context.Background()

	if _, err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := view.SetQuantity(ctx, 999, 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}
