package voucher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/session"
)

func newSelectorFixture(t *testing.T, claimCalls *atomic.Int32) (*Selector, localstore.Store) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sellervouchers/publiclist/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.VoucherDetail{
			{ID: 4, Title: "Grand Opening", Percentage: 10},
			{ID: 9, Title: "Free Ongkir", Percentage: 100},
		})
	})
	mux.HandleFunc("POST /api/usersellervouchers/save/", func(w http.ResponseWriter, r *http.Request) {
		claimCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Voucher claimed"})
	})
	mux.HandleFunc("GET /api/usersellervouchers/list", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.UserVoucher{
			{ID: 77, SellerVoucherID: 4, SellerVoucherDetail: api.VoucherDetail{ID: 4, Title: "Grand Opening"}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := localstore.NewMemoryStore()
	sess := session.New(store)
	if err := sess.SetToken(context.Background(), "test-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	client := api.New(&config.APIConfig{BaseURL: server.URL + "/api/"}, sess)
	return NewSelector(client, store), store
}

func TestClaimMarksVoucherLocally(t *testing.T) {
	var claimCalls atomic.Int32
	selector, store := newSelectorFixture(t, &claimCalls)
	ctx := context.Background()

	if err := selector.Claim(ctx, 4); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimCalls.Load() != 1 {
		t.Fatalf("expected one claim call, got %d", claimCalls.Load())
	}
	claimed, err := localstore.IsVoucherClaimed(ctx, store, 4)
	if err != nil || !claimed {
		t.Fatalf("voucher not recorded as claimed: %v %v", claimed, err)
	}

	vouchers, err := selector.SellerVouchers(ctx, 3)
	if err != nil {
		t.Fatalf("seller vouchers: %v", err)
	}
	if len(vouchers) != 2 {
		t.Fatalf("expected two vouchers, got %d", len(vouchers))
	}
	for _, v := range vouchers {
		if v.ID == 4 && !v.Claimed {
			t.Fatal("claimed voucher not flagged")
		}
		if v.ID == 9 && v.Claimed {
			t.Fatal("unclaimed voucher flagged")
		}
	}
}

func TestMineListsUserVouchers(t *testing.T) {
	var claimCalls atomic.Int32
	selector, _ := newSelectorFixture(t, &claimCalls)

	mine, err := selector.Mine(context.Background())
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != 77 {
		t.Fatalf("unexpected vouchers %+v", mine)
	}
}
