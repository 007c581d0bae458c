package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefront-next/internal/api"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/localstore"
	"github.com/storefront-next/internal/session"
)

func newManagerFixture(t *testing.T) *Manager {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != "budi@example.com" || req.Password != "Rahasia1!" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.LoginResult{AccessToken: "fresh-token", Message: "Login success"})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]api.User{
			"user": {ID: 1, Fullname: "Budi Santoso", Email: "budi@example.com"},
		})
	})
	mux.HandleFunc("PUT /api/users/update", func(w http.ResponseWriter, r *http.Request) {
		var req api.ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RequestType == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Profile updated"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	sess := session.New(localstore.NewMemoryStore())
	client := api.New(&config.APIConfig{BaseURL: server.URL + "/api/"}, sess)
	return NewManager(client, sess)
}

func TestLoginStoresTokenInSession(t *testing.T) {
	manager := newManagerFixture(t)
	ctx := context.Background()

	if manager.LoggedIn(ctx) {
		t.Fatal("logged in before login")
	}
	message, err := manager.Login(ctx, "budi@example.com", "Rahasia1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if message != "Login success" {
		t.Fatalf("unexpected message %q", message)
	}
	if !manager.LoggedIn(ctx) {
		t.Fatal("not logged in after login")
	}

	user, err := manager.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Fullname != "Budi Santoso" {
		t.Fatalf("unexpected user %+v", user)
	}

	if err := manager.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if manager.LoggedIn(ctx) {
		t.Fatal("still logged in after logout")
	}
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	manager := newManagerFixture(t)
	ctx := context.Background()

	_, err := manager.Login(ctx, "budi@example.com", "salah")
	if !errors.Is(err, api.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if manager.LoggedIn(ctx) {
		t.Fatal("logged in after failed login")
	}

	if _, err := manager.Login(ctx, "", ""); !errors.Is(err, ErrEmptyCredentials) {
		t.Fatalf("expected ErrEmptyCredentials, got %v", err)
	}
}

func TestChangeEmailSendsRequestType(t *testing.T) {
	manager := newManagerFixture(t)
	ctx := context.Background()
	if _, err := manager.Login(ctx, "budi@example.com", "Rahasia1!"); err != nil {
		t.Fatalf("login: %v", err)
	}

	message, err := manager.ChangeEmail(ctx, "Rahasia1!", "baru@example.com")
	if err != nil {
		t.Fatalf("change email: %v", err)
	}
	if message != "Profile updated" {
		t.Fatalf("unexpected message %q", message)
	}
}
