package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront-next/internal/localstore"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "1", "exp": expiresAt.Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenMissing(t *testing.T) {
	sess := New(localstore.NewMemoryStore())
	if _, err := sess.Token(context.Background()); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if sess.LoggedIn(context.Background()) {
		t.Fatal("logged in without token")
	}
}

func TestExpiredTokenRejectedLocally(t *testing.T) {
	sess := New(localstore.NewMemoryStore())
	ctx := context.Background()
	if err := sess.SetToken(ctx, signedToken(t, time.Now().Add(-time.Hour))); err != nil {
		t.Fatalf("set token: %v", err)
	}

	if _, err := sess.Token(ctx); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidTokenAccepted(t *testing.T) {
	sess := New(localstore.NewMemoryStore())
	ctx := context.Background()
	want := signedToken(t, time.Now().Add(time.Hour))
	if err := sess.SetToken(ctx, want); err != nil {
		t.Fatalf("set token: %v", err)
	}

	got, err := sess.Token(ctx)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if got != want {
		t.Fatalf("token mismatch")
	}
}

func TestOpaqueTokenPassesThrough(t *testing.T) {
	sess := New(localstore.NewMemoryStore())
	ctx := context.Background()
	if err := sess.SetToken(ctx, "not-a-jwt"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	got, err := sess.Token(ctx)
	if err != nil || got != "not-a-jwt" {
		t.Fatalf("opaque token rejected: %q %v", got, err)
	}
}

func TestClearRemovesToken(t *testing.T) {
	sess := New(localstore.NewMemoryStore())
	ctx := context.Background()
	if err := sess.SetToken(ctx, "token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := sess.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := sess.Token(ctx); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken after clear, got %v", err)
	}
}
