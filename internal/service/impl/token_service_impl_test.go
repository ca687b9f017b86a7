package impl

import (
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain"
)

func newTokenService(ttl time.Duration) *TokenServiceImpl {
	return NewTokenServiceHS256(TokenConfig{
		Issuer:     "storefront-test",
		SigningKey: []byte("test-signing-key"),
		TTL:        ttl,
	})
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc := newTokenService(time.Hour)
	user := &domain.User{ID: 42, Email: "a@x.com"}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected an exp claim when TTL is configured")
	}
}

func TestZeroTTLOmitsExpiry(t *testing.T) {
	svc := newTokenService(0)

	token, err := svc.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatal("expected no exp claim when TTL is zero")
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := newTokenService(time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyBadSignature(t *testing.T) {
	svc := newTokenService(time.Hour)
	other := NewTokenServiceHS256(TokenConfig{
		Issuer:     "storefront-test",
		SigningKey: []byte("a-different-key"),
		TTL:        time.Hour,
	})

	token, err := other.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTokenService(time.Nanosecond)

	token, err := svc.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyIsPure(t *testing.T) {
	svc := newTokenService(time.Hour)

	token, err := svc.Issue(&domain.User{ID: 7, Email: "b@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	for i := 0; i < 3; i++ {
		claims, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("verify #%d: %v", i, err)
		}
		if claims.UserID != 7 {
			t.Fatalf("verify #%d: unexpected claims %+v", i, claims)
		}
	}
}
