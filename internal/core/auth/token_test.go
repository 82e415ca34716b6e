package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(Claims{Kind: domain.KindAdmin, Subject: "64f0c2", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Kind != domain.KindAdmin {
		t.Fatalf("expected kind %q, got %q", domain.KindAdmin, claims.Kind)
	}
	if claims.Subject != "64f0c2" {
		t.Fatalf("expected subject 64f0c2, got %q", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %q", claims.Email)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	m.ttl = -time.Second // expiry already in the past

	token, err := m.Issue(Claims{Kind: domain.KindCustomer, Subject: "id1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestTokenManager_InvalidSignature(t *testing.T) {
	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, err := issuer.Issue(Claims{Kind: domain.KindUser, Subject: "id1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestTokenManager_TwoTokensSamePrincipal(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	claims := Claims{Kind: domain.KindCustomer, Subject: "same-id", Email: "a@x.com"}

	first, err := m.Issue(claims)
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // force a different iat
	second, err := m.Issue(claims)
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens for consecutive logins")
	}

	for _, token := range []string{first, second} {
		got, err := m.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if got.Subject != "same-id" {
			t.Fatalf("expected same principal id, got %q", got.Subject)
		}
	}
}

func TestNewTokenManager_TTLDefault(t *testing.T) {
	m := NewTokenManager("secret", 0)
	if m.TTL() != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, m.TTL())
	}
}
