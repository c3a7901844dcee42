package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, expiresAt, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("expected subject admin, got %q", subject)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.TTL() != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %v", svc.TTL())
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret", time.Hour).Issue("admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("other", time.Hour).Validate(token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing exp, got %v", err)
	}
}

func TestTokenService_ForeignAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// alg=none with an empty signature must never pass.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(unsigned); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for alg=none, got %v", err)
	}
}

func TestTokenService_EmptySubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty subject, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Validate("not.a.token"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
