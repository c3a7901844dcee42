package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and validates HS256 bearer tokens carrying the
// account username as the subject claim. The signing secret is injected
// once at construction; rotating it invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject expiring ttl from now.
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies raw, returning the subject claim.
// Rejects a foreign signing method or secret, an exp at or before the
// validation instant (no leeway), and a missing or empty subject. All
// failures collapse into domain.ErrInvalidCredentials so callers cannot
// leak which check failed.
func (s *TokenService) Validate(raw string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrInvalidCredentials
	}
	return subject, nil
}
