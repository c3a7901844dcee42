package ports

import (
	"context"
	"time"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// AuthRepository persists administrator accounts.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// RecordLogin stamps the account's last_login time.
	RecordLogin(ctx context.Context, username string, at time.Time) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// TokenService issues and validates the signed bearer tokens carried on
// admin requests. Tokens are self-contained; nothing is stored server-side.
type TokenService interface {
	Issue(subject string) (token string, expiresAt time.Time, err error)
	// Validate returns the subject claim, or an error when the signature,
	// expiry, or subject is unacceptable. Expiry is compared strictly
	// against the validation instant; no clock-skew leeway is granted.
	Validate(raw string) (subject string, err error)
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

// AuthService implements the admin credential flows.
type AuthService interface {
	// Login returns domain.ErrInvalidCredentials for an unknown username,
	// an inactive account, and a wrong password alike.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	Account(ctx context.Context, username string) (*domain.Account, error)
}
