package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// AuthService implements admin login, password change, and account lookup.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// HashPassword produces a salted bcrypt digest. Two calls over the same
// password yield different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches digest. A malformed
// digest is simply no match; the error never reaches auth control flow.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Login authenticates the credentials and mints a bearer token. An
// unknown username, an inactive account, and a wrong password all return
// domain.ErrInvalidCredentials; the caller cannot tell which check
// failed. On success the account's last_login is stamped best-effort.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !account.Active || !VerifyPassword(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, username, now); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to stamp last_login")
	} else {
		account.LastLogin = &now
	}

	token, expiresAt, err := s.tokens.Issue(account.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("admin logged in")

	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, account.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, account.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("admin password changed")
	return nil
}

// Account returns the account behind an authenticated principal.
func (s *AuthService) Account(ctx context.Context, username string) (*domain.Account, error) {
	return s.repo.FindByUsername(ctx, username)
}
