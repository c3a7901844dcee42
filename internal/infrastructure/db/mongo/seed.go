package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// EnsureDefaults seeds the documents the system cannot run without: the
// singleton site-info card and a bootstrap admin account. Existing
// documents are never touched. The password arrives pre-hashed.
//
// Marketing content is deliberately not seeded; it is managed through
// the admin endpoints.
func EnsureDefaults(ctx context.Context, db *mongo.Database, adminUsername, adminPasswordHash string, logger zerolog.Logger) error {
	if err := ensureSiteInfo(ctx, db, logger); err != nil {
		return err
	}
	return ensureAdmin(ctx, db, adminUsername, adminPasswordHash, logger)
}

func ensureSiteInfo(ctx context.Context, db *mongo.Database, logger zerolog.Logger) error {
	repo := NewSiteRepository(db)
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	info := domain.SiteInfo{
		CompanyName:    "ТОВ «Комфорт.Сіті»",
		Phone:          "+380 XX XXX XX XX",
		Email:          "info@komfort.city",
		Address:        "Адреса офісу",
		WorkingHours:   "Пн-Пт: 9:00-18:00, Сб-Нд: 10:00-16:00",
		EmergencyPhone: "+380 XX XXX XX XX",
		UpdatedAt:      time.Now().UTC(),
	}
	if _, err := db.Collection(collSiteInfo).InsertOne(ctx, info); err != nil {
		return err
	}

	logger.Info().Msg("default site info created")
	return nil
}

func ensureAdmin(ctx context.Context, db *mongo.Database, username, passwordHash string, logger zerolog.Logger) error {
	repo := NewAuthRepository(db)

	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	account := &domain.Account{
		Username:     username,
		Email:        "admin@komfort.city",
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := repo.Create(ctx, account); err != nil {
		return err
	}

	logger.Warn().Str("username", username).Msg("default admin account created; change the password before going live")
	return nil
}
