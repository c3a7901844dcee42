package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/komfort-city/site-backend/internal/api"
	"github.com/komfort-city/site-backend/internal/core/service"
	mongodb "github.com/komfort-city/site-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/komfort-city/site-backend/internal/infrastructure/db/redis"
	"github.com/komfort-city/site-backend/internal/infrastructure/storage"
	"github.com/komfort-city/site-backend/internal/pkg/config"
	"github.com/komfort-city/site-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Komfort.City Site Backend
// @version      1.0
// @description  Content and lead-capture API for the Komfort.City site.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "site-backend",
		Pretty:  cfg.IsDevelopment(),
	})

	if cfg.JWTSecret == config.DefaultJWTSecret && !cfg.IsDevelopment() {
		log.Warn().Msg("JWT_SECRET is the development default; set a real secret before serving traffic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, content caching disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	files, err := storage.NewDiskStore(cfg.Media.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Media.UploadDir).Msg("upload directory unusable")
	}

	adminHash, err := service.HashPassword(cfg.Bootstrap.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing bootstrap admin password failed")
	}
	if err := mongodb.EnsureDefaults(ctx, db, cfg.Bootstrap.AdminUsername, adminHash, log); err != nil {
		log.Fatal().Err(err).Msg("database bootstrap failed")
	}

	e := api.NewRouter(cfg, db, rdb, files, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
