// Package main is the entry point for the Remix Jokes server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"remixjokes/src/app/server"
	"remixjokes/src/core/ports"
	"remixjokes/src/infra/cache"
	"remixjokes/src/infra/config"
	"remixjokes/src/infra/db"
	"remixjokes/src/infra/logger"
	"remixjokes/src/infra/repo"
	"remixjokes/src/infra/security"
	"remixjokes/src/infra/session"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"redis", cfg.Redis.Enabled(),
	)

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.AutoMigrate {
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
	}

	store := repo.NewPostgresRepository(pg, log)

	codec, err := session.NewJWTCodec(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.MaxAge)
	if err != nil {
		return err
	}

	// Server-side revocation only when Redis is configured; a nil interface disables it.
	var revoker ports.SessionRevoker
	if cfg.Redis.Enabled() {
		rdb, err := cache.New(ctx, cfg.Redis, logger.WithComponent(log, "redis"))
		if err != nil {
			return err
		}
		defer rdb.Close()
		revoker = session.NewRedisRevoker(rdb)
	}

	srv := server.New(cfg, log, server.Deps{
		DB:       pg,
		Users:    store,
		Jokes:    store,
		Hasher:   security.NewBcryptHasher(0),
		Sessions: codec,
		Revoker:  revoker,
	})

	// Run blocks until shutdown signal is received
	return srv.Run()
}
