package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/painel/internal/config"
	"github.com/diewo77/painel/internal/db"
	"github.com/diewo77/painel/internal/devbackend"
	"github.com/diewo77/painel/internal/logging"
	"github.com/diewo77/painel/internal/middleware"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and the admin seed, then exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	dcfg := cfg.DevBackend
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	store, err := db.Open(dcfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	if err := db.Migrate(store); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := db.SeedAdmin(store, dcfg.AdminEmail, dcfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("seeding failed")
	}
	if *migrateOnlyFlag {
		log.Info("migrations completed")
		return
	}

	backend := devbackend.New(store, devbackend.Options{
		Tokens: devbackend.NewTokens(dcfg.JWTSecret, dcfg.TokenTTL),
		Logger: log,
	})
	srv := &http.Server{
		Addr:         ":" + dcfg.Port,
		Handler:      middleware.Logging(log)(middleware.Recover(backend)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.WithField("port", dcfg.Port).WithField("driver", dcfg.Database.Driver).Info("devbackend starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("devbackend stopped")
}
