package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/config"
	"github.com/diewo77/painel/internal/logging"
	"github.com/diewo77/painel/view"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	auth.SetSecureCookies(cfg.App.SecureCookies)
	if !i18n.SetFallback(cfg.App.DefaultLang) {
		log.WithField("lang", cfg.App.DefaultLang).Warn("unsupported DEFAULT_LANG, keeping pt")
	}
	if cfg.App.Dev {
		if st, err := os.Stat("view/templates"); err == nil && st.IsDir() {
			view.SetBaseDir("view/templates")
			log.Info("templates reloaded from disk on every render")
		}
	}

	backend := api.New(api.Options{
		BaseURL:   cfg.Backend.BaseURL,
		LoginPath: cfg.Backend.LoginPath,
		Timeout:   cfg.Backend.Timeout,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      NewApp(backend, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).WithField("backend", cfg.Backend.BaseURL).WithField("dev", cfg.App.Dev).Info("panel starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server stopped gracefully")
}
