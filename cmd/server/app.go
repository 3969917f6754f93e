package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/httpx"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/handlers"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/view"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	handler http.Handler
}

// NewApp creates the panel with every screen talking to backend.
func NewApp(backend *api.Client, log logrus.FieldLogger) *App {
	app := &App{mux: http.NewServeMux()}
	app.setupRoutes(backend)
	// Recover runs inside Logging so a panic is logged under its request id.
	app.handler = middleware.Logging(log)(middleware.Recover(middleware.Prefs(auth.Middleware(app.mux))))
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes(backend *api.Client) {
	// ─────────────────────────────────────────────────────────────────────────
	// Screens (sign-in, dashboard, resources, reports)
	// ─────────────────────────────────────────────────────────────────────────
	handlers.Mount(a.mux, backend)

	// ─────────────────────────────────────────────────────────────────────────
	// Health and static files
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.Handle("GET /static/", view.Static())
}
