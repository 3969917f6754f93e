package handlers

import (
	"net/http"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/resources"
)

// Mount registers every panel screen on mux. Everything except the sign-in
// and registration pages requires a session.
func Mount(mux *http.ServeMux, c *api.Client) {
	ah := NewAuthHandler(c)
	mux.HandleFunc("/", NotFound)
	mux.HandleFunc("GET /{$}", Home)
	mux.HandleFunc("GET /login", ah.LoginForm)
	mux.HandleFunc("POST /login", ah.Login)
	mux.HandleFunc("POST /logout", ah.Logout)
	mux.HandleFunc("GET /register", ah.RegisterForm)
	mux.HandleFunc("POST /register", ah.Register)

	mux.Handle("GET /dashboard", auth.RequireSession(http.HandlerFunc(NewDashboardHandler(c, resources.All()).Show)))

	routables := []Routable{
		NewResourceHandler(resources.Companies, c),
		NewResourceHandler(resources.Clients, c),
		NewResourceHandler(resources.Users, c),
		NewResourceHandler(resources.Annotations, c),
		NewReportHandler(c),
	}
	for _, rt := range routables {
		rt.Routes(mux, auth.RequireSession)
	}
}
