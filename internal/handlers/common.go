// Package handlers implements the panel screens. Handlers hold no records:
// every page is rendered from backend calls made with the signed-in user's
// token and the request context.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/internal/resources"
	"github.com/diewo77/painel/view"
)

// clientFor binds the backend client to the request's session token.
func clientFor(base *api.Client, r *http.Request) *api.Client {
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		return base.WithToken(s.Token)
	}
	return base
}

func translator(r *http.Request) resources.Translator {
	lang := middleware.LangFrom(r)
	return func(code string) string { return i18n.T(lang, code) }
}

// pageParam reads ?page=N (or the posted page field), defaulting to 1.
func pageParam(r *http.Request) int {
	p, err := strconv.Atoi(r.FormValue("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

func idParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notice(kind, code string) middleware.Notice {
	return middleware.Notice{Kind: kind, Code: code}
}

// render writes a page and turns a template failure into a 500.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if err := view.RenderStatus(w, r, status, name, data); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("template", name).Error("render failed")
		http.Error(w, i18n.T(middleware.LangFrom(r), "error.generic"), http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "error.html", map[string]any{"Status": http.StatusNotFound, "Message": "error.not_found"})
}

// Home sends signed-in users to the dashboard and everyone else to login.
func Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// formValues echoes submitted values back into a form, never a password.
func formValues(fields []resources.Field, r *http.Request) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Type == "password" {
			values[f.Name] = ""
			continue
		}
		values[f.Name] = r.PostFormValue(f.Name)
	}
	return values
}
