package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/diewo77/painel/httpx"
)

// TokenCookie holds the raw bearer token in the browser.
const TokenCookie = "authToken"

type ctxKey string

const sessionCtxKey = ctxKey("session")

var secureCookies bool

// SetSecureCookies marks the token cookie Secure. Enable it behind TLS.
func SetSecureCookies(v bool) { secureCookies = v }

// SignIn persists the session token in the browser.
func SignIn(w http.ResponseWriter, s *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// SignOut deletes the token cookie so the next request has no session.
func SignOut(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: TokenCookie, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HttpOnly: true, Secure: secureCookies, SameSite: http.SameSiteLaxMode})
}

// ParseSession rehydrates the session from the token cookie.
func ParseSession(r *http.Request) (*Session, error) {
	c, err := r.Cookie(TokenCookie)
	if err != nil {
		return nil, err
	}
	return NewSession(c.Value)
}

// WithSession stores s in context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// SessionFromContext returns the session of the current request, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(*Session)
	return s, ok && s != nil
}

// Middleware attaches the session to the request context. A cookie whose
// token cannot be decoded is cleared and the request continues anonymously.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := ParseSession(r)
		switch {
		case err == nil:
			r = r.WithContext(WithSession(r.Context(), s))
		case err == ErrInvalidToken:
			SignOut(w)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession redirects to /login if not signed in (HTML) or returns 401 JSON.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			accept := r.Header.Get("Accept")
			if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
				httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
