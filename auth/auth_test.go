package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignInThenMiddlewareRehydrates(t *testing.T) {
	tok := makeToken(`{"id":9,"role":"User"}`)
	rec := httptest.NewRecorder()
	SignIn(rec, &Session{Token: tok})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != TokenCookie || cookies[0].Value != tok {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	var got *Session
	Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.User.ID != 9 || got.Token != tok {
		t.Fatalf("session not rehydrated: %+v", got)
	}
}

func TestMiddlewareClearsUndecodableToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	called := false
	Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := SessionFromContext(r.Context()); ok {
			t.Errorf("expected no session")
		}
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatal("next handler not called")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected the token cookie to be expired, got %+v", cookies)
	}
}

func TestSignOutPreventsRehydration(t *testing.T) {
	rec := httptest.NewRecorder()
	SignOut(rec)
	c := rec.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("SignOut cookie = %+v", c)
	}
}

func TestRequireSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	RequireSession(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clientes", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	RequireSession(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/clientes", nil)
	req = req.WithContext(WithSession(req.Context(), &Session{Token: "a.b.c"}))
	rec = httptest.NewRecorder()
	RequireSession(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected next handler, got %d", rec.Code)
	}
}
