package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/middleware"
)

func requestIn(lang string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	return r.WithContext(i18n.WithLang(r.Context(), lang))
}

func TestRender_LanguagePerRequest(t *testing.T) {
	ResetForTests()

	rec := httptest.NewRecorder()
	require.NoError(t, Render(rec, requestIn("en"), "login.html", map[string]any{"Email": "a@b.com"}))
	assert.Contains(t, rec.Body.String(), "Sign in")
	assert.Contains(t, rec.Body.String(), `value="a@b.com"`)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	// Same cached template, different language.
	rec = httptest.NewRecorder()
	require.NoError(t, Render(rec, requestIn("pt"), "login.html", nil))
	assert.Contains(t, rec.Body.String(), "Entrar")
	assert.NotContains(t, rec.Body.String(), "Sign in")
}

func TestRender_InjectsFlashOnce(t *testing.T) {
	ResetForTests()

	flash := httptest.NewRecorder()
	middleware.Flash(flash, middleware.NoticeSuccess, "register.success")

	req := requestIn("pt")
	for _, c := range flash.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, Render(rec, req, "login.html", nil))
	assert.Contains(t, rec.Body.String(), "Usuário registrado com sucesso!")
	assert.Contains(t, rec.Body.String(), "notice-success")
}

func TestRender_ExplicitNoticeWins(t *testing.T) {
	ResetForTests()
	rec := httptest.NewRecorder()
	data := map[string]any{"Notice": middleware.Notice{Kind: middleware.NoticeError, Code: "login.error"}}
	require.NoError(t, RenderStatus(rec, requestIn("pt"), http.StatusUnauthorized, "login.html", data))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email ou senha inválidos. Tente novamente.")
}

func TestRender_FlashKeptBesidePageNotice(t *testing.T) {
	ResetForTests()

	flash := httptest.NewRecorder()
	middleware.Flash(flash, middleware.NoticeError, "clients.delete_error")
	req := requestIn("pt")
	for _, c := range flash.Result().Cookies() {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	data := map[string]any{"Notice": middleware.Notice{Kind: middleware.NoticeError, Code: "login.error"}}
	require.NoError(t, Render(rec, req, "login.html", data))
	assert.Contains(t, rec.Body.String(), "Erro ao deletar cliente")
	assert.Contains(t, rec.Body.String(), "Email ou senha inválidos. Tente novamente.")
}

func TestRender_MenuOnlyWhenSignedIn(t *testing.T) {
	ResetForTests()

	rec := httptest.NewRecorder()
	require.NoError(t, Render(rec, requestIn("pt"), "error.html", map[string]any{"Status": 404, "Message": "error.not_found"}))
	assert.NotContains(t, rec.Body.String(), `href="/anotacoes"`)

	req := requestIn("pt")
	req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{Token: "a.b.c", User: auth.Identity{ID: 5, Role: "Admin"}}))
	rec = httptest.NewRecorder()
	require.NoError(t, Render(rec, req, "error.html", map[string]any{"Status": 404, "Message": "error.not_found"}))
	body := rec.Body.String()
	for _, href := range []string{"/dashboard", "/empresas", "/clientes", "/usuarios", "/anotacoes", "/relatorios"} {
		assert.Contains(t, body, `href="`+href+`"`)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	ResetForTests()
	assert.Error(t, Render(httptest.NewRecorder(), requestIn("pt"), "nope.html", nil))
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".grid")
}

func TestFuncs_Pages(t *testing.T) {
	pages := Funcs(requestIn("pt"))["pages"].(func(int, int) []int)
	assert.Equal(t, []int{1, 2, 3}, pages(1, 3))
	assert.Empty(t, pages(1, 0))
	assert.Empty(t, pages(1, -4))
	assert.Equal(t, []int{1, 2, 3, 4, 0, 200000}, pages(1, 200000))
	assert.Equal(t, []int{1, 0, 47, 48, 49, 50, 51, 52, 53, 0, 200000}, pages(50, 200000))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, pages(5, 8))
	assert.Equal(t, []int{1, 0, 6, 7, 8, 9}, pages(99, 9))
}
