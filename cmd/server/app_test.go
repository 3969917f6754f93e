package main

import (
	"html"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/config"
	"github.com/diewo77/painel/internal/db"
	"github.com/diewo77/painel/internal/devbackend"
	"github.com/diewo77/painel/internal/middleware"
)

// newStack starts the reference backend on in-memory SQLite and the panel in
// front of it, and returns a browser-like client for the panel.
func newStack(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := db.Open(config.DatabaseConfig{Driver: "sqlite", Path: "file:" + t.Name() + "?mode=memory&cache=shared"}, log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(store))
	require.NoError(t, db.SeedAdmin(store, "admin@painel.local", "admin123"))
	backend := httptest.NewServer(devbackend.New(store, devbackend.Options{Tokens: devbackend.NewTokens("e2e", time.Hour), Logger: log}))
	t.Cleanup(backend.Close)

	panel := httptest.NewServer(NewApp(api.New(api.Options{BaseURL: backend.URL, Logger: log}), log))
	t.Cleanup(panel.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return panel, &http.Client{Jar: jar}
}

func read(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func pt(code string) string { return html.EscapeString(i18n.T("pt", code)) }

func TestEndToEnd(t *testing.T) {
	panel, browser := newStack(t)

	resp, err := browser.Get(panel.URL + "/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	read(t, resp)

	resp, err = browser.PostForm(panel.URL+"/login", url.Values{"email": {"admin@painel.local"}, "senha": {"admin123"}})
	require.NoError(t, err)
	body := read(t, resp)
	assert.Equal(t, "/dashboard", resp.Request.URL.Path)
	assert.Contains(t, body, pt("login.success"))
	assert.Contains(t, body, `data-total="/usuarios">1<`)
	assert.Contains(t, body, `data-total="/empresas">0<`)

	company := url.Values{
		"cnpj": {"12.345.678/0001-90"}, "razaoSocial": {"ACME Ltda"}, "nomeFantasia": {"ACME"},
		"cep": {"01001-000"}, "endereco": {"Rua A, 1"}, "bairro": {"Centro"}, "cidade": {"Recife"},
		"estado": {"PE"}, "email": {"acme@x.com"}, "telefone": {"8133334444"}, "responsavel": {"Bia"},
	}
	resp, err = browser.PostForm(panel.URL+"/empresas/cadastrar", company)
	require.NoError(t, err)
	body = read(t, resp)
	assert.Equal(t, "/empresas", resp.Request.URL.Path)
	assert.Contains(t, body, pt("companies.create_success"))
	assert.Contains(t, body, "Rua A, 1")
	assert.Contains(t, body, `data-total>1<`)

	resp, err = browser.Get(panel.URL + "/empresas/editar/1")
	require.NoError(t, err)
	assert.Contains(t, read(t, resp), `value="ACME Ltda"`)

	resp, err = browser.Get(panel.URL + "/relatorios/pdf?tipo=empresas")
	require.NoError(t, err)
	pdf := read(t, resp)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="relatorio_empresas.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(pdf, "%PDF-"))

	resp, err = browser.PostForm(panel.URL+"/empresas/deletar/1", url.Values{"confirm": {"sim"}, "page": {"1"}})
	require.NoError(t, err)
	body = read(t, resp)
	assert.Contains(t, body, pt("companies.delete_success"))
	assert.Contains(t, body, `data-total>0<`)

	resp, err = browser.PostForm(panel.URL+"/logout", nil)
	require.NoError(t, err)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	read(t, resp)

	resp, err = browser.Get(panel.URL + "/clientes")
	require.NoError(t, err)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	read(t, resp)
}

func TestHealthz(t *testing.T) {
	panel, browser := newStack(t)
	resp, err := browser.Get(panel.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, read(t, resp))

	resp, err = browser.Get(panel.URL + "/static/app.css")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	read(t, resp)
}
