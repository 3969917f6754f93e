package devbackend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/config"
	"github.com/diewo77/painel/internal/db"
	"github.com/diewo77/painel/internal/models"
)

const (
	adminEmail = "admin@painel.local"
	adminPass  = "admin123"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newBackend(t *testing.T) (*httptest.Server, *api.Client) {
	t.Helper()
	d, err := db.Open(config.DatabaseConfig{Driver: "sqlite", Path: "file:" + t.Name() + "?mode=memory&cache=shared"}, quietLogger())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(d))
	require.NoError(t, db.SeedAdmin(d, adminEmail, adminPass))

	srv := httptest.NewServer(New(d, Options{Tokens: NewTokens("test-secret", time.Hour), Logger: quietLogger()}))
	t.Cleanup(srv.Close)
	return srv, api.New(api.Options{BaseURL: srv.URL, Logger: quietLogger()})
}

func signIn(t *testing.T, c *api.Client, email, senha string) *api.Client {
	t.Helper()
	tok, err := c.Login(context.Background(), email, senha)
	require.NoError(t, err)
	return c.WithToken(tok)
}

func day(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

// seedRecords creates one company, two clients and three annotations.
func seedRecords(t *testing.T, c *api.Client) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Create(ctx, "empresas", &models.Company{
		CNPJ: "12.345.678/0001-90", RazaoSocial: "ACME Ltda", NomeFantasia: "ACME", CEP: "01001-000",
		Endereco: "Rua A", Bairro: "Centro", Cidade: "São Paulo", Estado: "SP",
		Email: "acme@x.com", Telefone: "1133334444", Responsavel: "Bia",
	}))
	for _, name := range []string{"Ana", "Caio"} {
		require.NoError(t, c.Create(ctx, "clientes", &models.Client{
			NomeCompleto: name, CPF: "000", DataNascimento: day(t, "1990-05-17"), NomeMae: "M",
			Email: strings.ToLower(name) + "@x.com", Telefone: "1", CEP: "1",
		}))
	}
	for i, due := range []string{"2025-01-10", "2025-02-10", "2025-03-10"} {
		require.NoError(t, c.Create(ctx, "anotacoes", &models.Annotation{
			ClienteID: uint(i%2 + 1), EmpresaID: 1, ProdutoServico: "Serviço " + due,
			Quantidade: 1, ValorTotal: models.Decimal(100 * (i + 1)), DataVencimento: day(t, due), Status: models.StatusPendente,
		}))
	}
}

func TestLogin_IssuesDecodableToken(t *testing.T) {
	_, c := newBackend(t)
	tok, err := c.Login(context.Background(), adminEmail, adminPass)
	require.NoError(t, err)

	id, ok := auth.DecodeIdentity(tok)
	require.True(t, ok)
	assert.Equal(t, uint(1), id.ID)
	assert.Equal(t, models.RoleAdmin, id.Role)

	_, err = c.Login(context.Background(), adminEmail, "wrong")
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))
	_, err = c.Login(context.Background(), "nobody@x.com", adminPass)
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))
}

func TestListEnvelopesMatchEndpoints(t *testing.T) {
	_, c := newBackend(t)
	c = signIn(t, c, adminEmail, adminPass)
	seedRecords(t, c)
	ctx := context.Background()

	clients, err := api.List[models.Client](ctx, c, api.Clients, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, clients.Total)
	assert.Equal(t, "Ana", clients.Items[0].NomeCompleto)
	assert.Equal(t, "1990-05-17", clients.Items[0].DataNascimento.String())

	companies, err := api.List[models.Company](ctx, c, api.Companies, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, companies.Total)

	users, err := api.List[models.User](ctx, c, api.Users, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, users.Total)
	assert.Empty(t, users.Items[0].PasswordHash)

	notes, err := api.List[models.Annotation](ctx, c, api.Annotations, 1, nil)
	require.NoError(t, err)
	require.Len(t, notes.Items, 3)
	assert.Equal(t, "Ana", notes.Items[0].ClientName())
	assert.Equal(t, "ACME Ltda", notes.Items[0].CompanyName())

	second, err := api.List[models.Annotation](ctx, c, api.Annotations, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, second.Items)
	assert.Equal(t, 3, second.Total)
}

func TestCRUD(t *testing.T) {
	_, c := newBackend(t)
	c = signIn(t, c, adminEmail, adminPass)
	seedRecords(t, c)
	ctx := context.Background()

	note, err := api.Get[models.Annotation](ctx, c, "anotacoes", 2)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-10", note.DataVencimento.String())

	note.Status = models.StatusPago
	note.ValorTotal = 250.5
	require.NoError(t, c.Update(ctx, "anotacoes", 2, &note))
	note, err = api.Get[models.Annotation](ctx, c, "anotacoes", 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPago, note.Status)
	assert.Equal(t, models.Decimal(250.5), note.ValorTotal)

	require.NoError(t, c.Delete(ctx, "anotacoes", 2))
	_, err = api.Get[models.Annotation](ctx, c, "anotacoes", 2)
	assert.Equal(t, http.StatusNotFound, api.StatusOf(err))
	assert.Equal(t, http.StatusNotFound, api.StatusOf(c.Delete(ctx, "anotacoes", 2)))
}

func TestCreate_Rejections(t *testing.T) {
	_, c := newBackend(t)
	c = signIn(t, c, adminEmail, adminPass)
	seedRecords(t, c)
	ctx := context.Background()

	err := c.Create(ctx, "clientes", &models.Client{NomeCompleto: "Sem dados"})
	assert.Equal(t, http.StatusUnprocessableEntity, api.StatusOf(err))

	err = c.Create(ctx, "anotacoes", &models.Annotation{
		ClienteID: 99, EmpresaID: 1, ProdutoServico: "x", Quantidade: 1, ValorTotal: 1,
		DataVencimento: day(t, "2025-01-01"), Status: models.StatusPendente,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, api.StatusOf(err))

	err = c.Create(ctx, "usuarios", &models.User{NomeUsuario: "dup", Email: adminEmail, Senha: "x", Role: models.RoleUser})
	assert.Equal(t, http.StatusConflict, api.StatusOf(err))

	assert.Equal(t, http.StatusConflict, api.StatusOf(c.Delete(ctx, "clientes", 1)))
}

func TestUserPasswordKeptOnBlankUpdate(t *testing.T) {
	_, c := newBackend(t)
	admin := signIn(t, c, adminEmail, adminPass)
	ctx := context.Background()

	require.NoError(t, admin.Create(ctx, "usuarios", &models.User{NomeUsuario: "joao", Email: "j@x.com", Senha: "pw1", Role: models.RoleUser}))
	require.NoError(t, admin.Update(ctx, "usuarios", 2, &models.User{NomeUsuario: "João", Email: "j@x.com", Role: models.RoleUser}))
	signIn(t, c, "j@x.com", "pw1")

	require.NoError(t, admin.Update(ctx, "usuarios", 2, &models.User{NomeUsuario: "João", Email: "j@x.com", Senha: "pw2", Role: models.RoleUser}))
	_, err := c.Login(ctx, "j@x.com", "pw1")
	assert.Error(t, err)
	signIn(t, c, "j@x.com", "pw2")
}

func TestRegisterAndRoleLimits(t *testing.T) {
	_, c := newBackend(t)
	ctx := context.Background()
	require.NoError(t, c.Register(ctx, "maria", "m@x.com", "pw"))
	assert.Equal(t, http.StatusUnprocessableEntity, api.StatusOf(c.Register(ctx, "", "bad", "")))

	user := signIn(t, c, "m@x.com", "pw")
	tok, _ := auth.DecodeIdentity(user.Token())
	assert.Equal(t, models.RoleUser, tok.Role)

	users, err := api.List[models.User](ctx, user, api.Users, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, users.Total)

	err = user.Create(ctx, "usuarios", &models.User{NomeUsuario: "x", Email: "x@x.com", Senha: "x", Role: models.RoleAdmin})
	assert.Equal(t, http.StatusForbidden, api.StatusOf(err))
	assert.Equal(t, http.StatusForbidden, api.StatusOf(user.Delete(ctx, "usuarios", 1)))

	require.NoError(t, user.Create(ctx, "empresas", &models.Company{
		CNPJ: "1", RazaoSocial: "R", CEP: "1", Endereco: "E", Bairro: "B", Cidade: "C", Estado: "SP",
		Email: "r@x.com", Telefone: "1", Responsavel: "Z",
	}))
}

func TestRequiresValidToken(t *testing.T) {
	srv, c := newBackend(t)
	ctx := context.Background()

	_, err := api.List[models.Client](ctx, c, api.Clients, 1, nil)
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = api.List[models.Client](ctx, c.WithToken(forged), api.Clients, 1, nil)
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 1, Role: models.RoleAdmin}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = api.List[models.Client](ctx, c.WithToken(unsigned), api.Clients, 1, nil)
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokens_Expiry(t *testing.T) {
	tokens := NewTokens("s", time.Minute)
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }
	tok, err := tokens.Issue(&models.User{ID: 3, Role: models.RoleUser})
	require.NoError(t, err)

	claims, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.ID)

	tokens.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tokens.Verify(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestReports(t *testing.T) {
	_, c := newBackend(t)
	c = signIn(t, c, adminEmail, adminPass)
	seedRecords(t, c)
	ctx := context.Background()

	f := api.ReportFilter{Tipo: api.ReportClients, DataInicio: "2025-02-01", DataFim: "2025-03-10"}
	page, err := api.ListReport(ctx, c, f, 1)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	assert.Equal(t, "Caio", page.Items[0].ClientName())
	assert.Nil(t, page.Items[0].Empresa)
	assert.Equal(t, "2025-03-10", page.Items[1].DataVencimento.String())

	page, err = api.ListReport(ctx, c, api.ReportFilter{Tipo: api.ReportCompanies}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "ACME Ltda", page.Items[0].CompanyName())
	assert.Nil(t, page.Items[0].Cliente)

	_, err = api.ListReport(ctx, c, api.ReportFilter{}, 1)
	assert.Equal(t, http.StatusBadRequest, api.StatusOf(err))

	doc, err := c.ReportPDF(ctx, f)
	require.NoError(t, err)
	defer doc.Body.Close()
	body, err := io.ReadAll(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, strings.HasPrefix(string(body), "%PDF-"))
}
