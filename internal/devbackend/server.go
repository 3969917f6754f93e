// Package devbackend is a reference implementation of the records backend the
// panel talks to. It keeps the list envelopes exactly as the panel expects
// them, including their per-resource differences.
package devbackend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/diewo77/painel/gate"
	"github.com/diewo77/painel/httpx"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/db"
	"github.com/diewo77/painel/internal/models"
	"github.com/diewo77/painel/validation"
)

type Options struct {
	Tokens *Tokens
	Logger logrus.FieldLogger
}

// Server is an http.Handler serving the backend endpoints.
type Server struct {
	db     *gorm.DB
	tokens *Tokens
	gate   *gate.Gate
	log    logrus.FieldLogger
	mux    *http.ServeMux
	users  *collection[models.User]
}

func New(d *gorm.DB, opts Options) *Server {
	s := &Server{
		db:     d,
		tokens: opts.Tokens,
		gate:   Roles(),
		log:    opts.Logger,
		mux:    http.NewServeMux(),
	}
	if s.tokens == nil {
		s.tokens = NewTokens("devjwtsecret", 0)
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// ─────────────────────────────────────────────────────────────────────────
	// Public routes
	// ─────────────────────────────────────────────────────────────────────────
	s.mux.HandleFunc("POST /auth/login", s.login)
	s.mux.HandleFunc("POST /usuarios/login", s.login)
	s.mux.HandleFunc("POST /auth/register", s.register)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// ─────────────────────────────────────────────────────────────────────────
	// Records
	// ─────────────────────────────────────────────────────────────────────────
	s.users = &collection[models.User]{endpoint: api.Users, prepare: prepareUser}
	s.users.routes(s)
	(&collection[models.Client]{
		endpoint:    api.Clients,
		guardDelete: referencedBy("cliente_id"),
	}).routes(s)
	(&collection[models.Company]{
		endpoint:    api.Companies,
		guardDelete: referencedBy("empresa_id"),
	}).routes(s)
	(&collection[models.Annotation]{
		endpoint: api.Annotations,
		preload:  []string{"Cliente", "Empresa"},
		prepare:  prepareAnnotation,
	}).routes(s)

	// ─────────────────────────────────────────────────────────────────────────
	// Reports
	// ─────────────────────────────────────────────────────────────────────────
	s.mux.Handle("GET /relatorios", s.require(api.Reports.Path, true, s.report))
	s.mux.Handle("GET /relatorios/pdf", s.require(api.Reports.Path, true, s.reportPDF))
}

// prepareUser hashes a submitted password. On update a blank password keeps
// the stored hash.
func prepareUser(_ *gorm.DB, u *models.User, creating bool, v validation.Violations) error {
	if creating {
		validation.Required("senha", u.Senha, v)
	}
	if u.Senha == "" {
		return nil
	}
	hash, err := db.HashPassword(u.Senha)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Senha = ""
	return nil
}

// prepareAnnotation checks that the referenced client and company exist.
func prepareAnnotation(tx *gorm.DB, a *models.Annotation, _ bool, v validation.Violations) error {
	a.Cliente, a.Empresa = nil, nil
	if a.Status == "" {
		a.Status = models.StatusPendente
	}
	refs := []struct {
		field string
		model any
		id    uint
	}{
		{"clienteId", &models.Client{}, a.ClienteID},
		{"empresaId", &models.Company{}, a.EmpresaID},
	}
	for _, ref := range refs {
		if ref.id == 0 {
			continue
		}
		var n int64
		if err := tx.Model(ref.model).Where("id = ?", ref.id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			v.Add(ref.field, "invalid")
		}
	}
	return nil
}

func referencedBy(column string) func(tx *gorm.DB, id uint) error {
	return func(tx *gorm.DB, id uint) error {
		var n int64
		if err := tx.Model(&models.Annotation{}).Where(column+" = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errInUse
		}
		return nil
	}
}

type credentials struct {
	NomeUsuario string `json:"nomeUsuario"`
	Email       string `json:"email"`
	Senha       string `json:"senha"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "corpo inválido", nil)
		return
	}
	var u models.User
	err := s.db.WithContext(r.Context()).Where("email = ?", strings.TrimSpace(in.Email)).First(&u).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.internal(w, r, err)
		return
	}
	if err != nil || !db.CheckPassword(u.PasswordHash, in.Senha) {
		httpx.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Credenciais inválidas"})
		return
	}
	token, err := s.tokens.Issue(&u)
	if err != nil {
		s.internal(w, r, err)
		return
	}
	s.log.WithField("user_id", u.ID).Info("token issued")
	httpx.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// register creates a regular account.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "corpo inválido", nil)
		return
	}
	u := models.User{
		NomeUsuario: strings.TrimSpace(in.NomeUsuario),
		Email:       strings.TrimSpace(in.Email),
		Senha:       in.Senha,
		Role:        models.RoleUser,
	}
	if !s.users.check(s, w, r, &u, true) {
		return
	}
	if err := s.db.WithContext(r.Context()).Create(&u).Error; err != nil {
		s.storeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": u.ID})
}
