package handlers

import (
	"net/http"
	"strings"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/internal/resources"
	"github.com/diewo77/painel/validation"
)

var registerFields = []resources.Field{
	{Name: "nomeUsuario", Label: "field.nomeUsuario", Type: "text", Required: true},
	{Name: "email", Label: "field.email", Type: "email", Required: true},
	{Name: "senha", Label: "field.senha", Type: "password", Required: true},
}

type AuthHandler struct {
	api *api.Client
}

func NewAuthHandler(c *api.Client) *AuthHandler {
	return &AuthHandler{api: c}
}

// LoginForm shows the sign-in page, or the dashboard when already signed in.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	render(w, r, http.StatusOK, "login.html", nil)
}

// Login exchanges the credentials for a token. Every failure, whether bad
// credentials, an unreachable backend or an unreadable token, shows the same
// message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFrom(r.Context())
	email := strings.TrimSpace(r.PostFormValue("email"))
	senha := r.PostFormValue("senha")

	fail := func() {
		render(w, r, http.StatusUnauthorized, "login.html", map[string]any{
			"Email":  email,
			"Notice": notice(middleware.NoticeError, "login.error"),
		})
	}
	if email == "" || senha == "" {
		fail()
		return
	}

	token, err := h.api.Login(r.Context(), email, senha)
	if err != nil {
		log.WithError(err).WithField("status", api.StatusOf(err)).Warn("login failed")
		fail()
		return
	}
	sess, err := auth.NewSession(token)
	if err != nil {
		log.WithError(err).Warn("login returned an undecodable token")
		fail()
		return
	}

	auth.SignIn(w, sess)
	log.WithField("user_id", sess.User.ID).Info("signed in")
	middleware.Flash(w, middleware.NoticeSuccess, "login.success")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout forgets the token so the next request has no session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.SignOut(w)
	middleware.Flash(w, middleware.NoticeSuccess, "logout.success")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register.html", map[string]any{
		"Fields": registerFields,
		"Values": map[string]string{},
		"Errors": validation.Violations{},
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	nome := strings.TrimSpace(r.PostFormValue("nomeUsuario"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	senha := r.PostFormValue("senha")

	v := make(validation.Violations)
	validation.Required("nomeUsuario", nome, v)
	validation.Required("email", email, v)
	validation.Email("email", email, v)
	validation.Required("senha", senha, v)

	data := map[string]any{
		"Fields": registerFields,
		"Values": formValues(registerFields, r),
		"Errors": v,
	}
	if !v.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "register.html", data)
		return
	}
	if err := h.api.Register(r.Context(), nome, email, senha); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).Warn("register failed")
		data["Notice"] = notice(middleware.NoticeError, "register.error")
		render(w, r, http.StatusOK, "register.html", data)
		return
	}
	middleware.Flash(w, middleware.NoticeSuccess, "register.success")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
