package devbackend

import (
	"context"
	"net/http"
	"strings"

	"github.com/diewo77/painel/gate"
	"github.com/diewo77/painel/httpx"
	"github.com/diewo77/painel/internal/models"
)

// Roles maps each account role to what it may do. Admins may do anything;
// regular users manage records and can only read accounts and reports.
func Roles() *gate.Gate {
	return gate.New(map[string]gate.Profile{
		models.RoleAdmin: gate.NewStaticProfile(models.RoleAdmin, gate.PermissionSuperAdmin),
		models.RoleUser: gate.NewStaticProfile(models.RoleUser,
			"clientes:*",
			"empresas:*",
			"anotacoes:*",
			gate.NewPermission("usuarios", gate.ActionList),
			gate.NewPermission("usuarios", gate.ActionView),
			gate.NewPermission("relatorios", gate.ActionList),
		),
	})
}

type ctxKey struct{}

func claimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}

// require verifies the bearer token and checks the caller's role against the
// action implied by the request method.
func (s *Server) require(resource string, collection bool, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			httpx.JSONError(w, http.StatusUnauthorized, "token ausente", nil)
			return
		}
		claims, err := s.tokens.Verify(raw)
		if err != nil {
			s.log.WithError(err).Debug("rejected token")
			httpx.JSONError(w, http.StatusUnauthorized, "token inválido", nil)
			return
		}
		action := gate.ActionForMethod(r.Method, collection)
		if err := s.gate.Authorize(r.Context(), claims.Role, action, resource); err != nil {
			s.log.WithField("role", claims.Role).WithField("permission", gate.NewPermission(resource, action)).Info("access denied")
			httpx.JSONError(w, http.StatusForbidden, "acesso negado", nil)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
	})
}
