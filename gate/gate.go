// Package gate decides whether a role may perform an action on a resource.
// Roles map to profiles of "resource:action" permissions with wildcards.
package gate

import (
	"context"
	"fmt"
)

// Gate is the central authorization checkpoint keyed by role name.
type Gate struct {
	roles map[string]Profile
}

// New creates a Gate from role → profile assignments.
func New(roles map[string]Profile) *Gate {
	g := &Gate{roles: make(map[string]Profile, len(roles))}
	for role, p := range roles {
		g.roles[role] = p
	}
	return g
}

// Profile returns the profile assigned to role.
func (g *Gate) Profile(role string) (Profile, bool) {
	p, ok := g.roles[role]
	return p, ok
}

// Authorize returns nil when role may perform action on resource.
func (g *Gate) Authorize(_ context.Context, role string, action Action, resource string) error {
	p, ok := g.roles[role]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if !p.HasPermission(NewPermission(resource, action)) {
		return ErrUnauthorized
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, role string, action Action, resource string) bool {
	return g.Authorize(ctx, role, action, resource) == nil
}
