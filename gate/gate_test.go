package gate

import (
	"context"
	"errors"
	"testing"
)

func testGate() *Gate {
	return New(map[string]Profile{
		"Admin": NewStaticProfile("Admin", PermissionSuperAdmin),
		"User": NewStaticProfile("User",
			"clientes:*", "empresas:*", "anotacoes:*",
			NewPermission("usuarios", ActionList), NewPermission("usuarios", ActionView),
			NewPermission("relatorios", ActionList),
		),
	})
}

func TestGate_Authorize(t *testing.T) {
	g := testGate()
	ctx := context.Background()

	tests := []struct {
		role     string
		action   Action
		resource string
		want     error
	}{
		{"Admin", ActionDelete, "usuarios", nil},
		{"User", ActionDelete, "clientes", nil},
		{"User", ActionList, "usuarios", nil},
		{"User", ActionDelete, "usuarios", ErrUnauthorized},
		{"User", ActionCreate, "usuarios", ErrUnauthorized},
		{"User", ActionList, "relatorios", nil},
		{"Guest", ActionList, "clientes", ErrUnknownRole},
		{"", ActionList, "clientes", ErrUnknownRole},
	}
	for _, tt := range tests {
		err := g.Authorize(ctx, tt.role, tt.action, tt.resource)
		if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
			t.Errorf("Authorize(%q, %q, %q) = %v, want %v", tt.role, tt.action, tt.resource, err, tt.want)
		}
	}
	if !g.Can(ctx, "Admin", ActionView, "anything") {
		t.Error("Admin should be able to do anything")
	}
}

func TestGate_ProfileLookup(t *testing.T) {
	g := testGate()
	p, ok := g.Profile("User")
	if !ok || p.Name() != "User" {
		t.Fatalf("Profile(User) = %v, %v", p, ok)
	}
	if _, ok := g.Profile("Root"); ok {
		t.Error("unexpected profile for Root")
	}
}

func TestActionForMethod(t *testing.T) {
	tests := []struct {
		method     string
		collection bool
		want       Action
	}{
		{"GET", true, ActionList},
		{"GET", false, ActionView},
		{"POST", true, ActionCreate},
		{"PUT", false, ActionUpdate},
		{"DELETE", false, ActionDelete},
	}
	for _, tt := range tests {
		if got := ActionForMethod(tt.method, tt.collection); got != tt.want {
			t.Errorf("ActionForMethod(%s, %v) = %s, want %s", tt.method, tt.collection, got, tt.want)
		}
	}
}
