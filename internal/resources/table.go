package resources

import (
	"context"

	"github.com/diewo77/painel/internal/api"
)

// Table is the type-erased view of a Resource used where the record type does
// not matter: the dashboard and the terminal client.
type Table interface {
	Name() string
	Path() string
	TitleKey() string
	NavLabel() string
	Msg(suffix string) string
	Headers() []string
	ListRows(ctx context.Context, c *api.Client, page int, t Translator) ([]Row, int, error)
	Delete(ctx context.Context, c *api.Client, id uint) error
	Total(ctx context.Context, c *api.Client) (int, error)
}

// All lists the managed resources in menu order.
func All() []Table {
	return []Table{Companies, Clients, Users, Annotations}
}

// Lookup finds a resource by route segment (e.g. "clientes").
func Lookup(name string) (Table, bool) {
	for _, t := range All() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
