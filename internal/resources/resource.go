// Package resources describes the backend collections managed by the panel.
// One generic Resource drives listing, forms and deletion for every record type.
package resources

import (
	"context"
	"net/url"
	"strconv"

	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/validation"
)

// Model is the pointer side of a record type handled by a Resource.
type Model[T any] interface {
	*T
	GetID() uint
	Bind(form url.Values, creating bool) validation.Violations
	FormValues() map[string]string
}

// Translator turns a message code into text in the request language.
type Translator func(code string) string

// Column is one table column. Header is a message code.
type Column[T any] struct {
	Header string
	Value  func(rec *T, t Translator) string
}

type Option struct {
	Value string
	Label string // message code
}

// Field is one form input. Label and Options labels are message codes.
type Field struct {
	Name     string
	Label    string
	Type     string // text, email, date, number, password, select, textarea
	Required bool
	// CreateOnly marks a field required when creating and optional when
	// editing, shown with EditLabel on the edit form.
	CreateOnly bool
	EditLabel  string
	Step       string
	Options    []Option
}

func (f Field) IsRequired(creating bool) bool {
	if f.CreateOnly {
		return creating
	}
	return f.Required
}

func (f Field) LabelFor(creating bool) string {
	if !creating && f.EditLabel != "" {
		return f.EditLabel
	}
	return f.Label
}

// Row is a rendered table row.
type Row struct {
	ID    uint
	Cells []string
}

// Resource binds a record type to its backend endpoint, its table columns and
// its form fields.
type Resource[T any, PT Model[T]] struct {
	Slug     string // route segment, e.g. "clientes"
	Key      string // message code prefix, e.g. "clients"
	NavKey   string
	Endpoint api.Endpoint
	Columns  []Column[T]
	Fields   []Field
}

func (r *Resource[T, PT]) Name() string     { return r.Slug }
func (r *Resource[T, PT]) Path() string     { return "/" + r.Slug }
func (r *Resource[T, PT]) TitleKey() string { return r.Msg("title") }
func (r *Resource[T, PT]) NavLabel() string { return r.NavKey }

// Msg returns the message code of a per-resource notice, e.g. Msg("fetch_error").
func (r *Resource[T, PT]) Msg(suffix string) string { return r.Key + "." + suffix }

func (r *Resource[T, PT]) Headers() []string {
	out := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		out[i] = c.Header
	}
	return out
}

// List fetches one page of records.
func (r *Resource[T, PT]) List(ctx context.Context, c *api.Client, page int) (api.Page[T], error) {
	return api.List[T](ctx, c, r.Endpoint, page, nil)
}

// Get fetches one record.
func (r *Resource[T, PT]) Get(ctx context.Context, c *api.Client, id uint) (PT, error) {
	rec, err := api.Get[T](ctx, c, r.Endpoint.Path, id)
	if err != nil {
		return nil, err
	}
	return PT(&rec), nil
}

func (r *Resource[T, PT]) Create(ctx context.Context, c *api.Client, rec PT) error {
	return c.Create(ctx, r.Endpoint.Path, rec)
}

func (r *Resource[T, PT]) Update(ctx context.Context, c *api.Client, id uint, rec PT) error {
	return c.Update(ctx, r.Endpoint.Path, id, rec)
}

func (r *Resource[T, PT]) Delete(ctx context.Context, c *api.Client, id uint) error {
	return c.Delete(ctx, r.Endpoint.Path, id)
}

// Rows renders items with the resource columns.
func (r *Resource[T, PT]) Rows(items []T, t Translator) []Row {
	rows := make([]Row, 0, len(items))
	for i := range items {
		rec := &items[i]
		row := Row{ID: PT(rec).GetID(), Cells: make([]string, len(r.Columns))}
		for j, col := range r.Columns {
			row.Cells[j] = col.Value(rec, t)
		}
		rows = append(rows, row)
	}
	return rows
}

// ListRows fetches a page and renders it.
func (r *Resource[T, PT]) ListRows(ctx context.Context, c *api.Client, page int, t Translator) ([]Row, int, error) {
	p, err := r.List(ctx, c, page)
	if err != nil {
		return nil, 0, err
	}
	return r.Rows(p.Items, t), p.Total, nil
}

// Total is the record count reported with the first page.
func (r *Resource[T, PT]) Total(ctx context.Context, c *api.Client) (int, error) {
	p, err := r.List(ctx, c, 1)
	return p.Total, err
}

func idString(id uint) string { return strconv.FormatUint(uint64(id), 10) }
