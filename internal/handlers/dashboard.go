package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/internal/resources"
)

// Card is one resource tile on the dashboard.
type Card struct {
	Label  string
	Path   string
	Total  int
	Loaded bool
}

type DashboardHandler struct {
	api    *api.Client
	tables []resources.Table
}

func NewDashboardHandler(c *api.Client, tables []resources.Table) *DashboardHandler {
	return &DashboardHandler{api: c, tables: tables}
}

// Show renders the menu with each resource's total. The totals are fetched
// concurrently; the first failure cancels the rest and shows one notice.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	c := clientFor(h.api, r)
	cards := make([]Card, len(h.tables))
	g, ctx := errgroup.WithContext(r.Context())
	for i, tbl := range h.tables {
		cards[i] = Card{Label: tbl.NavLabel(), Path: tbl.Path()}
		g.Go(func() error {
			n, err := tbl.Total(ctx, c)
			if err != nil {
				return err
			}
			cards[i].Total = n
			cards[i].Loaded = true
			return nil
		})
	}
	data := map[string]any{"Cards": cards}
	if err := g.Wait(); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).Warn("dashboard totals failed")
		data["Notice"] = notice(middleware.NoticeError, "dashboard.error")
	}
	render(w, r, http.StatusOK, "dashboard.html", data)
}
