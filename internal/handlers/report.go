package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/middleware"
	"github.com/diewo77/painel/internal/models"
	"github.com/diewo77/painel/internal/resources"
)

type ReportHandler struct {
	api *api.Client
}

func NewReportHandler(c *api.Client) *ReportHandler {
	return &ReportHandler{api: c}
}

// filterFrom reads the report filter from the query. Dates that do not parse
// are dropped.
func filterFrom(r *http.Request) api.ReportFilter {
	q := r.URL.Query()
	f := api.ReportFilter{Tipo: q.Get("tipo")}
	if !api.ValidTipo(f.Tipo) {
		f.Tipo = ""
	}
	if d, err := models.ParseDate(q.Get("dataInicio")); err == nil && !d.IsZero() {
		f.DataInicio = d.String()
	}
	if d, err := models.ParseDate(q.Get("dataFim")); err == nil && !d.IsZero() {
		f.DataFim = d.String()
	}
	return f
}

// Show renders the filter form and, once a category is chosen, one page of
// report rows.
func (h *ReportHandler) Show(w http.ResponseWriter, r *http.Request) {
	f := filterFrom(r)
	page := pageParam(r)
	data := map[string]any{
		"Filter":   f,
		"Selected": f.Tipo != "",
		"Headers":  resources.ReportColumns,
		"Rows":     []resources.Row{},
		"Page":     page,
		"Pages":    0,
		"Total":    0,
		"Base":     "/relatorios?" + f.Values().Encode() + "&",
	}
	if f.Tipo == "" {
		render(w, r, http.StatusOK, "reports.html", data)
		return
	}
	p, err := api.ListReport(r.Context(), clientFor(h.api, r), f, page)
	if err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("tipo", f.Tipo).Warn("report fetch failed")
		data["Notice"] = notice(middleware.NoticeError, "reports.fetch_error")
		render(w, r, http.StatusOK, "reports.html", data)
		return
	}
	data["Rows"] = resources.ReportRows(p.Items, f.Tipo)
	data["Total"] = p.Total
	data["Pages"] = p.Pages()
	render(w, r, http.StatusOK, "reports.html", data)
}

// PDF streams the backend document as relatorio_<tipo>.pdf.
func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	f := filterFrom(r)
	back := "/relatorios?" + f.Values().Encode()
	if f.Tipo == "" {
		middleware.Flash(w, middleware.NoticeWarning, "reports.select_tipo")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	doc, err := clientFor(h.api, r).ReportPDF(r.Context(), f)
	if err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).WithField("tipo", f.Tipo).Warn("report pdf failed")
		middleware.Flash(w, middleware.NoticeError, "reports.pdf_error")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	defer doc.Body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Filename()+`"`)
	if doc.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, doc.Body); err != nil {
		middleware.LoggerFrom(r.Context()).WithError(err).Warn("report pdf copy interrupted")
	}
}

func (h *ReportHandler) Routes(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	mux.Handle("GET /relatorios", wrap(http.HandlerFunc(h.Show)))
	mux.Handle("GET /relatorios/pdf", wrap(http.HandlerFunc(h.PDF)))
}
