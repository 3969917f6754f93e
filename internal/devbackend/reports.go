package devbackend

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"

	"github.com/diewo77/painel/httpx"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/models"
	"github.com/diewo77/painel/internal/resources"
)

// reportFilter reads tipo and the optional due-date range. It writes a 400
// and returns false on bad input.
func reportFilter(w http.ResponseWriter, r *http.Request) (api.ReportFilter, models.Date, models.Date, bool) {
	q := r.URL.Query()
	f := api.ReportFilter{Tipo: q.Get("tipo")}
	if !api.ValidTipo(f.Tipo) {
		httpx.JSONError(w, http.StatusBadRequest, "tipo deve ser clientes ou empresas", nil)
		return f, models.Date{}, models.Date{}, false
	}
	from, err := models.ParseDate(q.Get("dataInicio"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "dataInicio inválida", nil)
		return f, models.Date{}, models.Date{}, false
	}
	to, err := models.ParseDate(q.Get("dataFim"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "dataFim inválida", nil)
		return f, models.Date{}, models.Date{}, false
	}
	f.DataInicio, f.DataFim = from.String(), to.String()
	return f, from, to, true
}

// reportQuery selects annotations due within [from, to].
func (s *Server) reportQuery(r *http.Request, from, to models.Date) *gorm.DB {
	q := s.db.WithContext(r.Context()).Model(&models.Annotation{})
	if !from.IsZero() {
		q = q.Where("data_vencimento >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("data_vencimento <= ?", to)
	}
	return q
}

// party names the association resolved for tipo.
func party(tipo string) string {
	if tipo == api.ReportClients {
		return "Cliente"
	}
	return "Empresa"
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	f, from, to, ok := reportFilter(w, r)
	if !ok {
		return
	}
	page, limit := paging(r)
	var total int64
	if err := s.reportQuery(r, from, to).Count(&total).Error; err != nil {
		s.internal(w, r, err)
		return
	}
	items := make([]models.Annotation, 0, limit)
	err := s.reportQuery(r, from, to).Preload(party(f.Tipo)).
		Order("data_vencimento, id").Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error
	if err != nil {
		s.internal(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, envelope(api.Reports, items, total, page, limit))
}

func (s *Server) reportPDF(w http.ResponseWriter, r *http.Request) {
	f, from, to, ok := reportFilter(w, r)
	if !ok {
		return
	}
	var items []models.Annotation
	if err := s.reportQuery(r, from, to).Preload(party(f.Tipo)).Order("data_vencimento, id").Find(&items).Error; err != nil {
		s.internal(w, r, err)
		return
	}
	doc, err := renderReport(f, items)
	if err != nil {
		s.internal(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}

var reportWidths = []float64{12, 50, 50, 20, 28, 30}

// renderReport lays the report rows out as an A4 table.
func renderReport(f api.ReportFilter, items []models.Annotation) ([]byte, error) {
	const lang = i18n.DefaultLang
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := i18n.T(lang, "reports.title") + " - " + i18n.T(lang, "reports.tipo_"+f.Tipo)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	if f.DataInicio != "" || f.DataFim != "" {
		pdf.SetFont("Helvetica", "", 9)
		period := fmt.Sprintf("%s: %s  %s: %s",
			i18n.T(lang, "reports.data_inicio"), displayOrDash(f.DataInicio),
			i18n.T(lang, "reports.data_fim"), displayOrDash(f.DataFim))
		pdf.CellFormat(0, 6, tr(period), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range resources.ReportColumns {
		pdf.CellFormat(reportWidths[i], 7, tr(i18n.T(lang, h)), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	rows := resources.ReportRows(items, f.Tipo)
	for _, row := range rows {
		for i, cell := range row.Cells {
			align := "L"
			if i == 3 || i == 4 {
				align = "R"
			}
			pdf.CellFormat(reportWidths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		pdf.CellFormat(0, 7, tr(i18n.T(lang, "table.empty")), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func displayOrDash(day string) string {
	d, err := models.ParseDate(day)
	if err != nil || d.IsZero() {
		return "-"
	}
	return d.Display()
}
