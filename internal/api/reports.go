package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/diewo77/painel/internal/models"
)

const (
	ReportClients   = "clientes"
	ReportCompanies = "empresas"
)

// ReportFilter scopes a report listing. Dates are YYYY-MM-DD and optional.
type ReportFilter struct {
	Tipo       string
	DataInicio string
	DataFim    string
}

// ValidTipo reports whether tipo names a report category.
func ValidTipo(tipo string) bool {
	return tipo == ReportClients || tipo == ReportCompanies
}

func (f ReportFilter) Values() url.Values {
	q := url.Values{}
	q.Set("tipo", f.Tipo)
	if f.DataInicio != "" {
		q.Set("dataInicio", f.DataInicio)
	}
	if f.DataFim != "" {
		q.Set("dataFim", f.DataFim)
	}
	return q
}

// Filename is the download name of the generated document.
func (f ReportFilter) Filename() string {
	return "relatorio_" + f.Tipo + ".pdf"
}

// ListReport requests one page of report rows.
func ListReport(ctx context.Context, c *Client, f ReportFilter, page int) (Page[models.Annotation], error) {
	return List[models.Annotation](ctx, c, Reports, page, f.Values())
}

// Document is a binary response streamed from the backend.
type Document struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ReportPDF requests the generated report document. The caller must close Body.
func (c *Client) ReportPDF(ctx context.Context, f ReportFilter) (*Document, error) {
	resp, err := c.send(ctx, "report pdf", http.MethodGet, Reports.Path+"/pdf", f.Values(), nil, "application/pdf")
	if err != nil {
		return nil, err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/pdf"
	}
	return &Document{Body: resp.Body, ContentType: ct, Size: resp.ContentLength}, nil
}
