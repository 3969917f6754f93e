package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed number of rows requested per page.
const PageSize = 10

// Endpoint describes one list resource and where its envelope keeps the rows
// and the total count. The shapes differ between resources and are kept as the
// backend sends them.
type Endpoint struct {
	Path     string
	ItemsKey string
	TotalKey string // dotted path, e.g. "pagination.total"
}

var (
	Clients     = Endpoint{Path: "clientes", ItemsKey: "clientes", TotalKey: "pagination.total"}
	Annotations = Endpoint{Path: "anotacoes", ItemsKey: "anotacoes", TotalKey: "pagination.total"}
	Companies   = Endpoint{Path: "empresas", ItemsKey: "data", TotalKey: "meta.total"}
	Users       = Endpoint{Path: "usuarios", ItemsKey: "data", TotalKey: "meta.total"}
	Reports     = Endpoint{Path: "relatorios", ItemsKey: "data", TotalKey: "meta.total"}
)

// Page is one page of a listing.
type Page[T any] struct {
	Items  []T
	Total  int
	Number int
}

// Pages is the number of pages needed for Total rows.
func (p Page[T]) Pages() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Total + PageSize - 1) / PageSize
}

// List requests page (1-based) of ep with limit=PageSize. extra is merged into
// the query for filtered listings.
func List[T any](ctx context.Context, c *Client, ep Endpoint, page int, extra url.Values) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			if v != "" {
				q.Add(k, v)
			}
		}
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(PageSize))

	var envelope map[string]json.RawMessage
	op := "list " + ep.Path
	if err := c.doJSON(ctx, op, http.MethodGet, ep.Path, q, nil, &envelope); err != nil {
		return Page[T]{Number: page}, err
	}
	out, err := DecodeEnvelope[T](ep, envelope)
	if err != nil {
		return Page[T]{Number: page}, &Error{Op: op, Status: http.StatusOK, Err: err}
	}
	out.Number = page
	return out, nil
}

// DecodeEnvelope pulls the rows and the total out of a decoded list response.
// A missing array is an empty page; a missing or negative total is zero.
func DecodeEnvelope[T any](ep Endpoint, envelope map[string]json.RawMessage) (Page[T], error) {
	var p Page[T]
	if raw, ok := envelope[ep.ItemsKey]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &p.Items); err != nil {
			return p, fmt.Errorf("decode %s: %w", ep.ItemsKey, err)
		}
	}
	if p.Items == nil {
		p.Items = []T{}
	}
	total, err := lookupTotal(envelope, ep.TotalKey)
	if err != nil {
		return p, err
	}
	p.Total = max(total, 0)
	return p, nil
}

func lookupTotal(envelope map[string]json.RawMessage, path string) (int, error) {
	keys := strings.Split(path, ".")
	cur := envelope
	for i, k := range keys {
		raw, ok := cur[k]
		if !ok || isNull(raw) {
			return 0, nil
		}
		if i == len(keys)-1 {
			return parseCount(raw)
		}
		next := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &next); err != nil {
			return 0, fmt.Errorf("decode %s: %w", path, err)
		}
		cur = next
	}
	return 0, nil
}

// parseCount accepts 12 or "12".
func parseCount(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("total %q is not a number", s)
	}
	return int(f), nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
