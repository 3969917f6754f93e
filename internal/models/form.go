package models

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/diewo77/painel/validation"
)

// formReader pulls typed values out of submitted form data and records a
// violation for every value that does not parse.
type formReader struct {
	form url.Values
	v    validation.Violations
}

func newFormReader(form url.Values) *formReader {
	return &formReader{form: form, v: make(validation.Violations)}
}

func (r *formReader) str(name string) string {
	return strings.TrimSpace(r.form.Get(name))
}

func (r *formReader) date(name string) Date {
	d, err := ParseDate(r.form.Get(name))
	if err != nil {
		r.v.Add(name, "invalid_date")
	}
	return d
}

func (r *formReader) decimal(name string) Decimal {
	d, err := ParseDecimal(r.form.Get(name))
	if err != nil {
		r.v.Add(name, "invalid_number")
	}
	return d
}

func (r *formReader) id(name string) uint {
	s := r.str(name)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		r.v.Add(name, "invalid_number")
		return 0
	}
	return uint(n)
}

func formatID(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}
