package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/diewo77/painel/validation"
)

// DateLayout is the wire and form format of every calendar date.
const DateLayout = "2006-01-02"

// DisplayLayout is how dates are shown in tables.
const DisplayLayout = "02/01/2006"

// Date is a calendar day without time of day. The backend sends either a
// plain YYYY-MM-DD or a full timestamp, both are accepted.
type Date struct {
	time.Time
}

func init() {
	// Let `validate:"required"` see an unset Date as empty.
	validation.RegisterType(func(v reflect.Value) any {
		if d, ok := v.Interface().(Date); ok {
			return d.String()
		}
		return nil
	}, Date{})
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. An empty string is the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	// Keep the calendar day the timestamp was written with.
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String returns the YYYY-MM-DD form used by inputs of type date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Display returns the dd/mm/yyyy form used in listings.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType stores the value in a DATE column.
func (Date) GormDataType() string { return "date" }

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	// SQLite hands back "2024-01-02 00:00:00+00:00" for DATE columns written as time.Time.
	if len(s) >= len(DateLayout) {
		if parsed, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			*d = Date{parsed}
			return nil
		}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return NewDate(d.Year(), d.Month(), d.Day()).Time, nil
}
