package validation

import (
	"errors"
	"net/mail"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violations maps a form field name to a translation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records a violation unless the field already has one.
func (v Violations) Add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

func Email(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "invalid_email")
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	customTypes  []customType
	customMu     sync.Mutex
)

type customType struct {
	fn    validator.CustomTypeFunc
	types []any
}

// RegisterType lets a package teach the validator how to read a custom value type
// (e.g. a date wrapper) as a plain value. Must be called before the first Struct call,
// typically from an init function.
func RegisterType(fn func(reflect.Value) any, types ...any) {
	customMu.Lock()
	defer customMu.Unlock()
	customTypes = append(customTypes, customType{fn: fn, types: types})
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report violations under the JSON name, which is also the form field name.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		customMu.Lock()
		for _, ct := range customTypes {
			validate.RegisterCustomTypeFunc(ct.fn, ct.types...)
		}
		customMu.Unlock()
	})
	return validate
}

// Struct runs the `validate` struct tags of s and merges the failures into v.
func Struct(s any, v Violations) {
	err := instance().Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.Add("_", "invalid")
		return
	}
	for _, fe := range fieldErrs {
		v.Add(fe.Field(), codeFor(fe.Tag()))
	}
}

func codeFor(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email":
		return "invalid_email"
	case "oneof":
		return "invalid_option"
	case "gt", "gte", "min":
		return "must_be_positive"
	default:
		return "invalid"
	}
}
