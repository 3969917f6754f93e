// Package view renders the HTML pages. Templates are embedded and parsed once;
// every render clones the parsed set and binds the request's helpers.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sync"
	"time"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/middleware"
)

//go:embed templates static
var embedded embed.FS

var (
	// baseDir, when set, makes every render re-read templates from disk.
	baseDir  string
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

// SetBaseDir serves templates from dir on disk and re-parses them on every
// render, for template editing during development. Empty resets to embedded.
func SetBaseDir(dir string) {
	baseDir = dir
	ResetForTests()
}

// ResetForTests clears the template cache.
func ResetForTests() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
}

func templateFS() (fs.FS, error) {
	if baseDir != "" {
		return os.DirFS(baseDir), nil
	}
	return fs.Sub(embedded, "templates")
}

// Static serves the embedded stylesheet under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Funcs returns the standard func map bound to the request language.
func Funcs(r *http.Request) template.FuncMap {
	lang := middleware.LangFrom(r)
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		"year": func() int { return time.Now().Year() },
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
		"pages": pageWindow,
		// dict creates a map from key-value pairs for passing to sub-templates.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// pageWindow lists the page links shown around current: the first and last
// pages plus up to pageSpan on each side. 0 marks a gap.
func pageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	current = min(max(current, 1), total)
	lo, hi := max(1, current-pageSpan), min(total, current+pageSpan)

	out := make([]int, 0, hi-lo+5)
	if lo > 1 {
		out = append(out, 1)
		if lo > 2 {
			out = append(out, 0)
		}
	}
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	if hi < total {
		if hi < total-1 {
			out = append(out, 0)
		}
		out = append(out, total)
	}
	return out
}

const pageSpan = 3

// parse builds the template set of one page: layout, partials and the page.
func parse(name string) (*template.Template, error) {
	fsys, err := templateFS()
	if err != nil {
		return nil, err
	}
	partials, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, err
	}
	files := append([]string{"layout.html"}, partials...)
	files = append(files, path.Join("pages", name))
	// Placeholder funcs; the real ones are bound per request after Clone.
	return template.New("layout.html").Funcs(Funcs(&http.Request{})).ParseFS(fsys, files...)
}

func lookup(name string) (*template.Template, error) {
	if baseDir == "" {
		tplCache.RLock()
		t, ok := tplCache.m[name]
		tplCache.RUnlock()
		if ok {
			return t, nil
		}
	}
	t, err := parse(name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if baseDir == "" {
		tplCache.Lock()
		tplCache.m[name] = t
		tplCache.Unlock()
	}
	return t, nil
}

// Render executes page name (e.g. "dashboard.html") inside the layout.
// Common values are injected unless data already sets them: Session,
// IsLoggedIn, Notice (the pending flash, or Flash when the page sets its
// own Notice) and Year.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	return RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit status code.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	if _, exists := data["IsLoggedIn"]; !exists {
		sess, loggedIn := auth.SessionFromContext(r.Context())
		data["IsLoggedIn"] = loggedIn
		if loggedIn {
			data["Session"] = sess
		}
	}
	// A pending flash is always shown; a page notice goes beside it.
	if flash, ok := middleware.TakeFlash(w, r); ok {
		if _, exists := data["Notice"]; exists {
			data["Flash"] = flash
		} else {
			data["Notice"] = flash
		}
	}

	base, err := lookup(name)
	if err != nil {
		return err
	}
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(Funcs(r))

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
