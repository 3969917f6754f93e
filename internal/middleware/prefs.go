package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/diewo77/painel/i18n"
)

const langCookie = "lang"

// Prefs resolves the language (query > cookie > Accept-Language) and stores it
// in context. A language chosen by query is remembered in a cookie for ~30 days.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie(langCookie); err == nil {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); i18n.Supported(ql) {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: langCookie, Value: lang, Path: "/", MaxAge: 86400 * 30, SameSite: http.SameSiteLaxMode})
		}
		if !i18n.Supported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
	})
}

// LangFrom returns language preference from context or fallback.
func LangFrom(r *http.Request) string {
	return i18n.LangFromContext(r.Context())
}

const flashCookie = "flash"

// Notice kinds.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeWarning = "warning"
)

// Notice is a one-shot message shown on the next rendered page. Code is a
// message code translated at render time.
type Notice struct {
	Kind string
	Code string
}

// Flash stores a notice for the next page view.
func Flash(w http.ResponseWriter, kind, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + ":" + code),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash reads and clears the pending notice.
func TakeFlash(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return Notice{}, false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return Notice{}, false
	}
	kind, code, ok := strings.Cut(raw, ":")
	if !ok || code == "" {
		return Notice{}, false
	}
	switch kind {
	case NoticeSuccess, NoticeError, NoticeWarning:
	default:
		return Notice{}, false
	}
	return Notice{Kind: kind, Code: code}, true
}
