package i18n

import (
	"context"
	"strings"
)

// DefaultLang is used when the browser asks for a language we do not ship.
const DefaultLang = "pt"

var supported = map[string]bool{"pt": true, "en": true}

// fallback is what DetectLanguage answers when nothing in the header matches.
var fallback = DefaultLang

// SetFallback changes the language chosen for browsers whose preferences we
// cannot serve. It reports false and changes nothing for an unsupported lang.
func SetFallback(lang string) bool {
	if !supported[lang] {
		return false
	}
	fallback = lang
	return true
}

type langKey struct{}

// WithLang stores the resolved language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language stored by WithLang or DefaultLang.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// Supported reports whether lang has its own message table.
func Supported(lang string) bool { return supported[lang] }

// DetectLanguage picks the first supported primary tag of an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if supported[primary] {
			return primary
		}
	}
	return fallback
}

// T translates code into lang, falling back to the default language and then
// to the code itself.
func T(lang, code string) string {
	if msgs, ok := messages[lang]; ok {
		if s, ok := msgs[code]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][code]; ok {
		return s
	}
	return code
}
