package i18n

import (
	"context"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("fr-FR,fr;q=0.8") != "pt" {
		t.Fatalf("expected pt fallback")
	}
	if DetectLanguage("fr-FR,en;q=0.5") != "en" {
		t.Fatalf("expected first supported tag")
	}
	if DetectLanguage("") != "pt" {
		t.Fatalf("expected default pt")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("pt", "required") != "Campo obrigatório" {
		t.Fatalf("expected Campo obrigatório")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to pt translation if exists
	if T("es", "clients.fetch_error") != "Erro ao buscar clientes" {
		t.Fatalf("expected pt fallback for es lang")
	}
}

func TestTablesShareKeys(t *testing.T) {
	for code := range messages["pt"] {
		if _, ok := messages["en"][code]; !ok {
			t.Errorf("en is missing %q", code)
		}
	}
	for code := range messages["en"] {
		if _, ok := messages["pt"][code]; !ok {
			t.Errorf("pt is missing %q", code)
		}
	}
}

func TestLangFromContext(t *testing.T) {
	if got := LangFromContext(context.Background()); got != DefaultLang {
		t.Fatalf("LangFromContext() = %q, want %q", got, DefaultLang)
	}
	ctx := WithLang(context.Background(), "en")
	if got := LangFromContext(ctx); got != "en" {
		t.Fatalf("LangFromContext() = %q, want en", got)
	}
}

func TestSetFallback(t *testing.T) {
	t.Cleanup(func() { SetFallback(DefaultLang) })
	if SetFallback("fr") {
		t.Fatal("SetFallback(fr) accepted an unsupported language")
	}
	if !SetFallback("en") {
		t.Fatal("SetFallback(en) rejected")
	}
	if got := DetectLanguage("de-DE,de;q=0.9"); got != "en" {
		t.Fatalf("DetectLanguage() = %q, want en", got)
	}
	if got := DetectLanguage("pt-BR"); got != "pt" {
		t.Fatalf("DetectLanguage(pt-BR) = %q, want pt", got)
	}
}
