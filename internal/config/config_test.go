package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "BACKEND_URL", "BACKEND_LOGIN_PATH", "BACKEND_TIMEOUT", "DB_DRIVER", "DB_PATH", "JWT_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:3000" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.LoginPath != "/auth/login" {
		t.Errorf("Backend.LoginPath = %q", cfg.Backend.LoginPath)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("Backend.Timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.DevBackend.Database.DSN() != "painel.db" {
		t.Errorf("sqlite DSN = %q", cfg.DevBackend.Database.DSN())
	}
	if cfg.DevBackend.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.DevBackend.TokenTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api.local/")
	t.Setenv("BACKEND_LOGIN_PATH", "/usuarios/login")
	t.Setenv("BACKEND_TIMEOUT", "5")
	t.Setenv("SECURE_COOKIES", "yes")
	t.Setenv("JWT_TTL", "90m")

	cfg := Load()
	if cfg.Backend.BaseURL != "http://api.local" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.Backend.BaseURL)
	}
	if cfg.Backend.LoginPath != "/usuarios/login" {
		t.Errorf("LoginPath = %q", cfg.Backend.LoginPath)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Backend.Timeout)
	}
	if !cfg.App.SecureCookies {
		t.Error("SecureCookies should be true")
	}
	if cfg.DevBackend.TokenTTL != 90*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.DevBackend.TokenTTL)
	}
}

func TestDatabaseConfig_Postgres(t *testing.T) {
	d := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got := d.URL(); got != "postgres://u:p@db:5432/n?sslmode=disable" {
		t.Errorf("URL() = %q", got)
	}
}
