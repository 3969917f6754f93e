// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Backend    BackendConfig
	App        AppConfig
	Log        LogConfig
	DevBackend DevBackendConfig
}

// ServerConfig holds HTTP server settings of the panel.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// BackendConfig points the panel at the records backend.
type BackendConfig struct {
	BaseURL   string
	LoginPath string
	Timeout   time.Duration
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev           bool
	DefaultLang   string
	SecureCookies bool
}

// LogConfig selects the logrus level and output format.
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// DevBackendConfig configures the bundled reference backend.
type DevBackendConfig struct {
	Port          string
	Database      DatabaseConfig
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// DatabaseConfig holds SQLite or PostgreSQL connection settings.
type DatabaseConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file, ":memory:" allowed
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
		)
	}
	return d.Path
}

// URL returns the PostgreSQL connection string in URL format.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Backend: BackendConfig{
			BaseURL:   strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:3000"), "/"),
			LoginPath: getEnv("BACKEND_LOGIN_PATH", "/auth/login"),
			Timeout:   getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),
		},
		App: AppConfig{
			Dev:           getEnvBool("DEV", true),
			DefaultLang:   getEnv("DEFAULT_LANG", "pt"),
			SecureCookies: getEnvBool("SECURE_COOKIES", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		DevBackend: DevBackendConfig{
			Port: getEnv("DEVBACKEND_PORT", "3000"),
			Database: DatabaseConfig{
				Driver:   getEnv("DB_DRIVER", "sqlite"),
				Path:     getEnv("DB_PATH", "painel.db"),
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvInt("DB_PORT", 5432),
				User:     getEnv("DB_USER", "painel"),
				Password: getEnv("DB_PASSWORD", "painel123"),
				DBName:   getEnv("DB_NAME", "painel"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
			JWTSecret:     getEnv("JWT_SECRET", "devjwtsecret"),
			TokenTTL:      getEnvDuration("JWT_TTL", 24*time.Hour),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@painel.local"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvDuration accepts Go durations ("30s") or plain seconds ("30").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if s, err := strconv.Atoi(value); err == nil {
		return time.Duration(s) * time.Second
	}
	return defaultValue
}
