package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig bundles the runtime configuration for the site server.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	AppEnv        string
	AdminUser     string
	AdminPass     string
}

// Load reads the application configuration from environment variables,
// providing safe defaults for everything except the admin credentials.
// AdminUser and AdminPass stay empty when unset so the login gate fails
// closed instead of accepting a default credential.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "abcsitio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "abcsitio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		AppEnv:        appEnv,
		AdminUser:     strings.TrimSpace(os.Getenv("ADMIN_USER")),
		AdminPass:     strings.TrimSpace(os.Getenv("ADMIN_PASS")),
	}
}

// CookieSecure reports whether session cookies should carry the Secure flag.
func (c AppConfig) CookieSecure() bool {
	return c.AppEnv == "production"
}
