package config

import (
	"os"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	JWTSecret     string
	CORSOrigins   []string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    envOrDefault("PORT", "8000"),
		JWTSecret:     envOrDefault("JWT_SECRET", "change-me"),
		CORSOrigins:   parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		AdminName:     envOrDefault("ADMIN_NAME", "Admin"),
		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@hostel.com"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "Admin@123"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
